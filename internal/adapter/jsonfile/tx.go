package jsonfile

import (
	"context"
	"sync"
)

// TxManager serializes multi-step operations against the file store.
// Collections are flushed on every write, so there is nothing to roll back:
// a failing fn leaves the writes it already made in place.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a new TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx runs fn while holding the store-wide lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
