package jsonfile

import (
	"context"
	"fmt"
	"os"
)

// Collection file names, without the .json suffix.
const (
	bugCollection   = "bug"
	userCollection  = "user"
	tokenCollection = "token"
)

// Store bundles the three collections living in one data directory.
type Store struct {
	dir string

	Bugs   *BugStore
	Users  *UserStore
	Tokens *TokenStore
	Tx     *TxManager
}

// Open creates dir if needed and loads every collection in it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile: create data dir: %w", err)
	}

	bugs, err := NewBugStore(dir)
	if err != nil {
		return nil, err
	}
	users, err := NewUserStore(dir)
	if err != nil {
		return nil, err
	}
	tokens, err := NewTokenStore(dir)
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, Bugs: bugs, Users: users, Tokens: tokens, Tx: NewTxManager()}, nil
}

// Ping reports whether the data directory is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("jsonfile: stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("jsonfile: %s is not a directory", s.dir)
	}
	return nil
}
