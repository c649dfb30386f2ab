package jsonfile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// BugStore persists bugs in bug.json.
type BugStore struct {
	c *collection[domain.Bug]
}

// NewBugStore loads dir/bug.json. A missing file is an empty collection.
func NewBugStore(dir string) (*BugStore, error) {
	c, err := openCollection(dir, bugCollection, func(b *domain.Bug) string { return b.ID })
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %w", err)
	}
	return &BugStore{c: c}, nil
}

// List returns every bug in insertion order.
func (s *BugStore) List(ctx context.Context) ([]domain.Bug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := s.c.snapshot(nil)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out, nil
}

// GetByID returns the bug with id or domain.ErrNotFound.
func (s *BugStore) GetByID(ctx context.Context, id string) (*domain.Bug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, ok := s.c.get(id)
	if !ok {
		return nil, fmt.Errorf("bug %s: %w", id, domain.ErrNotFound)
	}
	b = b.Clone()
	return &b, nil
}

// Create stores b under a fresh id.
func (s *BugStore) Create(ctx context.Context, b *domain.Bug) (*domain.Bug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := b.Clone()
	rec.ID = uuid.NewString()

	if err := s.c.insert(rec, nil); err != nil {
		return nil, fmt.Errorf("bug %s: %w", rec.ID, err)
	}
	out := rec.Clone()
	return &out, nil
}

// Replace overwrites the stored bug with b.ID.
func (s *BugStore) Replace(ctx context.Context, b *domain.Bug) (*domain.Bug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := b.Clone()
	ok, err := s.c.replace(rec)
	if !ok {
		return nil, fmt.Errorf("bug %s: %w", b.ID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("bug %s: %w", b.ID, err)
	}
	out := rec.Clone()
	return &out, nil
}

// Delete removes the bug with id.
func (s *BugStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := s.c.remove(func(b *domain.Bug) bool { return b.ID == id })
	if err != nil {
		return fmt.Errorf("bug %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("bug %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
