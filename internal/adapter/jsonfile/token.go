package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// TokenStore persists refresh tokens in token.json.
type TokenStore struct {
	c   *collection[domain.RefreshToken]
	now func() time.Time
}

// NewTokenStore loads dir/token.json.
func NewTokenStore(dir string) (*TokenStore, error) {
	c, err := openCollection(dir, tokenCollection, func(t *domain.RefreshToken) string { return t.ID })
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %w", err)
	}
	return &TokenStore{c: c, now: time.Now}, nil
}

// Create stores a new refresh token.
func (s *TokenStore) Create(ctx context.Context, t *domain.RefreshToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := *t
	rec.ID = uuid.NewString()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}

	err := s.c.insert(rec, func(items []domain.RefreshToken) error {
		for _, existing := range items {
			if existing.TokenHash == rec.TokenHash {
				return domain.ErrAlreadyExists
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("refresh_token %s: %w", rec.UserID, err)
	}
	return nil
}

// GetByHash returns the token with the given hash, revoked or not.
func (s *TokenStore) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, ok := s.c.find(func(t *domain.RefreshToken) bool { return t.TokenHash == tokenHash })
	if !ok {
		return nil, fmt.Errorf("refresh_token by-hash: %w", domain.ErrNotFound)
	}
	return &t, nil
}

// RevokeByID revokes one token. Revoking twice is not an error.
func (s *TokenStore) RevokeByID(ctx context.Context, id string) error {
	return s.revoke(ctx, func(t *domain.RefreshToken) bool { return t.ID == id })
}

// RevokeAllByUser revokes every active token of userID.
func (s *TokenStore) RevokeAllByUser(ctx context.Context, userID string) error {
	return s.revoke(ctx, func(t *domain.RefreshToken) bool { return t.UserID == userID })
}

func (s *TokenStore) revoke(ctx context.Context, match func(*domain.RefreshToken) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := s.now().UTC()
	_, err := s.c.update(func(t *domain.RefreshToken) bool {
		if !match(t) || t.IsRevoked() {
			return false
		}
		t.RevokedAt = &now
		return true
	})
	if err != nil {
		return fmt.Errorf("refresh_token revoke: %w", err)
	}
	return nil
}

// DeleteExpired removes tokens that expired before now or were revoked.
func (s *TokenStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.c.remove(func(t *domain.RefreshToken) bool {
		return t.IsRevoked() || t.IsExpired(now)
	})
	if err != nil {
		return 0, fmt.Errorf("refresh_token cleanup: %w", err)
	}
	return n, nil
}
