package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// userRecord is the on-disk user. domain.User hides the hash from JSON.
type userRecord struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Fullname     string    `json:"fullname"`
	IsAdmin      bool      `json:"isAdmin"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Fullname:     r.Fullname,
		IsAdmin:      r.IsAdmin,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// UserStore persists users in user.json.
type UserStore struct {
	c *collection[userRecord]
}

// NewUserStore loads dir/user.json.
func NewUserStore(dir string) (*UserStore, error) {
	c, err := openCollection(dir, userCollection, func(u *userRecord) string { return u.ID })
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %w", err)
	}
	return &UserStore{c: c}, nil
}

// List returns all users in registration order.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs := s.c.snapshot(nil)
	out := make([]domain.User, 0, len(recs))
	for _, r := range recs {
		out = append(out, *r.toDomain())
	}
	return out, nil
}

// GetByID returns the user with id.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, ok := s.c.get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return r.toDomain(), nil
}

// GetByUsername returns the user with the exact username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, ok := s.c.find(func(u *userRecord) bool { return u.Username == username })
	if !ok {
		return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return r.toDomain(), nil
}

// Count returns the number of users.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.c.count(), nil
}

// Create stores u under a fresh id. Usernames are unique.
func (s *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := userRecord{
		ID:           uuid.NewString(),
		Username:     u.Username,
		Fullname:     u.Fullname,
		IsAdmin:      u.IsAdmin,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	err := s.c.insert(rec, func(items []userRecord) error {
		for _, existing := range items {
			if existing.Username == rec.Username {
				return domain.ErrAlreadyExists
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", u.Username, err)
	}
	return rec.toDomain(), nil
}

// SetAdmin sets the administrator flag of the user with id.
func (s *UserStore) SetAdmin(ctx context.Context, id string, admin bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	found := false
	_, err := s.c.update(func(u *userRecord) bool {
		if u.ID != id {
			return false
		}
		found = true
		if u.IsAdmin == admin {
			return false
		}
		u.IsAdmin = admin
		return true
	})
	if err != nil {
		return fmt.Errorf("user %s: %w", id, err)
	}
	if !found {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the user with id.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := s.c.remove(func(u *userRecord) bool { return u.ID == id })
	if err != nil {
		return fmt.Errorf("user %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
