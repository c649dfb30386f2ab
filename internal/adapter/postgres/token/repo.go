// Package token implements the refresh-token store using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/bugtracker/internal/adapter/postgres"
	"github.com/heartmarshall/bugtracker/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at", "created_at").
		Values(uuid.NewString(), t.UserID, t.TokenHash, t.ExpiresAt, createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}
	return nil
}

// GetByHash returns a refresh token by its hash, revoked or not.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get token: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "refresh_token", "by-hash")
	}

	t := toDomain(rw)
	return &t, nil
}

// RevokeByID revokes a specific refresh token. Revoking twice is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id string) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens of the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID string) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke user tokens: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes tokens that expired before now or were revoked.
// Returns the number of deleted tokens.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Lt{"expires_at": now}, sq.NotEq{"revoked_at": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired tokens: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "*")
	}
	return int(tag.RowsAffected()), nil
}

func toDomain(rw row) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        rw.ID,
		UserID:    rw.UserID,
		TokenHash: rw.TokenHash,
		ExpiresAt: rw.ExpiresAt.UTC(),
		CreatedAt: rw.CreatedAt.UTC(),
		RevokedAt: rw.RevokedAt,
	}
}
