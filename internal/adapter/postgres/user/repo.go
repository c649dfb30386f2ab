// Package user implements the user store using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "username", "fullname", "is_admin", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Fullname     string    `db:"fullname"`
	IsAdmin      bool      `db:"is_admin"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// List returns all users in registration order.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).OrderBy("seq ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", "*")
	}

	out := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		out = append(out, toDomain(rw))
	}
	return out, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"username": username}, username)
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", "*")
	}
	return n, nil
}

// Create inserts u under a fresh id.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := uuid.NewString()
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(id, u.Username, u.Fullname, u.IsAdmin, u.PasswordHash, createdAt).
		Suffix("RETURNING id, username, fullname, is_admin, password_hash, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	out := toDomain(rw)
	return &out, nil
}

// SetAdmin sets the administrator flag of the user with the given id.
func (r *Repo) SetAdmin(ctx context.Context, id string, admin bool) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("is_admin", admin).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set admin: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// Delete removes the user with the given id. Their refresh tokens cascade.
func (r *Repo) Delete(ctx context.Context, id string) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

func (r *Repo) getBy(ctx context.Context, where sq.Eq, key string) (*domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "user", key)
	}
	u := toDomain(rw)
	return &u, nil
}

func toDomain(rw row) domain.User {
	return domain.User{
		ID:           rw.ID,
		Username:     rw.Username,
		Fullname:     rw.Fullname,
		IsAdmin:      rw.IsAdmin,
		PasswordHash: rw.PasswordHash,
		CreatedAt:    rw.CreatedAt.UTC(),
	}
}
