// Package bug implements the bug record store using PostgreSQL.
package bug

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/bugtracker/internal/adapter/postgres"
	"github.com/heartmarshall/bugtracker/internal/domain"
)

const table = "bugs"

var columns = []string{
	"id", "title", "description", "severity", "created_at", "labels",
	"creator_id", "creator_fullname",
}

// Repo provides bug persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new bug repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              string     `db:"id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Severity        int        `db:"severity"`
	CreatedAt       *time.Time `db:"created_at"`
	Labels          []string   `db:"labels"`
	CreatorID       *string    `db:"creator_id"`
	CreatorFullname *string    `db:"creator_fullname"`
}

// List returns every bug in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Bug, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bugs: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "bug", "*")
	}

	out := make([]domain.Bug, 0, len(rows))
	for _, rw := range rows {
		out = append(out, toDomain(rw))
	}
	return out, nil
}

// GetByID returns a bug by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Bug, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bug: %w", err)
	}

	return r.getOne(ctx, id, sql, args)
}

// Create inserts b under a fresh id and returns the stored record.
func (r *Repo) Create(ctx context.Context, b *domain.Bug) (*domain.Bug, error) {
	rw := fromDomain(*b)
	rw.ID = uuid.NewString()

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rw.ID, rw.Title, rw.Description, rw.Severity, rw.CreatedAt, rw.Labels, rw.CreatorID, rw.CreatorFullname).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert bug: %w", err)
	}

	return r.getOne(ctx, rw.ID, sql, args)
}

// Replace overwrites every mutable column of the bug with b.ID.
func (r *Repo) Replace(ctx context.Context, b *domain.Bug) (*domain.Bug, error) {
	rw := fromDomain(*b)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("title", rw.Title).
		Set("description", rw.Description).
		Set("severity", rw.Severity).
		Set("created_at", rw.CreatedAt).
		Set("labels", rw.Labels).
		Set("creator_id", rw.CreatorID).
		Set("creator_fullname", rw.CreatorFullname).
		Where(sq.Eq{"id": rw.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update bug: %w", err)
	}

	return r.getOne(ctx, rw.ID, sql, args)
}

// Delete removes the bug with the given id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete bug: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "bug", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "bug", id)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, id, sql string, args []any) (*domain.Bug, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "bug", id)
	}
	b := toDomain(rw)
	return &b, nil
}

func toDomain(rw row) domain.Bug {
	b := domain.Bug{
		ID:          rw.ID,
		Title:       rw.Title,
		Description: rw.Description,
		Severity:    rw.Severity,
		Labels:      rw.Labels,
	}
	if b.Labels == nil {
		b.Labels = []string{}
	}
	if rw.CreatedAt != nil {
		b.CreatedAt = rw.CreatedAt.UTC()
	}
	if rw.CreatorID != nil {
		b.Creator = &domain.Creator{ID: *rw.CreatorID}
		if rw.CreatorFullname != nil {
			b.Creator.Fullname = *rw.CreatorFullname
		}
	}
	return b
}

func fromDomain(b domain.Bug) row {
	rw := row{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Severity:    b.Severity,
		Labels:      b.Labels,
	}
	if rw.Labels == nil {
		rw.Labels = []string{}
	}
	if !b.CreatedAt.IsZero() {
		t := b.CreatedAt.UTC()
		rw.CreatedAt = &t
	}
	if b.Creator != nil {
		id, name := b.Creator.ID, b.Creator.Fullname
		rw.CreatorID = &id
		rw.CreatorFullname = &name
	}
	return rw
}
