package bug

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type bugRepo interface {
	List(ctx context.Context) ([]domain.Bug, error)
	GetByID(ctx context.Context, id string) (*domain.Bug, error)
	Create(ctx context.Context, b *domain.Bug) (*domain.Bug, error)
	Replace(ctx context.Context, b *domain.Bug) (*domain.Bug, error)
	Delete(ctx context.Context, id string) error
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type renderer interface {
	Render(w io.Writer, bugs []domain.Bug) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements bug tracker operations on top of a record store.
type Service struct {
	log      *slog.Logger
	bugs     bugRepo
	users    userRepo
	renderer renderer
	now      func() time.Time
}

// NewService creates a new bug service.
func NewService(logger *slog.Logger, bugs bugRepo, users userRepo, renderer renderer) *Service {
	return &Service{
		log:      logger.With("service", "bug"),
		bugs:     bugs,
		users:    users,
		renderer: renderer,
		now:      time.Now,
	}
}
