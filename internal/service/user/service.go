package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	SetAdmin(ctx context.Context, id string, admin bool) error
	Delete(ctx context.Context, id string) error
}

// tokenRepo revokes the sessions of deleted users.
type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID string) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user directory operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
		tx:     tx,
	}
}
