package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/bugtracker/internal/config"
	"github.com/heartmarshall/bugtracker/internal/domain"
)

// openOperator builds the services against the configured store for one-off
// maintenance commands. The returned func releases the store.
func openOperator(ctx context.Context, logOut io.Writer) (*application, *slog.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := NewLogger(cfg.Log, logOut)

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	a := &application{store: store}
	a.buildServices(cfg, logger)
	return a, logger, store.close, nil
}

// CleanupTokens deletes expired and revoked refresh tokens from the
// configured store and returns how many were removed.
func CleanupTokens(ctx context.Context, logOut io.Writer) (int, error) {
	a, logger, done, err := openOperator(ctx, logOut)
	if err != nil {
		return 0, err
	}
	defer done()

	n, err := a.auth.CleanupExpiredTokens(ctx)
	if err != nil {
		return 0, err
	}
	logger.Info("refresh tokens cleaned up", slog.Int("deleted", n))
	return n, nil
}

// PromoteUser grants administrator rights to username in the configured
// store. changed is false when the user already was an administrator.
func PromoteUser(ctx context.Context, logOut io.Writer, username string) (user *domain.User, changed bool, err error) {
	a, _, done, err := openOperator(ctx, logOut)
	if err != nil {
		return nil, false, err
	}
	defer done()

	return a.users.PromoteUser(ctx, username)
}
