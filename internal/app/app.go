// Package app wires configuration, storage, services and transport into a
// runnable server.
package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bugtracker/internal/adapter/pdf"
	"github.com/heartmarshall/bugtracker/internal/auth"
	"github.com/heartmarshall/bugtracker/internal/config"
	authsvc "github.com/heartmarshall/bugtracker/internal/service/auth"
	bugsvc "github.com/heartmarshall/bugtracker/internal/service/bug"
	usersvc "github.com/heartmarshall/bugtracker/internal/service/user"
	"github.com/heartmarshall/bugtracker/internal/transport/middleware"
	"github.com/heartmarshall/bugtracker/internal/transport/rest"
)

const exportTitle = "Bug report"

// Run is the application entry point. It loads configuration, opens the
// record store and serves the REST API until ctx is canceled.
func Run(ctx context.Context, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, logOut)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	a, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	return serve(ctx, cfg.Server, a.handler, logger)
}

type application struct {
	store   *storage
	limiter *middleware.RateLimiter
	auth    *authsvc.Service
	bugs    *bugsvc.Service
	users   *usersvc.Service
	handler http.Handler
}

func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &application{store: store}
	a.buildServices(cfg, logger)

	if cfg.Storage.SeedDemo {
		n, err := a.bugs.SeedDemo(ctx)
		if err != nil {
			store.close()
			return nil, err
		}
		if n > 0 {
			logger.Info("demo bugs seeded", slog.Int("count", n))
		}
	}

	a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	a.handler = a.buildHandler(cfg, logger)
	return a, nil
}

func (a *application) buildServices(cfg *config.Config, logger *slog.Logger) {
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	a.auth = authsvc.NewService(logger, a.store.users, a.store.tokens, a.store.tx, jwtMgr, hasher, cfg.Auth)
	a.bugs = bugsvc.NewService(logger, a.store.bugs, a.store.users, pdf.NewRenderer(exportTitle))
	a.users = usersvc.NewService(logger, a.store.users, a.store.tokens, a.store.tx)
}

func (a *application) buildHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(a.store.db, a.store.driver, Version),
		Auth:   rest.NewAuthHandler(a.auth, logger),
		Bugs:   rest.NewBugHandler(a.bugs, cfg.Bugs.VisitLimit, cfg.Bugs.VisitWindow, logger),
		Users:  rest.NewUserHandler(a.users, a.bugs, logger),
	}, func(scope string) middleware.Middleware {
		return a.limiter.Limit(scope, cfg.RateLimit.AuthPerMinute)
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(a.auth),
	)(router)
}

func (a *application) close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.store.close()
}
