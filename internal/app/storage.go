package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtracker/internal/adapter/jsonfile"
	"github.com/heartmarshall/bugtracker/internal/adapter/postgres"
	pgbug "github.com/heartmarshall/bugtracker/internal/adapter/postgres/bug"
	pgtoken "github.com/heartmarshall/bugtracker/internal/adapter/postgres/token"
	pguser "github.com/heartmarshall/bugtracker/internal/adapter/postgres/user"
	"github.com/heartmarshall/bugtracker/internal/config"
	"github.com/heartmarshall/bugtracker/internal/domain"
)

type bugStore interface {
	List(ctx context.Context) ([]domain.Bug, error)
	GetByID(ctx context.Context, id string) (*domain.Bug, error)
	Create(ctx context.Context, b *domain.Bug) (*domain.Bug, error)
	Replace(ctx context.Context, b *domain.Bug) (*domain.Bug, error)
	Delete(ctx context.Context, id string) error
}

type userStore interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	SetAdmin(ctx context.Context, id string, admin bool) error
	Delete(ctx context.Context, id string) error
}

type tokenStore interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id string) error
	RevokeAllByUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// storage is the record store picked by storage.driver.
type storage struct {
	driver string
	bugs   bugStore
	users  userStore
	tokens tokenStore
	tx     txRunner
	db     pinger
	close  func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		st, err := jsonfile.Open(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Info("file store opened", slog.String("data_dir", cfg.Storage.DataDir))
		return &storage{
			driver: config.DriverFile,
			bugs:   st.Bugs,
			users:  st.Users,
			tokens: st.Tokens,
			tx:     st.Tx,
			db:     st,
			close:  func() {},
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		logger.Info("postgres pool ready",
			slog.Int("max_conns", int(cfg.Database.MaxConns)),
		)
		return &storage{
			driver: config.DriverPostgres,
			bugs:   pgbug.New(pool),
			users:  pguser.New(pool),
			tokens: pgtoken.New(pool),
			tx:     postgres.NewTxManager(pool),
			db:     pool,
			close:  pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
