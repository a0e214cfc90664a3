// Package storage opens the configured backend behind the Store interface.
package storage

import (
	"context"
	"fmt"

	"github.com/2beens/gymstats/internal/config"
	"github.com/2beens/gymstats/internal/db"
	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/repo/memrepo"
	"github.com/2beens/gymstats/internal/gymstats/repo/mongorepo"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Store interface {
	ListSessions(ctx context.Context, q repo.SessionQuery) ([]repo.TrainingSession, error)
	CountSessions(ctx context.Context, q repo.SessionQuery) (int, error)
	AddSession(ctx context.Context, session repo.TrainingSession) (*repo.TrainingSession, error)
	GetExercises(ctx context.Context, ids []string) (map[string]repo.Exercise, error)
	GetExercise(ctx context.Context, id string) (*repo.Exercise, error)
	AddExercise(ctx context.Context, exercise repo.Exercise) (*repo.Exercise, error)
	AddMetric(ctx context.Context, metric repo.BodyMetric) (*repo.BodyMetric, error)
	ListMetrics(ctx context.Context, q repo.MetricQuery) ([]repo.BodyMetric, error)
}

var (
	_ Store = (*repo.Repo)(nil)
	_ Store = (*memrepo.Repo)(nil)
	_ Store = (*mongorepo.Repo)(nil)
)

type OpenParams struct {
	Config         *config.Config
	PostgresPass   string
	MongoURI       string
	TracingEnabled bool
	RunMigrations  bool
}

// Backend is an opened store. Pool is nil unless the store is postgres.
type Backend struct {
	Store Store
	Pool  *pgxpool.Pool
	close func(ctx context.Context) error
}

func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

func Open(ctx context.Context, params OpenParams) (*Backend, error) {
	cfg := params.Config
	switch cfg.Store {
	case config.StorePostgres:
		if params.RunMigrations {
			dsn := db.ConnString(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName, params.PostgresPass)
			if err := db.RunMigrations(dsn, cfg.MigrationsPath); err != nil {
				return nil, err
			}
			log.Debugf("migrations from %s applied", cfg.MigrationsPath)
		}

		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPass,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		return &Backend{
			Store: repo.NewRepo(pool),
			Pool:  pool,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case config.StoreMongo:
		mongoRepo, err := mongorepo.Connect(ctx, params.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store: mongoRepo,
			close: mongoRepo.Close,
		}, nil
	case config.StoreMemory:
		return &Backend{Store: memrepo.New()}, nil
	default:
		return nil, fmt.Errorf("unknown store: %q", cfg.Store)
	}
}
