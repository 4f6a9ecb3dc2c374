package container

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-todo-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

// Container holds the components shared by every request. It is built once in main
// and passed to the router explicitly.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	// Pool and DB are nil with the memory driver.
	Pool *pgxpool.Pool
	DB   *sql.DB

	Repos  repository.Manager
	Hasher *helpers.Argon2Hasher
	JWT    *helpers.JWTManager
}

// Build connects storage according to cfg.DBDriver and constructs the auth helpers.
func Build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	hasher, err := helpers.NewArgon2Hasher(helpers.Argon2Params{
		Iterations:  cfg.Argon2Iterations,
		MemoryKiB:   cfg.Argon2MemoryKiB,
		Parallelism: cfg.Argon2Parallelism,
		SaltLength:  cfg.Argon2SaltLength,
		KeyLength:   cfg.Argon2KeyLength,
	})
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		Hasher: hasher,
		JWT:    helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL),
	}

	if cfg.DBDriver == config.DriverMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		c.Repos = memory.NewStore()
		return c, nil
	}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	db := pginfra.OpenDB(pool)
	if err := pginfra.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("database schema ready")

	c.Pool = pool
	c.DB = db
	c.Repos = pginfra.NewManager(db)
	return c, nil
}

// Close releases the database handles, if any.
func (c *Container) Close() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.WithError(err).Warn("close database")
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
