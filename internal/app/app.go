package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/mindspace/internal/clock"
	"github.com/templui/mindspace/internal/config"
	"github.com/templui/mindspace/internal/db"
	"github.com/templui/mindspace/internal/metrics"
	"github.com/templui/mindspace/internal/middleware"
	"github.com/templui/mindspace/internal/repository"
	"github.com/templui/mindspace/internal/service"
	"github.com/templui/mindspace/internal/storage"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	GoalService *service.GoalService
	RateLimiter *middleware.RateLimiter
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	metrics.Init()

	a := &App{Cfg: cfg}

	// Database is only needed by the sql store
	if cfg.StoreBackend == storage.BackendSQL {
		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = database

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Storage
	store, err := storage.New(ctx, cfg, a.DB)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Repositories
	goalRepository, err := repository.NewGoalRepository(ctx, store, cfg.StoreKey)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	// Services
	a.GoalService = service.NewGoalService(goalRepository, clock.Real{}, cfg.Location())
	a.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	return a, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
