package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/sqlite"
	"github.com/admin/tg-bots/info-bot/internal/pkg/logger"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running info-bot")

	deps, err := a.initDependencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	return a.runServices(ctx, deps)
}

// initSqlite открывает базу и запускает миграции
func (a *App) initSqlite() (*sqlx.DB, error) {
	db, err := a.Cfg.Sqlite.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	a.Log.Info("sqlite connected successfully", "path", a.Cfg.Sqlite.Path)

	if err := sqlite.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
