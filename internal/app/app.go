// Package app opens the record store and builds the services shared by the
// MCP server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/impact/internal/config"
	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/sqlite"
)

// App holds an open database and the services built on it.
type App struct {
	DB       *sqlite.DB
	Records  *record.Service
	Activity *activity.Service
}

// Open prepares the database at cfg.Path, applies the schema and, when
// cfg.SeedSamples is set, stores the sample records into an empty store.
func Open(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := ensureDBDir(cfg.Path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	activityRepo := sqlite.NewActivityRepository(db)
	a := &App{
		DB:       db,
		Records:  record.NewService(sqlite.NewRecordRepository(db), activityRepo, logger),
		Activity: activity.NewService(activityRepo, logger),
	}

	if cfg.SeedSamples {
		if _, err := a.Records.SeedSamples(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed samples: %w", err)
		}
	}
	return a, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
