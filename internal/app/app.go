// Package app wires the catalog from configuration for the closet binaries.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/georgemunganga/printa-closet/internal/cache"
	"github.com/georgemunganga/printa-closet/internal/config"
	"github.com/georgemunganga/printa-closet/internal/modules/catalog"

	_ "github.com/lib/pq"
)

// App is the wired catalog service plus whatever it holds open.
type App struct {
	Store   *catalog.Store
	Service catalog.Service

	closers []func() error
}

// New opens the configured catalog source, loads the first snapshot and
// builds the service. Callers must Close the App.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	repo, err := a.repository(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Store = catalog.NewStore(repo)
	if _, err := a.Store.Load(ctx); err != nil {
		a.Close()
		return nil, err
	}

	var views catalog.ViewCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "closet:", cfg.CacheTTL)
		if err := rc.Ping(ctx); err != nil {
			log.Printf("redis at %s unreachable, view cache disabled: %v", cfg.RedisAddr, err)
			rc.Close()
		} else {
			a.closers = append(a.closers, rc.Close)
			views = rc
		}
	}

	a.Service = catalog.NewService(a.Store, views)
	return a, nil
}

func (a *App) repository(ctx context.Context, cfg *config.Config) (catalog.Repository, error) {
	if cfg.DatabaseURL == "" {
		return catalog.NewFileRepository(cfg.CatalogFile), nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Printf("connected to the catalog database")
	return catalog.NewPostgresRepository(db), nil
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
