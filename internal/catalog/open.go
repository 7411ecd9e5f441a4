package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pricing-bot/internal/config"
	"pricing-bot/internal/storage"
	"pricing-bot/pkg/api"
)

// StorageConfig maps the database settings onto the storage layer.
func StorageConfig(db config.Database) storage.Config {
	return storage.Config{
		Host:            db.DBHost,
		Port:            db.DBPort,
		User:            db.DBUser,
		Password:        db.DBPassword,
		DBName:          db.DBName,
		MaxOpenConns:    db.DBMaxOpenConns,
		MaxIdleConns:    db.DBMaxIdleConns,
		ConnMaxLifetime: db.DBConnMaxLifetime,
	}
}

// Open builds the source named by cfg. The returned close func releases
// any connection the source holds. For postgres, pending migrations run
// first when RunMigrations is set.
func Open(ctx context.Context, cfg config.Catalog, logger *zap.Logger) (Source, func() error, error) {
	const operation = "catalog.Open"

	noop := func() error { return nil }

	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		return NewFileSource(cfg.CatalogDir), noop, nil

	case config.CatalogSourceHTTP:
		return api.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.HTTPRequestTimeout, logger), noop, nil

	case config.CatalogSourcePostgres:
		pg, err := storage.NewPostgresStorage(ctx, StorageConfig(cfg.Database), logger)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", operation, err)
		}
		if cfg.RunMigrations {
			if err := storage.RunMigrations(ctx, pg.DB().DB, logger); err != nil {
				_ = pg.Close()
				return nil, nil, fmt.Errorf("%s: %w", operation, err)
			}
		}
		return pg, pg.Close, nil

	default:
		return nil, nil, fmt.Errorf("%s: unknown catalog source %q", operation, cfg.CatalogSource)
	}
}
