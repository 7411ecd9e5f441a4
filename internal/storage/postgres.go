package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"pricing-bot/internal/pricing"
)

type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName,
	)
}

// PostgresStorage serves the pricing catalog from the casino_pricing and
// sportsbook_pricing tables.
type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, cfg Config, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	var db *sqlx.DB

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err := backoff.RetryNotify(
		func() error {
			conn, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err := conn.PingContext(ctx); err != nil {
				_ = conn.Close()
				return fmt.Errorf("ping: %w", err)
			}
			db = conn
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{db: db, logger: logger}, nil
}

// DB exposes the underlying handle for migrations.
func (s *PostgresStorage) DB() *sqlx.DB {
	return s.db
}

func (s *PostgresStorage) GetCasinoPricing(ctx context.Context) ([]pricing.CasinoPriceRow, error) {
	const query = `
        SELECT product, row_rate, asia, asia_philippines, asia_korea, asia_india,
               asia_japan, asia_china, asia_malaysia, premium_fee
        FROM casino_pricing
        ORDER BY position
    `

	var rows []pricing.CasinoPriceRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get casino pricing: %w", err)
	}
	return rows, nil
}

func (s *PostgresStorage) GetSportsbookPricing(ctx context.Context) ([]pricing.SportsbookPriceRow, error) {
	const query = `
        SELECT product, tier1_0_1m, tier2_1_2m, tier3_2_3m
        FROM sportsbook_pricing
        ORDER BY position
    `

	var rows []pricing.SportsbookPriceRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get sportsbook pricing: %w", err)
	}
	return rows, nil
}

func (s *PostgresStorage) LoadCatalog(ctx context.Context) (*pricing.Catalog, error) {
	const operation = "storage.LoadCatalog"

	casino, err := s.GetCasinoPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	sportsbook, err := s.GetSportsbookPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	s.logger.Info("Loaded pricing catalog from PostgreSQL",
		zap.Int("casino_rows", len(casino)),
		zap.Int("sportsbook_rows", len(sportsbook)))

	return &pricing.Catalog{Casino: casino, Sportsbook: sportsbook}, nil
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
