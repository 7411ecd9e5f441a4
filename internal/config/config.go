package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceHTTP     = "http"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Database holds the PostgreSQL settings used by the postgres catalog
// source and by migrations.
type Database struct {
	DBHost            string        `env:"DB_HOST"`
	DBPort            int           `env:"DB_PORT" envDefault:"5432"`
	DBUser            string        `env:"DB_USER"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBName            string        `env:"DB_NAME"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	RunMigrations     bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Catalog selects where pricing tables are loaded from. pricingctl reads
// it on its own, without the bot settings.
type Catalog struct {
	CatalogSource      string        `env:"CATALOG_SOURCE" envDefault:"file"`
	CatalogDir         string        `env:"CATALOG_DIR" envDefault:"data"`
	APIBaseURL         string        `env:"API_BASE_URL"`
	APIKey             string        `env:"API_KEY"`
	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`

	Database
}

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	BotDebug      bool   `env:"BOT_DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`

	Catalog

	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"memory"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	RedisTTL       time.Duration `env:"REDIS_TTL" envDefault:"24h"`

	DefaultTheme  string  `env:"DEFAULT_THEME" envDefault:"light"`
	DefaultLayout string  `env:"DEFAULT_LAYOUT" envDefault:"table"`
	AdminIDs      []int64 `env:"ADMIN_IDS" envSeparator:","`
}

// LoadDotEnv copies variables from the given .env files (default ".env")
// into the environment without overriding ones already set. Missing files
// are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCatalog reads only the catalog and database settings.
func LoadCatalog() (*Catalog, error) {
	cfg, err := ParseCatalog()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseCatalog is LoadCatalog without validation, for callers that apply
// overrides first.
func ParseCatalog() (*Catalog, error) {
	var cfg Catalog
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the selected source needs.
func (c *Catalog) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.CatalogDir == "" {
			return fmt.Errorf("CATALOG_DIR is required for the file catalog source")
		}
	case CatalogSourcePostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required for the postgres catalog source")
		}
	case CatalogSourceHTTP:
		if c.APIBaseURL == "" {
			return fmt.Errorf("API_BASE_URL is required for the http catalog source")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return err
	}

	switch c.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis session backend")
		}
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}
	return nil
}

func (c *Config) IsAdmin(chatID int64) bool {
	for _, id := range c.AdminIDs {
		if id == chatID {
			return true
		}
	}
	return false
}
