// Package cmd provides the pricingctl commands.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-bot/internal/catalog"
	"pricing-bot/internal/config"
	"pricing-bot/internal/pricing"
	"pricing-bot/pkg/logger"
)

var (
	logLevel      string
	catalogSource string
	catalogDir    string
	apiURL        string

	catalogCfg *config.Catalog
	log        *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pricingctl",
	Short: "Inspect and export platform pricing",
	Long: `pricingctl renders the same pricing tables the bot shows, exports them
to Excel and manages the pricing database.

Catalog settings come from the environment (CATALOG_SOURCE, CATALOG_DIR,
API_BASE_URL, DB_*) and can be overridden with flags.

Examples:
  pricingctl show casino --bracket 1-3M
  pricingctl show --layout cards --theme dark
  pricingctl export --bracket 3M+ -o pricing.xlsx
  pricingctl migrate status`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "source", "", "catalog source: file, postgres or http")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", "", "directory with catalog files")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "pricing API base URL")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(migrateCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	l, err := logger.New(logLevel, "console")
	if err != nil {
		return err
	}
	log = l

	if err := config.LoadDotEnv(); err != nil {
		log.Warn("Could not load .env file", zap.Error(err))
	}

	cfg, err := config.ParseCatalog()
	if err != nil {
		return err
	}
	if catalogSource != "" {
		cfg.CatalogSource = catalogSource
	}
	if catalogDir != "" {
		cfg.CatalogDir = catalogDir
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalogCfg = cfg
	return nil
}

// loadCatalog opens the configured source and loads the catalog from it.
func loadCatalog(ctx context.Context) (*pricing.Catalog, error) {
	src, closeSource, err := catalog.Open(ctx, *catalogCfg, log)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
