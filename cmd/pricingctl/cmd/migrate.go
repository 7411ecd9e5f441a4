package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-bot/internal/catalog"
	"pricing-bot/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the pricing database schema",
	Long: `Apply, roll back or inspect the pricing table migrations.

Connection settings are read from DB_HOST, DB_PORT, DB_USER, DB_PASSWORD
and DB_NAME.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  withDB(storage.RunMigrations),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration",
	RunE:  withDB(storage.RollbackMigration),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print migration status",
	RunE:  withDB(storage.Status),
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func withDB(fn func(context.Context, *sql.DB, *zap.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if catalogCfg.DBHost == "" || catalogCfg.DBUser == "" || catalogCfg.DBName == "" {
			return fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required")
		}

		pg, err := storage.NewPostgresStorage(cmd.Context(), catalog.StorageConfig(catalogCfg.Database), log)
		if err != nil {
			return err
		}
		defer pg.Close()

		return fn(cmd.Context(), pg.DB().DB, log)
	}
}
