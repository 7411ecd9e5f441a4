package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-bot/internal/export"
	"pricing-bot/internal/pricing"
)

var (
	exportBracket string
	exportOutput  string
	exportDir     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the pricing for a revenue bracket to an Excel workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportBracket, "bracket", "b", "0-1M", "expected monthly GGR: 0-1M, 1-3M or 3M+")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: a timestamped file in --dir)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "reports", "directory for timestamped reports")
}

func runExport(cmd *cobra.Command, _ []string) error {
	bracket, err := pricing.ParseBracket(exportBracket)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path, err = export.SaveFile(exportDir, cat, bracket, time.Now())
		if err != nil {
			return err
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := export.Write(f, cat, bracket); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}

	log.Info("Pricing exported",
		zap.String("path", path),
		zap.Stringer("bracket", bracket))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
