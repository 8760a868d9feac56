package cmd

import (
	"fmt"

	"github.com/matthieukhl/shopsight/internal/config"
	"github.com/matthieukhl/shopsight/internal/server"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Shopsight report server",
	Long: `Start the Shopsight server which provides:
- GET /api/reports          — the report catalog
- GET /api/reports/:name    — one report as a JSON array
- GET /api/health           — service health and dataset size

The dataset is loaded once at startup and served read-only.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Shopsight Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("📂 Loading dataset (source: %s)...\n", cfg.Dataset.Source)
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	stats := ds.Stats()
	fmt.Printf("✅ Dataset loaded: %d rows (%d skipped, %d ratings imputed)\n",
		stats.RowsLoaded, stats.RowsSkipped, stats.RatingsImputed)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(ds)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
