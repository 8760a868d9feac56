package cmd

import (
	"fmt"

	"github.com/matthieukhl/shopsight/internal/config"
	"github.com/matthieukhl/shopsight/internal/database"
	"github.com/matthieukhl/shopsight/internal/dataset"
	"github.com/spf13/cobra"
)

var loadCSVPath string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Clean a CSV export and load it into MySQL",
	Long: `Load the customer shopping behavior CSV through the cleaning
pipeline and write it to the MySQL customer table, replacing whatever
was there. After loading, reports can run with dataset.source=mysql.`,
	RunE: loadToMySQL,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadCSVPath, "csv", "", "Path to the CSV export (defaults to dataset.path from config)")
}

func loadToMySQL(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := loadCSVPath
	if path == "" {
		path = cfg.Dataset.Path
	}

	fmt.Printf("📂 Cleaning %s...\n", path)
	ds, err := dataset.LoadCSV(path)
	if err != nil {
		return err
	}

	stats := ds.Stats()
	fmt.Printf("   %d rows read, %d loaded, %d skipped, %d ratings imputed\n",
		stats.RowsRead, stats.RowsLoaded, stats.RowsSkipped, stats.RatingsImputed)
	if stats.AgeGroupDerived {
		fmt.Println("   age_group column derived from age quartiles")
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("📋 Replacing customer table...")
	if err := db.ReplaceTransactions(ds.Transactions()); err != nil {
		return fmt.Errorf("failed to load customer table: %w", err)
	}

	fmt.Printf("✅ Loaded %d transactions into MySQL\n", ds.Len())
	return nil
}
