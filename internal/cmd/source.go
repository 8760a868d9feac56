package cmd

import (
	"fmt"

	"github.com/matthieukhl/shopsight/internal/config"
	"github.com/matthieukhl/shopsight/internal/database"
	"github.com/matthieukhl/shopsight/internal/dataset"
)

// loadDataset builds the reporting snapshot from the configured source.
// CSV goes through the full cleaning pipeline; MySQL rows were cleaned
// when `shopsight load` wrote them, so they load as-is.
func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	switch cfg.Dataset.Source {
	case "", "csv":
		ds, err := dataset.LoadCSV(cfg.Dataset.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		return ds, nil

	case "mysql":
		db, err := database.NewConnection(&cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		transactions, err := db.FetchTransactions()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset: %w", err)
		}
		stats := dataset.LoadStats{
			RowsRead:   len(transactions),
			RowsLoaded: len(transactions),
		}
		return dataset.New(transactions, stats), nil

	default:
		return nil, fmt.Errorf("unknown dataset source %q (want csv or mysql)", cfg.Dataset.Source)
	}
}
