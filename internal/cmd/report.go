package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matthieukhl/shopsight/internal/config"
	"github.com/matthieukhl/shopsight/internal/dataset"
	"github.com/matthieukhl/shopsight/internal/reports"
	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Run one report, or all of them",
	Long: `Run a report from the catalog against the configured dataset and
print the result. With no name, every report in the catalog runs in
order. Use "shopsight report list" to see the catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format: table or json")
}

func runReport(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && args[0] == "list" {
		for _, r := range reports.Catalog() {
			fmt.Printf("  %-28s %s\n", r.Name, r.Description)
		}
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	var selected []reports.Report
	if len(args) == 1 {
		report, err := reports.ByName(args[0])
		if err != nil {
			return err
		}
		selected = []reports.Report{report}
	} else {
		selected = reports.Catalog()
	}

	for _, report := range selected {
		if err := printReport(report, ds); err != nil {
			return err
		}
	}
	return nil
}

func printReport(report reports.Report, ds *dataset.Dataset) error {
	switch reportFormat {
	case "json":
		out, err := json.MarshalIndent(report.Run(ds), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", report.Name, err)
		}
		fmt.Printf("%s\n", out)
		return nil

	case "table":
		fmt.Printf("\n📊 %s — %s\n", report.Name, report.Description)
		printTable(report.Headers, report.Tabulate(ds))
		return nil

	default:
		return fmt.Errorf("unknown format %q (want table or json)", reportFormat)
	}
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("   (no rows)")
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Printf("   %s\n", strings.Join(parts, "  "))
	}

	printRow(headers)

	total := len(headers) - 1
	for _, w := range widths {
		total += w + 1
	}
	fmt.Printf("   %s\n", strings.Repeat("─", total))

	for _, row := range rows {
		printRow(row)
	}
}
