package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matthieukhl/shopsight/internal/config"
	"github.com/matthieukhl/shopsight/internal/models"
	"github.com/spf13/cobra"
)

var inspectShowItems bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Explore the loaded dataset",
	Long: `Load the configured dataset through the cleaning pipeline and print
a summary: row counts, cleaning statistics, and the vocabulary of each
categorical column. Useful for sanity-checking a new CSV export before
running reports against it.`,
	RunE: inspectDataset,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectShowItems, "show-items", false, "List every distinct item_purchased value")
}

func inspectDataset(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	stats := ds.Stats()
	fmt.Printf("🔍 Dataset summary (source: %s)\n", cfg.Dataset.Source)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("   Rows read:        %d\n", stats.RowsRead)
	fmt.Printf("   Rows loaded:      %d\n", stats.RowsLoaded)
	fmt.Printf("   Rows skipped:     %d\n", stats.RowsSkipped)
	fmt.Printf("   Ratings imputed:  %d\n", stats.RatingsImputed)
	if stats.AgeGroupDerived {
		fmt.Println("   Age groups:       derived from age quartiles")
	}
	fmt.Printf("   Total revenue:    %.2f\n", ds.TotalRevenue())

	if ds.Len() == 0 {
		fmt.Println("\n📭 No rows loaded")
		return nil
	}

	transactions := ds.Transactions()

	printVocabulary("gender", func(t models.CustomerTransaction) string { return t.Gender }, transactions)
	printVocabulary("category", func(t models.CustomerTransaction) string { return t.Category }, transactions)
	printVocabulary("age_group", func(t models.CustomerTransaction) string { return t.AgeGroup }, transactions)
	printVocabulary("shipping_type", func(t models.CustomerTransaction) string { return t.ShippingType }, transactions)
	printVocabulary("discount_applied", func(t models.CustomerTransaction) string { return t.DiscountApplied }, transactions)
	printVocabulary("subscription_status", func(t models.CustomerTransaction) string { return t.SubscriptionStatus }, transactions)

	if inspectShowItems {
		printVocabulary("item_purchased", func(t models.CustomerTransaction) string { return t.ItemPurchased }, transactions)
	}

	return nil
}

func printVocabulary(column string, value func(models.CustomerTransaction) string, transactions []models.CustomerTransaction) {
	counts := make(map[string]int)
	for _, t := range transactions {
		counts[value(t)]++
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	fmt.Printf("\n   %s (%d distinct):\n", column, len(values))
	for _, v := range values {
		fmt.Printf("      %-24s %d\n", v, counts[v])
	}
}
