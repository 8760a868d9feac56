package cmd

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	seedRows int
	seedOut  string
	seedSeed int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic sample CSV",
	Long: `Write a synthetic customer shopping behavior CSV for local testing.
The output deliberately mirrors the quirks of real exports: mixed-case
discount flags, occasional missing review ratings, and no age_group
column, so the full cleaning pipeline gets exercised.`,
	RunE: seedSampleData,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedRows, "rows", 500, "Number of rows to generate")
	seedCmd.Flags().StringVar(&seedOut, "out", "customer_shopping_behavior.csv", "Output file path")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 1, "Random seed (same seed, same file)")
}

var sampleCatalog = []struct {
	category string
	items    []string
}{
	{"Clothing", []string{"Blouse", "Sweater", "Jeans", "Shirt", "Dress", "Socks"}},
	{"Footwear", []string{"Sandals", "Sneakers", "Boots", "Slippers"}},
	{"Outerwear", []string{"Jacket", "Coat"}},
	{"Accessories", []string{"Scarf", "Belt", "Handbag", "Sunglasses", "Hat"}},
}

func seedSampleData(cmd *cobra.Command, args []string) error {
	fmt.Printf("🌱 Generating %d rows into %s...\n", seedRows, seedOut)

	f, err := os.Create(seedOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(seedSeed))
	w := csv.NewWriter(f)

	header := []string{
		"Customer ID", "Gender", "Age", "Item Purchased", "Category",
		"Purchase Amount (USD)", "Discount Applied", "Shipping Type",
		"Review Rating", "Frequency of Purchases", "Subscription Status",
		"Previous Purchases",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	genders := []string{"Male", "Female"}
	shipping := []string{"Standard", "Express", "Free Shipping", "Next Day Air", "Store Pickup"}
	// Mixed case on purpose, like the real export
	discounts := []string{"Yes", "No", "yes", "no"}
	frequencies := []string{"Weekly", "Fortnightly", "Monthly", "Quarterly", "Bi Weekly", "Annually", "Every 3 Months"}
	subscriptions := []string{"Subscribed", "Not Subscribed"}

	for i := 0; i < seedRows; i++ {
		entry := sampleCatalog[rng.Intn(len(sampleCatalog))]
		item := entry.items[rng.Intn(len(entry.items))]

		rating := ""
		if rng.Intn(20) != 0 { // ~5% missing, pipeline imputes them
			rating = strconv.FormatFloat(1.0+rng.Float64()*4.0, 'f', 1, 64)
		}

		row := []string{
			strconv.Itoa(i + 1),
			genders[rng.Intn(len(genders))],
			strconv.Itoa(18 + rng.Intn(52)),
			item,
			entry.category,
			strconv.FormatFloat(5.0+rng.Float64()*95.0, 'f', 2, 64),
			discounts[rng.Intn(len(discounts))],
			shipping[rng.Intn(len(shipping))],
			rating,
			frequencies[rng.Intn(len(frequencies))],
			subscriptions[rng.Intn(len(subscriptions))],
			strconv.Itoa(rng.Intn(50)),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	fmt.Printf("✅ Wrote %d rows to %s\n", seedRows, seedOut)
	return nil
}
