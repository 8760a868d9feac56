package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/matthieukhl/shopsight/internal/models"
)

// Columns the reports cannot run without. age_group and
// frequency_of_purchases are optional; both can be derived.
var requiredColumns = []string{
	"customer_id",
	"gender",
	"age",
	"item_purchased",
	"category",
	"purchase_amount",
	"discount_applied",
	"shipping_type",
	"review_rating",
	"subscription_status",
	"previous_purchases",
}

// LoadCSV reads and cleans the customer shopping behavior CSV at path.
// A missing or malformed file is fatal; individual bad rows are skipped
// with a warning and counted in LoadStats.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads CSV data from r into a cleaned Dataset.
//
// Cleaning pipeline, applied once at load so every report sees the
// same normalized table:
//  1. clean column names (lowercase, underscores, usd suffix dropped)
//  2. parse rows, skipping ones that violate the schema invariants
//  3. normalize categorical flags ("yes" → "Yes")
//  4. impute missing review ratings with the per-category median
//  5. derive age_group quartile buckets when the column is absent
//  6. map frequency_of_purchases to a day count
func Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[cleanColumnName(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}

	_, hasAgeGroup := cols["age_group"]
	_, hasFrequency := cols["frequency_of_purchases"]

	var (
		stats    LoadStats
		rows     []models.CustomerTransaction
		noRating []int // indices into rows with a missing review rating
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.RowsRead++
			stats.RowsSkipped++
			log.Printf("warning: line %d: unreadable row skipped: %v", line, err)
			continue
		}
		stats.RowsRead++

		t, ratingMissing, err := parseRow(record, cols)
		if err != nil {
			stats.RowsSkipped++
			log.Printf("warning: line %d: row excluded: %v", line, err)
			continue
		}

		rows = append(rows, t)
		if ratingMissing {
			noRating = append(noRating, len(rows)-1)
		}
	}

	stats.RowsLoaded = len(rows)
	stats.RatingsImputed = imputeRatings(rows, noRating)

	if !hasAgeGroup {
		deriveAgeGroups(rows)
		stats.AgeGroupDerived = len(rows) > 0
	}
	if hasFrequency {
		for i := range rows {
			rows[i].PurchaseFrequencyDays = frequencyDays(rows[i].FrequencyOfPurchases)
		}
	}

	return New(rows, stats), nil
}

func parseRow(record []string, cols map[string]int) (models.CustomerTransaction, bool, error) {
	var t models.CustomerTransaction

	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id, err := strconv.ParseInt(field("customer_id"), 10, 64)
	if err != nil {
		return t, false, fmt.Errorf("bad customer_id %q", field("customer_id"))
	}
	t.CustomerID = id

	age, err := strconv.Atoi(field("age"))
	if err != nil || age < 0 {
		return t, false, fmt.Errorf("bad age %q", field("age"))
	}
	t.Age = age

	amount, err := strconv.ParseFloat(field("purchase_amount"), 64)
	if err != nil {
		return t, false, fmt.Errorf("bad purchase_amount %q", field("purchase_amount"))
	}
	if amount < 0 {
		return t, false, fmt.Errorf("negative purchase_amount %.2f", amount)
	}
	t.PurchaseAmount = amount

	prev, err := strconv.Atoi(field("previous_purchases"))
	if err != nil {
		return t, false, fmt.Errorf("bad previous_purchases %q", field("previous_purchases"))
	}
	if prev < 0 {
		return t, false, fmt.Errorf("negative previous_purchases %d", prev)
	}
	t.PreviousPurchases = prev

	discount, err := normalizeDiscount(field("discount_applied"))
	if err != nil {
		return t, false, err
	}
	t.DiscountApplied = discount

	status, err := normalizeSubscription(field("subscription_status"))
	if err != nil {
		return t, false, err
	}
	t.SubscriptionStatus = status

	t.Gender = field("gender")
	t.ItemPurchased = field("item_purchased")
	t.Category = field("category")
	t.ShippingType = field("shipping_type")
	t.AgeGroup = field("age_group")
	t.FrequencyOfPurchases = strings.ToLower(field("frequency_of_purchases"))

	ratingMissing := false
	if raw := field("review_rating"); raw == "" {
		ratingMissing = true
	} else {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return t, false, fmt.Errorf("bad review_rating %q", raw)
		}
		t.ReviewRating = rating
	}

	return t, ratingMissing, nil
}

// normalizeDiscount folds case variants ("yes", "YES") into the
// canonical Yes/No vocabulary. Anything else is a schema violation.
func normalizeDiscount(raw string) (string, error) {
	switch {
	case strings.EqualFold(raw, models.DiscountYes):
		return models.DiscountYes, nil
	case strings.EqualFold(raw, models.DiscountNo):
		return models.DiscountNo, nil
	default:
		return "", fmt.Errorf("unrecognized discount_applied value %q", raw)
	}
}

func normalizeSubscription(raw string) (string, error) {
	switch {
	case strings.EqualFold(raw, models.StatusSubscribed):
		return models.StatusSubscribed, nil
	case strings.EqualFold(raw, models.StatusNotSubscribed):
		return models.StatusNotSubscribed, nil
	default:
		return "", fmt.Errorf("unrecognized subscription_status value %q", raw)
	}
}

// cleanColumnName standardizes a raw CSV header: lowercase, spaces to
// underscores, and the exported "Purchase Amount (USD)" header renamed
// to plain purchase_amount.
func cleanColumnName(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	if h == "purchase_amount_(usd)" {
		return "purchase_amount"
	}
	return h
}
