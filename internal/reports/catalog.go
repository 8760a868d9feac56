package reports

import (
	"fmt"
	"strconv"

	"github.com/matthieukhl/shopsight/internal/dataset"
)

// Report is a catalog entry tying a report name to its runner. Run
// feeds JSON consumers (the API, --format json); Headers and Tabulate
// feed the CLI table renderer.
type Report struct {
	Name        string
	Description string
	Headers     []string
	Run         func(ds *dataset.Dataset) interface{}
	Tabulate    func(ds *dataset.Dataset) [][]string
}

// Catalog returns every report in its canonical order.
func Catalog() []Report {
	return []Report{
		{
			Name:        "revenue-by-gender",
			Description: "Total revenue per gender",
			Headers:     []string{"gender", "revenue"},
			Run:         func(ds *dataset.Dataset) interface{} { return RevenueByGender(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range RevenueByGender(ds) {
					rows = append(rows, []string{r.Gender, dec2(r.Revenue)})
				}
				return rows
			},
		},
		{
			Name:        "discount-over-spenders",
			Description: "Discounted purchases at or above the dataset-average amount",
			Headers:     []string{"customer_id", "purchase_amount"},
			Run:         func(ds *dataset.Dataset) interface{} { return DiscountOverSpenders(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range DiscountOverSpenders(ds) {
					rows = append(rows, []string{strconv.FormatInt(r.CustomerID, 10), dec2(r.PurchaseAmount)})
				}
				return rows
			},
		},
		{
			Name:        "top-rated-products",
			Description: "Top 5 items by average review rating",
			Headers:     []string{"item_purchased", "avg_rating"},
			Run:         func(ds *dataset.Dataset) interface{} { return TopRatedProducts(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range TopRatedProducts(ds) {
					rows = append(rows, []string{r.ItemPurchased, dec2(r.AvgRating)})
				}
				return rows
			},
		},
		{
			Name:        "shipping-comparison",
			Description: "Average purchase amount for Standard vs Express shipping",
			Headers:     []string{"shipping_type", "avg_purchase"},
			Run:         func(ds *dataset.Dataset) interface{} { return ShippingComparison(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range ShippingComparison(ds) {
					rows = append(rows, []string{r.ShippingType, dec2(r.AvgPurchase)})
				}
				return rows
			},
		},
		{
			Name:        "subscription-comparison",
			Description: "Customer count, average spend and revenue per subscription status",
			Headers:     []string{"subscription_status", "customers", "avg_spend", "total_revenue"},
			Run:         func(ds *dataset.Dataset) interface{} { return SubscriptionComparison(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range SubscriptionComparison(ds) {
					rows = append(rows, []string{
						r.SubscriptionStatus,
						strconv.Itoa(r.Customers),
						dec2(r.AvgSpend),
						dec2(r.TotalRevenue),
					})
				}
				return rows
			},
		},
		{
			Name:        "discount-rate-top-products",
			Description: "Top 5 items by share of discounted purchases",
			Headers:     []string{"item_purchased", "discount_rate"},
			Run:         func(ds *dataset.Dataset) interface{} { return DiscountRateTopProducts(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range DiscountRateTopProducts(ds) {
					rows = append(rows, []string{r.ItemPurchased, dec2(r.DiscountRate) + "%"})
				}
				return rows
			},
		},
		{
			Name:        "customer-segmentation",
			Description: "Shopper counts per New/Returning/Loyal segment",
			Headers:     []string{"segment", "customers"},
			Run:         func(ds *dataset.Dataset) interface{} { return CustomerSegmentation(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range CustomerSegmentation(ds) {
					rows = append(rows, []string{r.Segment, strconv.Itoa(r.Customers)})
				}
				return rows
			},
		},
		{
			Name:        "top-products-per-category",
			Description: "Top 3 items per category by order count",
			Headers:     []string{"category", "item_purchased", "total_orders", "rank"},
			Run:         func(ds *dataset.Dataset) interface{} { return TopProductsPerCategory(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range TopProductsPerCategory(ds) {
					rows = append(rows, []string{
						r.Category,
						r.ItemPurchased,
						strconv.Itoa(r.TotalOrders),
						strconv.Itoa(r.Rank),
					})
				}
				return rows
			},
		},
		{
			Name:        "repeat-buyer-subscription",
			Description: "Repeat buyers (>5 previous purchases) per subscription status",
			Headers:     []string{"subscription_status", "buyers"},
			Run:         func(ds *dataset.Dataset) interface{} { return RepeatBuyerSubscription(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range RepeatBuyerSubscription(ds) {
					rows = append(rows, []string{r.SubscriptionStatus, strconv.Itoa(r.Buyers)})
				}
				return rows
			},
		},
		{
			Name:        "revenue-by-age-group",
			Description: "Total revenue per age group, highest first",
			Headers:     []string{"age_group", "total_revenue"},
			Run:         func(ds *dataset.Dataset) interface{} { return RevenueByAgeGroup(ds) },
			Tabulate: func(ds *dataset.Dataset) [][]string {
				var rows [][]string
				for _, r := range RevenueByAgeGroup(ds) {
					rows = append(rows, []string{r.AgeGroup, dec2(r.TotalRevenue)})
				}
				return rows
			},
		},
	}
}

// ByName finds a catalog entry by its report name.
func ByName(name string) (Report, error) {
	for _, r := range Catalog() {
		if r.Name == name {
			return r, nil
		}
	}
	return Report{}, fmt.Errorf("unknown report %q", name)
}

func dec2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
