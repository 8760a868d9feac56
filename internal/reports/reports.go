package reports

import (
	"math"
	"sort"

	"github.com/matthieukhl/shopsight/internal/dataset"
	"github.com/matthieukhl/shopsight/internal/models"
)

// Each report is a pure function over an immutable Dataset snapshot:
// filter, group, aggregate, sort, limit. An empty dataset yields an
// empty result, never an error. All tie-breaks are explicit so a
// report run twice on the same snapshot returns identical output.

const topProductsLimit = 5
const topPerCategoryLimit = 3

type GenderRevenue struct {
	Gender  string  `json:"gender"`
	Revenue float64 `json:"revenue"`
}

type OverSpender struct {
	CustomerID     int64   `json:"customer_id"`
	PurchaseAmount float64 `json:"purchase_amount"`
}

type ProductRating struct {
	ItemPurchased string  `json:"item_purchased"`
	AvgRating     float64 `json:"avg_rating"`
}

type ShippingAverage struct {
	ShippingType string  `json:"shipping_type"`
	AvgPurchase  float64 `json:"avg_purchase"`
}

type SubscriptionSummary struct {
	SubscriptionStatus string  `json:"subscription_status"`
	Customers          int     `json:"customers"`
	AvgSpend           float64 `json:"avg_spend"`
	TotalRevenue       float64 `json:"total_revenue"`
}

type ProductDiscountRate struct {
	ItemPurchased string  `json:"item_purchased"`
	DiscountRate  float64 `json:"discount_rate"`
}

type SegmentCount struct {
	Segment   string `json:"segment"`
	Customers int    `json:"customers"`
}

type CategoryTopProduct struct {
	Category      string `json:"category"`
	ItemPurchased string `json:"item_purchased"`
	TotalOrders   int    `json:"total_orders"`
	Rank          int    `json:"rank"`
}

type RepeatBuyerCount struct {
	SubscriptionStatus string `json:"subscription_status"`
	Buyers             int    `json:"buyers"`
}

type AgeGroupRevenue struct {
	AgeGroup     string  `json:"age_group"`
	TotalRevenue float64 `json:"total_revenue"`
}

// RevenueByGender sums purchase amounts per gender, in first-seen order.
func RevenueByGender(ds *dataset.Dataset) []GenderRevenue {
	totals := make(map[string]float64)
	var order []string

	for _, t := range ds.Transactions() {
		if _, seen := totals[t.Gender]; !seen {
			order = append(order, t.Gender)
		}
		totals[t.Gender] += t.PurchaseAmount
	}

	out := make([]GenderRevenue, 0, len(order))
	for _, g := range order {
		out = append(out, GenderRevenue{Gender: g, Revenue: totals[g]})
	}
	return out
}

// DiscountOverSpenders lists transactions that used a discount yet
// still spent at or above the dataset-wide average purchase amount.
// The average is computed once over the entire dataset, not over the
// discounted subset.
func DiscountOverSpenders(ds *dataset.Dataset) []OverSpender {
	n := ds.Len()
	if n == 0 {
		return nil
	}
	avg := ds.TotalRevenue() / float64(n)

	var out []OverSpender
	for _, t := range ds.Transactions() {
		if t.DiscountUsed() && t.PurchaseAmount >= avg {
			out = append(out, OverSpender{CustomerID: t.CustomerID, PurchaseAmount: t.PurchaseAmount})
		}
	}
	return out
}

// TopRatedProducts returns the five items with the highest average
// review rating, rounded to 2 decimals. Ties keep first-seen order.
func TopRatedProducts(ds *dataset.Dataset) []ProductRating {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, t := range ds.Transactions() {
		if _, seen := counts[t.ItemPurchased]; !seen {
			order = append(order, t.ItemPurchased)
		}
		sums[t.ItemPurchased] += t.ReviewRating
		counts[t.ItemPurchased]++
	}

	out := make([]ProductRating, 0, len(order))
	for _, item := range order {
		out = append(out, ProductRating{
			ItemPurchased: item,
			AvgRating:     round2(sums[item] / float64(counts[item])),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// ShippingComparison reports the average purchase amount for Standard
// and Express shipping, rounded to 2 decimals. A shipping type with no
// transactions produces no row.
func ShippingComparison(ds *dataset.Dataset) []ShippingAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, t := range ds.Transactions() {
		if t.ShippingType == models.ShippingStandard || t.ShippingType == models.ShippingExpress {
			sums[t.ShippingType] += t.PurchaseAmount
			counts[t.ShippingType]++
		}
	}

	var out []ShippingAverage
	for _, st := range []string{models.ShippingStandard, models.ShippingExpress} {
		if counts[st] > 0 {
			out = append(out, ShippingAverage{
				ShippingType: st,
				AvgPurchase:  round2(sums[st] / float64(counts[st])),
			})
		}
	}
	return out
}

// SubscriptionComparison groups by subscription status and reports
// customer count, average spend, and total revenue (both rounded to 2
// decimals), ordered by total revenue ascending with average spend
// descending as the tie-break.
func SubscriptionComparison(ds *dataset.Dataset) []SubscriptionSummary {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, t := range ds.Transactions() {
		if _, seen := counts[t.SubscriptionStatus]; !seen {
			order = append(order, t.SubscriptionStatus)
		}
		sums[t.SubscriptionStatus] += t.PurchaseAmount
		counts[t.SubscriptionStatus]++
	}

	out := make([]SubscriptionSummary, 0, len(order))
	for _, status := range order {
		out = append(out, SubscriptionSummary{
			SubscriptionStatus: status,
			Customers:          counts[status],
			AvgSpend:           round2(sums[status] / float64(counts[status])),
			TotalRevenue:       round2(sums[status]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue < out[j].TotalRevenue
		}
		return out[i].AvgSpend > out[j].AvgSpend
	})
	return out
}

// DiscountRateTopProducts returns the five items with the highest share
// of discounted purchases, as a 0-100 percentage rounded to 2 decimals.
func DiscountRateTopProducts(ds *dataset.Dataset) []ProductDiscountRate {
	discounted := make(map[string]int)
	counts := make(map[string]int)
	var order []string

	for _, t := range ds.Transactions() {
		if _, seen := counts[t.ItemPurchased]; !seen {
			order = append(order, t.ItemPurchased)
		}
		counts[t.ItemPurchased]++
		if t.DiscountUsed() {
			discounted[t.ItemPurchased]++
		}
	}

	out := make([]ProductDiscountRate, 0, len(order))
	for _, item := range order {
		if counts[item] == 0 {
			continue
		}
		rate := 100 * float64(discounted[item]) / float64(counts[item])
		out = append(out, ProductDiscountRate{ItemPurchased: item, DiscountRate: round2(rate)})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DiscountRate > out[j].DiscountRate })
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// CustomerSegmentation counts shoppers per New/Returning/Loyal segment.
func CustomerSegmentation(ds *dataset.Dataset) []SegmentCount {
	counts := make(map[string]int)
	for _, t := range ds.Transactions() {
		counts[t.Segment()]++
	}

	var out []SegmentCount
	for _, seg := range []string{models.SegmentNew, models.SegmentReturning, models.SegmentLoyal} {
		if counts[seg] > 0 {
			out = append(out, SegmentCount{Segment: seg, Customers: counts[seg]})
		}
	}
	return out
}

// TopProductsPerCategory ranks items within each category by order
// count and keeps the top three per category. Ordering is fully
// deterministic: categories alphabetically, then order count
// descending, then item name ascending; ranks are row numbers, so tied
// counts still get consecutive distinct ranks.
func TopProductsPerCategory(ds *dataset.Dataset) []CategoryTopProduct {
	type key struct{ category, item string }
	counts := make(map[key]int)

	for _, t := range ds.Transactions() {
		counts[key{t.Category, t.ItemPurchased}]++
	}

	rows := make([]CategoryTopProduct, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, CategoryTopProduct{Category: k.category, ItemPurchased: k.item, TotalOrders: n})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		if rows[i].TotalOrders != rows[j].TotalOrders {
			return rows[i].TotalOrders > rows[j].TotalOrders
		}
		return rows[i].ItemPurchased < rows[j].ItemPurchased
	})

	var out []CategoryTopProduct
	rank := 0
	current := ""
	for _, r := range rows {
		if r.Category != current {
			current = r.Category
			rank = 0
		}
		rank++
		if rank > topPerCategoryLimit {
			continue
		}
		r.Rank = rank
		out = append(out, r)
	}
	return out
}

// RepeatBuyerSubscription counts transactions from repeat buyers (more
// than five previous purchases) per subscription status.
func RepeatBuyerSubscription(ds *dataset.Dataset) []RepeatBuyerCount {
	counts := make(map[string]int)
	var order []string

	for _, t := range ds.Transactions() {
		if t.PreviousPurchases <= 5 {
			continue
		}
		if _, seen := counts[t.SubscriptionStatus]; !seen {
			order = append(order, t.SubscriptionStatus)
		}
		counts[t.SubscriptionStatus]++
	}

	out := make([]RepeatBuyerCount, 0, len(order))
	for _, status := range order {
		out = append(out, RepeatBuyerCount{SubscriptionStatus: status, Buyers: counts[status]})
	}
	return out
}

// RevenueByAgeGroup sums purchase amounts per age group, highest
// revenue first. Ties keep first-seen order.
func RevenueByAgeGroup(ds *dataset.Dataset) []AgeGroupRevenue {
	totals := make(map[string]float64)
	var order []string

	for _, t := range ds.Transactions() {
		if _, seen := totals[t.AgeGroup]; !seen {
			order = append(order, t.AgeGroup)
		}
		totals[t.AgeGroup] += t.PurchaseAmount
	}

	out := make([]AgeGroupRevenue, 0, len(order))
	for _, g := range order {
		out = append(out, AgeGroupRevenue{AgeGroup: g, TotalRevenue: totals[g]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalRevenue > out[j].TotalRevenue })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
