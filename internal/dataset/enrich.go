package dataset

import (
	"sort"

	"github.com/matthieukhl/shopsight/internal/models"
)

// Age group labels, youngest quartile first.
var ageGroupLabels = [4]string{"Young Adult", "Adult", "Middle Age", "Senior"}

// Purchase frequency mapped to an approximate interval in days.
var frequencyToDays = map[string]int{
	"weekly":         7,
	"fortnightly":    14,
	"bi weekly":      14,
	"monthly":        30,
	"quarterly":      90,
	"every 3 months": 90,
	"annually":       365,
}

// imputeRatings fills missing review ratings with the median rating of
// the row's category, matching how the upstream pipeline patches the
// raw export. Rows in a category with no rated purchases at all keep a
// zero rating. Returns the number of rows patched.
func imputeRatings(rows []models.CustomerTransaction, missing []int) int {
	if len(missing) == 0 {
		return 0
	}

	skip := make(map[int]bool, len(missing))
	for _, i := range missing {
		skip[i] = true
	}

	byCategory := make(map[string][]float64)
	for i, t := range rows {
		if !skip[i] {
			byCategory[t.Category] = append(byCategory[t.Category], t.ReviewRating)
		}
	}

	medians := make(map[string]float64, len(byCategory))
	for cat, ratings := range byCategory {
		medians[cat] = median(ratings)
	}

	imputed := 0
	for _, i := range missing {
		if m, ok := medians[rows[i].Category]; ok {
			rows[i].ReviewRating = m
			imputed++
		}
	}
	return imputed
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// deriveAgeGroups buckets rows into age quartiles when the dataset has
// no age_group column. Quartile boundaries use linear interpolation, so
// an evenly spread dataset splits into four near-equal buckets.
func deriveAgeGroups(rows []models.CustomerTransaction) {
	if len(rows) == 0 {
		return
	}

	ages := make([]float64, len(rows))
	for i, t := range rows {
		ages[i] = float64(t.Age)
	}
	sort.Float64s(ages)

	q1 := quantile(ages, 0.25)
	q2 := quantile(ages, 0.50)
	q3 := quantile(ages, 0.75)

	for i := range rows {
		age := float64(rows[i].Age)
		switch {
		case age <= q1:
			rows[i].AgeGroup = ageGroupLabels[0]
		case age <= q2:
			rows[i].AgeGroup = ageGroupLabels[1]
		case age <= q3:
			rows[i].AgeGroup = ageGroupLabels[2]
		default:
			rows[i].AgeGroup = ageGroupLabels[3]
		}
	}
}

// quantile computes the q-th quantile of sorted values with linear
// interpolation between adjacent ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lo := int(pos)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// frequencyDays converts a purchase frequency label to days between
// purchases. Unknown labels map to 0.
func frequencyDays(freq string) int {
	return frequencyToDays[freq]
}
