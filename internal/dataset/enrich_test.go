package dataset

import (
	"testing"

	"github.com/matthieukhl/shopsight/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 3.0, median([]float64{3}))
	assert.Equal(t, 3.0, median([]float64{4, 2, 3}))
	assert.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 10.0, quantile(sorted, 0))
	assert.Equal(t, 20.0, quantile(sorted, 0.25))
	assert.Equal(t, 30.0, quantile(sorted, 0.5))
	assert.Equal(t, 50.0, quantile(sorted, 1))
	assert.Equal(t, 15.0, quantile([]float64{10, 20}, 0.5))
}

func TestDeriveAgeGroupsSplitsEvenly(t *testing.T) {
	var rows []models.CustomerTransaction
	for age := 20; age < 60; age++ {
		rows = append(rows, models.CustomerTransaction{Age: age})
	}
	deriveAgeGroups(rows)

	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.AgeGroup]++
	}

	assert.Len(t, counts, 4)
	for _, label := range ageGroupLabels {
		assert.Equal(t, 10, counts[label], "bucket %s", label)
	}
}

func TestFrequencyDays(t *testing.T) {
	assert.Equal(t, 7, frequencyDays("weekly"))
	assert.Equal(t, 14, frequencyDays("bi weekly"))
	assert.Equal(t, 90, frequencyDays("every 3 months"))
	assert.Equal(t, 0, frequencyDays("whenever"))
}
