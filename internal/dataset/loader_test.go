package dataset

import (
	"strings"
	"testing"

	"github.com/matthieukhl/shopsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mirrors the real export: spaced headers, USD suffix on the amount
// column, mixed-case discount flags, and a missing review rating.
const sampleCSV = `Customer ID,Gender,Age,Item Purchased,Category,Purchase Amount (USD),Discount Applied,Shipping Type,Review Rating,Frequency of Purchases,Subscription Status,Previous Purchases
1,Male,55,Blouse,Clothing,53.00,yes,Express,3.1,Fortnightly,Subscribed,14
2,Male,19,Sweater,Clothing,64.00,Yes,Express,3.1,Fortnightly,Subscribed,2
3,Female,50,Jeans,Clothing,73.00,No,Free Shipping,,Weekly,Not Subscribed,23
4,Male,21,Sandals,Footwear,90.00,NO,Next Day Air,3.5,Weekly,not subscribed,49
5,Female,45,Blouse,Clothing,49.00,Yes,Standard,2.7,Annually,Subscribed,31
6,Female,46,Jacket,Outerwear,20.00,no,Standard,2.9,Every 3 Months,Not Subscribed,14
`

func TestParseCleansAndNormalizes(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 6, ds.Len())

	stats := ds.Stats()
	assert.Equal(t, 6, stats.RowsRead)
	assert.Equal(t, 6, stats.RowsLoaded)
	assert.Equal(t, 0, stats.RowsSkipped)

	rows := ds.Transactions()

	// "yes"/"NO"/"no" fold to canonical Yes/No
	assert.Equal(t, models.DiscountYes, rows[0].DiscountApplied)
	assert.Equal(t, models.DiscountNo, rows[3].DiscountApplied)
	assert.Equal(t, models.DiscountNo, rows[5].DiscountApplied)

	// "not subscribed" folds to the canonical status
	assert.Equal(t, models.StatusNotSubscribed, rows[3].SubscriptionStatus)

	// The USD-suffixed header mapped onto purchase_amount
	assert.Equal(t, 53.00, rows[0].PurchaseAmount)

	// Frequency labels lowercase and map to day counts
	assert.Equal(t, "fortnightly", rows[0].FrequencyOfPurchases)
	assert.Equal(t, 14, rows[0].PurchaseFrequencyDays)
	assert.Equal(t, 7, rows[2].PurchaseFrequencyDays)
	assert.Equal(t, 365, rows[4].PurchaseFrequencyDays)
	assert.Equal(t, 90, rows[5].PurchaseFrequencyDays)
}

func TestParseImputesMissingRatings(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	stats := ds.Stats()
	assert.Equal(t, 1, stats.RatingsImputed)

	// Row 3's missing rating takes the Clothing median of {3.1, 3.1, 2.7}.
	rows := ds.Transactions()
	assert.Equal(t, 3.1, rows[2].ReviewRating)
}

func TestParseDerivesAgeGroups(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.True(t, ds.Stats().AgeGroupDerived)

	seen := make(map[string]bool)
	for _, r := range ds.Transactions() {
		assert.Contains(t, []string{"Young Adult", "Adult", "Middle Age", "Senior"}, r.AgeGroup)
		seen[r.AgeGroup] = true
	}

	// Youngest and oldest rows land in the outer buckets
	rows := ds.Transactions()
	assert.Equal(t, "Young Adult", rows[1].AgeGroup) // age 19
	assert.Equal(t, "Senior", rows[0].AgeGroup)      // age 55
}

func TestParseKeepsProvidedAgeGroups(t *testing.T) {
	csv := `customer_id,gender,age,age_group,item_purchased,category,purchase_amount,discount_applied,shipping_type,review_rating,subscription_status,previous_purchases
1,Male,30,Adult,Shirt,Clothing,10.00,Yes,Standard,4.0,Subscribed,3
`
	ds, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.False(t, ds.Stats().AgeGroupDerived)
	assert.Equal(t, "Adult", ds.Transactions()[0].AgeGroup)
}

func TestParseSkipsViolatingRows(t *testing.T) {
	csv := `customer_id,gender,age,item_purchased,category,purchase_amount,discount_applied,shipping_type,review_rating,subscription_status,previous_purchases
1,Male,30,Shirt,Clothing,10.00,Yes,Standard,4.0,Subscribed,3
2,Female,25,Dress,Clothing,-5.00,Yes,Standard,4.0,Subscribed,3
3,Male,40,Boots,Footwear,20.00,Maybe,Standard,4.0,Subscribed,3
4,Female,35,Hat,Accessories,15.00,No,Standard,4.0,Subscribed,-1
not-a-number,Male,30,Belt,Accessories,12.00,No,Standard,4.0,Subscribed,3
5,Male,50,Coat,Outerwear,30.00,No,Standard,4.0,Weekly Member,3
`
	ds, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	stats := ds.Stats()
	assert.Equal(t, 6, stats.RowsRead)
	assert.Equal(t, 1, stats.RowsLoaded)
	assert.Equal(t, 5, stats.RowsSkipped)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, int64(1), ds.Transactions()[0].CustomerID)
}

func TestParseMissingRequiredColumns(t *testing.T) {
	csv := `customer_id,gender,age
1,Male,30
`
	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "purchase_amount")
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseHeaderOnly(t *testing.T) {
	csv := `customer_id,gender,age,item_purchased,category,purchase_amount,discount_applied,shipping_type,review_rating,subscription_status,previous_purchases
`
	ds, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0.0, ds.TotalRevenue())
}
