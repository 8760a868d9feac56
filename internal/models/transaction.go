package models

// CustomerTransaction is one row of the customer shopping behavior
// dataset. One row is one purchase transaction; customer_id is unique
// per row, not per shopper.
type CustomerTransaction struct {
	CustomerID            int64   `json:"customer_id" db:"customer_id"`
	Gender                string  `json:"gender" db:"gender"`
	Age                   int     `json:"age" db:"age"`
	AgeGroup              string  `json:"age_group" db:"age_group"`
	ItemPurchased         string  `json:"item_purchased" db:"item_purchased"`
	Category              string  `json:"category" db:"category"`
	PurchaseAmount        float64 `json:"purchase_amount" db:"purchase_amount"`
	DiscountApplied       string  `json:"discount_applied" db:"discount_applied"`
	ShippingType          string  `json:"shipping_type" db:"shipping_type"`
	ReviewRating          float64 `json:"review_rating" db:"review_rating"`
	FrequencyOfPurchases  string  `json:"frequency_of_purchases" db:"frequency_of_purchases"`
	PurchaseFrequencyDays int     `json:"purchases_frequency_day" db:"purchases_frequency_day"`
	SubscriptionStatus    string  `json:"subscription_status" db:"subscription_status"`
	PreviousPurchases     int     `json:"previous_purchases" db:"previous_purchases"`
}

// Canonical values for the discount flag after load-time normalization.
const (
	DiscountYes = "Yes"
	DiscountNo  = "No"
)

// Subscription statuses as they appear in the dataset.
const (
	StatusSubscribed    = "Subscribed"
	StatusNotSubscribed = "Not Subscribed"
)

// Shipping types the comparison report cares about.
const (
	ShippingStandard = "Standard"
	ShippingExpress  = "Express"
)

// Customer segments derived from purchase history.
const (
	SegmentNew       = "New"
	SegmentReturning = "Returning"
	SegmentLoyal     = "Loyal"
)

// DiscountUsed reports whether the transaction used a discount.
func (t CustomerTransaction) DiscountUsed() bool {
	return t.DiscountApplied == DiscountYes
}

// Segment classifies the shopper by previous purchase count:
// exactly 1 is New, 2-10 is Returning, everything else is Loyal.
// Note previous_purchases = 0 lands in Loyal; that matches the
// upstream dataset's published segmentation, odd as it looks.
func (t CustomerTransaction) Segment() string {
	switch {
	case t.PreviousPurchases == 1:
		return SegmentNew
	case t.PreviousPurchases >= 2 && t.PreviousPurchases <= 10:
		return SegmentReturning
	default:
		return SegmentLoyal
	}
}
