package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	cases := []struct {
		previous int
		want     string
	}{
		// 0 previous purchases falls into Loyal, matching the upstream
		// segmentation's else branch.
		{0, SegmentLoyal},
		{1, SegmentNew},
		{2, SegmentReturning},
		{5, SegmentReturning},
		{10, SegmentReturning},
		{11, SegmentLoyal},
		{40, SegmentLoyal},
	}

	for _, tc := range cases {
		tr := CustomerTransaction{PreviousPurchases: tc.previous}
		assert.Equal(t, tc.want, tr.Segment(), "previous_purchases=%d", tc.previous)
	}
}

func TestDiscountUsed(t *testing.T) {
	assert.True(t, CustomerTransaction{DiscountApplied: DiscountYes}.DiscountUsed())
	assert.False(t, CustomerTransaction{DiscountApplied: DiscountNo}.DiscountUsed())
	// Raw lowercase values never reach reports; the loader normalizes
	// them first.
	assert.False(t, CustomerTransaction{DiscountApplied: "yes"}.DiscountUsed())
}
