package offer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEvaluate_UnscopedPercentage(t *testing.T) {
	o := newOffer(t, "NEWYEAR25", validTerms(DiscountTypePercentage, "25"))

	ev, err := o.Evaluate([]Line{
		{SubjectID: "math", ContentTypeID: "video", Price: d("120")},
		{SubjectID: "bio", IsBundle: true, Price: d("80")},
	})

	require.NoError(t, err)
	assert.Equal(t, "200", ev.Subtotal.String())
	assert.Equal(t, "50", ev.Discount.String())
	assert.Equal(t, "150", ev.Total.String())
	assert.Equal(t, 2, ev.ApplicableItems)
}

func TestEvaluate_SubjectScopedPercentage(t *testing.T) {
	terms := validTerms(DiscountTypePercentage, "10")
	terms.SubjectID = ptr("X")
	o := newOffer(t, "XONLY", terms)

	ev, err := o.Evaluate([]Line{
		{SubjectID: "X", ContentTypeID: "video", Price: d("100")},
		{SubjectID: "Y", ContentTypeID: "video", Price: d("50")},
	})

	require.NoError(t, err)
	assert.Equal(t, "10", ev.Discount.String())
	assert.Equal(t, "140", ev.Total.String())
	assert.Equal(t, 1, ev.ApplicableItems)
}

func TestEvaluate_FixedPerMatchingLine(t *testing.T) {
	o := newOffer(t, "TENOFF", validTerms(DiscountTypeFixed, "10"))

	ev, err := o.Evaluate([]Line{
		{SubjectID: "a", ContentTypeID: "video", Price: d("40")},
		{SubjectID: "b", ContentTypeID: "video", Price: d("40")},
	})

	require.NoError(t, err)
	assert.Equal(t, "20", ev.Discount.String())
	assert.Equal(t, 2, ev.ApplicableItems)
}

func TestEvaluate_CappedAtSubtotal(t *testing.T) {
	o := newOffer(t, "BIGFIX", validTerms(DiscountTypeFixed, "500"))

	ev, err := o.Evaluate([]Line{{SubjectID: "a", ContentTypeID: "video", Price: d("30")}})

	require.NoError(t, err)
	assert.Equal(t, "30", ev.Discount.String())
	assert.True(t, ev.Total.IsZero())
}

func TestEvaluate_RoundsHalfAwayFromZero(t *testing.T) {
	o := newOffer(t, "ODD", validTerms(DiscountTypePercentage, "15"))

	// 15% of 0.30 = 0.045
	ev, err := o.Evaluate([]Line{{SubjectID: "a", ContentTypeID: "video", Price: d("0.30")}})

	require.NoError(t, err)
	assert.Equal(t, "0.05", ev.Discount.String())
	assert.Equal(t, "0.25", ev.Total.String())
}

func TestEvaluate_ContentTypeScopeSkipsBundles(t *testing.T) {
	terms := validTerms(DiscountTypePercentage, "50")
	terms.ContentTypeID = ptr("video")
	o := newOffer(t, "VIDEO50", terms)

	_, err := o.Evaluate([]Line{{SubjectID: "a", IsBundle: true, Price: d("100")}})

	assert.ErrorIs(t, err, ErrNoApplicable)
}

func TestEvaluate_EmptyLines(t *testing.T) {
	o := newOffer(t, "ANY", validTerms(DiscountTypePercentage, "10"))

	_, err := o.Evaluate(nil)

	assert.ErrorIs(t, err, ErrNoApplicable)
}
