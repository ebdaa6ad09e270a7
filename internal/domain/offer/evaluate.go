package offer

import "github.com/shopspring/decimal"

// Line is the priced view of a cart line that an offer is evaluated against.
type Line struct {
	SubjectID     string
	ContentTypeID string
	IsBundle      bool
	Price         decimal.Decimal
}

type Evaluation struct {
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	ApplicableItems int
}

// Evaluate computes the discount over lines. Percentage offers take value% of each matching
// line; fixed offers take value once per matching line. The discount is capped at the subtotal
// and rounded to cents. It returns ErrNoApplicable when no line matches.
func (o *Offer) Evaluate(lines []Line) (Evaluation, error) {
	subtotal := decimal.Zero
	discount := decimal.Zero
	applicable := 0

	for _, l := range lines {
		subtotal = subtotal.Add(l.Price)
		if !o.AppliesTo(l.SubjectID, l.ContentTypeID, l.IsBundle) {
			continue
		}
		applicable++
		switch o.discountType {
		case DiscountTypePercentage:
			discount = discount.Add(l.Price.Mul(o.value).Div(hundred))
		case DiscountTypeFixed:
			discount = discount.Add(o.value)
		}
	}

	if applicable == 0 {
		return Evaluation{}, ErrNoApplicable
	}

	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	discount = discount.Round(2)

	return Evaluation{
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           subtotal.Sub(discount),
		ApplicableItems: applicable,
	}, nil
}
