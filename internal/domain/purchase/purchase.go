package purchase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is the snapshot of one cart line at checkout.
type Line struct {
	SubjectID       string          `json:"subject_id"`
	SubjectTitle    string          `json:"subject_title"`
	ContentTypeID   string          `json:"content_type_id,omitempty"`
	ContentTypeName string          `json:"content_type_name,omitempty"`
	IsBundle        bool            `json:"is_bundle"`
	Price           decimal.Decimal `json:"price"`
	GrantedTypeIDs  []string        `json:"granted_content_type_ids"`
}

// Purchase records a completed checkout.
type Purchase struct {
	id               string
	userID           string
	offerCode        *string
	subtotal         decimal.Decimal
	discount         decimal.Decimal
	total            decimal.Decimal
	currency         string
	paymentReference string
	lines            []Line
	createdAt        time.Time
}

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

func NewPurchase(userID string, offerCode *string, totals Totals, currency, paymentReference string, lines []Line) (*Purchase, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("a purchase needs at least one line")
	}
	if paymentReference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}
	if !totals.Subtotal.Sub(totals.Discount).Equal(totals.Total) {
		return nil, fmt.Errorf("purchase totals do not add up")
	}

	return &Purchase{
		id:               uuid.NewString(),
		userID:           userID,
		offerCode:        offerCode,
		subtotal:         totals.Subtotal,
		discount:         totals.Discount,
		total:            totals.Total,
		currency:         currency,
		paymentReference: paymentReference,
		lines:            lines,
		createdAt:        time.Now().UTC(),
	}, nil
}

func ReconstructPurchase(id, userID string, offerCode *string, totals Totals, currency, paymentReference string,
	lines []Line, createdAt time.Time) *Purchase {
	return &Purchase{
		id:               id,
		userID:           userID,
		offerCode:        offerCode,
		subtotal:         totals.Subtotal,
		discount:         totals.Discount,
		total:            totals.Total,
		currency:         currency,
		paymentReference: paymentReference,
		lines:            lines,
		createdAt:        createdAt,
	}
}

func (p *Purchase) ID() string                { return p.id }
func (p *Purchase) UserID() string            { return p.userID }
func (p *Purchase) OfferCode() *string        { return p.offerCode }
func (p *Purchase) Subtotal() decimal.Decimal { return p.subtotal }
func (p *Purchase) Discount() decimal.Decimal { return p.discount }
func (p *Purchase) Total() decimal.Decimal    { return p.total }
func (p *Purchase) Currency() string          { return p.currency }
func (p *Purchase) PaymentReference() string  { return p.paymentReference }
func (p *Purchase) Lines() []Line             { return p.lines }
func (p *Purchase) CreatedAt() time.Time      { return p.createdAt }
