package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContentTypePricing is the per-subject price of one content type.
// There is at most one per (subject, content type).
type ContentTypePricing struct {
	id            string
	subjectID     string
	contentTypeID string
	price         decimal.Decimal
	updatedAt     time.Time
}

func NewContentTypePricing(subjectID, contentTypeID string, price decimal.Decimal) (*ContentTypePricing, error) {
	if subjectID == "" || contentTypeID == "" {
		return nil, fmt.Errorf("subject ID and content type ID are required")
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	return &ContentTypePricing{
		id:            uuid.NewString(),
		subjectID:     subjectID,
		contentTypeID: contentTypeID,
		price:         price.Round(2),
		updatedAt:     time.Now().UTC(),
	}, nil
}

func ReconstructContentTypePricing(id, subjectID, contentTypeID string, price decimal.Decimal, updatedAt time.Time) *ContentTypePricing {
	return &ContentTypePricing{
		id:            id,
		subjectID:     subjectID,
		contentTypeID: contentTypeID,
		price:         price,
		updatedAt:     updatedAt,
	}
}

func (p *ContentTypePricing) ID() string             { return p.id }
func (p *ContentTypePricing) SubjectID() string      { return p.subjectID }
func (p *ContentTypePricing) ContentTypeID() string  { return p.contentTypeID }
func (p *ContentTypePricing) Price() decimal.Decimal { return p.price }
func (p *ContentTypePricing) UpdatedAt() time.Time   { return p.updatedAt }

func (p *ContentTypePricing) UpdatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	p.price = price.Round(2)
	p.updatedAt = time.Now().UTC()
	return nil
}
