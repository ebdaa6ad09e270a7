package offer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Offer is a promotional code optionally scoped to a subject and/or a content type.
type Offer struct {
	id            string
	code          string
	description   string
	discountType  DiscountType
	value         decimal.Decimal
	subjectID     *string
	contentTypeID *string
	validFrom     time.Time
	validUntil    time.Time
	maxUsage      *int
	currentUsage  int
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

// Terms groups the editable fields of an offer.
type Terms struct {
	Description   string
	DiscountType  DiscountType
	Value         decimal.Decimal
	SubjectID     *string
	ContentTypeID *string
	ValidFrom     time.Time
	ValidUntil    time.Time
	MaxUsage      *int
}

// NormalizeCode trims and upper-cases an offer code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewOffer(code string, terms Terms) (*Offer, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("offer code is required")
	}
	if len(code) > 50 {
		return nil, fmt.Errorf("offer code too long (max 50 characters)")
	}
	if err := terms.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Offer{
		id:        uuid.NewString(),
		code:      code,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}
	o.apply(terms)
	return o, nil
}

func ReconstructOffer(id, code string, terms Terms, currentUsage int, active bool, createdAt, updatedAt time.Time) *Offer {
	o := &Offer{
		id:           id,
		code:         code,
		currentUsage: currentUsage,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	o.apply(terms)
	return o
}

func (t Terms) validate() error {
	if !t.DiscountType.IsValid() {
		return fmt.Errorf("invalid discount type: %s", t.DiscountType)
	}
	if !t.Value.IsPositive() {
		return fmt.Errorf("discount value must be greater than zero")
	}
	if t.DiscountType == DiscountTypePercentage && t.Value.GreaterThan(hundred) {
		return fmt.Errorf("percentage discount cannot exceed 100")
	}
	if t.ValidFrom.IsZero() || t.ValidUntil.IsZero() {
		return fmt.Errorf("validity window is required")
	}
	if !t.ValidUntil.After(t.ValidFrom) {
		return fmt.Errorf("valid until must be after valid from")
	}
	if t.MaxUsage != nil && *t.MaxUsage <= 0 {
		return fmt.Errorf("max usage must be greater than zero")
	}
	return nil
}

func (o *Offer) apply(t Terms) {
	o.description = strings.TrimSpace(t.Description)
	o.discountType = t.DiscountType
	o.value = t.Value
	o.subjectID = nonEmpty(t.SubjectID)
	o.contentTypeID = nonEmpty(t.ContentTypeID)
	o.validFrom = t.ValidFrom.UTC()
	o.validUntil = t.ValidUntil.UTC()
	o.maxUsage = t.MaxUsage
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func (o *Offer) ID() string                 { return o.id }
func (o *Offer) Code() string               { return o.code }
func (o *Offer) Description() string        { return o.description }
func (o *Offer) DiscountType() DiscountType { return o.discountType }
func (o *Offer) Value() decimal.Decimal     { return o.value }
func (o *Offer) SubjectID() *string         { return o.subjectID }
func (o *Offer) ContentTypeID() *string     { return o.contentTypeID }
func (o *Offer) ValidFrom() time.Time       { return o.validFrom }
func (o *Offer) ValidUntil() time.Time      { return o.validUntil }
func (o *Offer) MaxUsage() *int             { return o.maxUsage }
func (o *Offer) CurrentUsage() int          { return o.currentUsage }
func (o *Offer) IsActive() bool             { return o.active }
func (o *Offer) CreatedAt() time.Time       { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time       { return o.updatedAt }

func (o *Offer) Terms() Terms {
	return Terms{
		Description:   o.description,
		DiscountType:  o.discountType,
		Value:         o.value,
		SubjectID:     o.subjectID,
		ContentTypeID: o.contentTypeID,
		ValidFrom:     o.validFrom,
		ValidUntil:    o.validUntil,
		MaxUsage:      o.maxUsage,
	}
}

// UpdateTerms replaces the editable fields. Lowering max usage below the current usage is
// allowed and simply exhausts the offer.
func (o *Offer) UpdateTerms(t Terms) error {
	if err := t.validate(); err != nil {
		return err
	}
	o.apply(t)
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Offer) SetActive(active bool) {
	if o.active == active {
		return
	}
	o.active = active
	o.updatedAt = time.Now().UTC()
}

// CheckRedeemable validates status, window and usage in that order.
func (o *Offer) CheckRedeemable(now time.Time) error {
	if !o.active {
		return ErrOfferInactive
	}
	if now.Before(o.validFrom) {
		return ErrOfferNotStarted
	}
	if now.After(o.validUntil) {
		return ErrOfferExpired
	}
	if o.maxUsage != nil && o.currentUsage >= *o.maxUsage {
		return ErrUsageExhausted
	}
	return nil
}

// AppliesTo reports whether the offer's scope matches a cart line. A bundle line has no
// content type, so a content-type-scoped offer never matches it.
func (o *Offer) AppliesTo(subjectID string, contentTypeID string, isBundle bool) bool {
	if o.subjectID != nil && *o.subjectID != subjectID {
		return false
	}
	if o.contentTypeID != nil {
		if isBundle || *o.contentTypeID != contentTypeID {
			return false
		}
	}
	return true
}
