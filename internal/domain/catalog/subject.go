package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subject is a purchasable course. Its content is sold either per content type
// or, when bundling is enabled and priced, as one bundle.
type Subject struct {
	id            string
	title         string
	slug          string
	description   string
	bundlePrice   decimal.NullDecimal
	bundleEnabled bool
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSubject(title, slug, description string) (*Subject, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(strings.ToLower(slug))

	if title == "" {
		return nil, fmt.Errorf("subject title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("subject title too long (max 200 characters)")
	}
	if slug == "" {
		return nil, fmt.Errorf("subject slug is required")
	}
	if len(slug) > 100 {
		return nil, fmt.Errorf("subject slug too long (max 100 characters)")
	}

	now := time.Now().UTC()
	return &Subject{
		id:          uuid.NewString(),
		title:       title,
		slug:        slug,
		description: description,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSubject(id, title, slug, description string, bundlePrice decimal.NullDecimal,
	bundleEnabled, active bool, createdAt, updatedAt time.Time) *Subject {
	return &Subject{
		id:            id,
		title:         title,
		slug:          slug,
		description:   description,
		bundlePrice:   bundlePrice,
		bundleEnabled: bundleEnabled,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *Subject) ID() string {
	return s.id
}

func (s *Subject) Title() string {
	return s.title
}

func (s *Subject) Slug() string {
	return s.slug
}

func (s *Subject) Description() string {
	return s.description
}

// BundlePrice returns the bundle price and whether one is set.
func (s *Subject) BundlePrice() (decimal.Decimal, bool) {
	return s.bundlePrice.Decimal, s.bundlePrice.Valid
}

func (s *Subject) BundleEnabled() bool {
	return s.bundleEnabled
}

func (s *Subject) IsActive() bool {
	return s.active
}

func (s *Subject) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subject) UpdatedAt() time.Time {
	return s.updatedAt
}

// OffersBundle reports whether the subject can currently be bought as a bundle.
func (s *Subject) OffersBundle() bool {
	return s.bundleEnabled && s.bundlePrice.Valid && s.bundlePrice.Decimal.IsPositive()
}

func (s *Subject) UpdateDetails(title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("subject title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("subject title too long (max 200 characters)")
	}
	s.title = title
	s.description = description
	s.touch()
	return nil
}

// SetBundlePricing sets or clears the bundle price. Enabling the bundle requires a price.
func (s *Subject) SetBundlePricing(price *decimal.Decimal, enabled bool) error {
	if price != nil && !price.IsPositive() {
		return ErrInvalidPrice
	}
	if enabled && price == nil {
		return fmt.Errorf("a bundle price is required to enable the bundle")
	}

	if price == nil {
		s.bundlePrice = decimal.NullDecimal{}
	} else {
		s.bundlePrice = decimal.NewNullDecimal(price.Round(2))
	}
	s.bundleEnabled = enabled
	s.touch()
	return nil
}

func (s *Subject) Activate() {
	if s.active {
		return
	}
	s.active = true
	s.touch()
}

func (s *Subject) Deactivate() {
	if !s.active {
		return
	}
	s.active = false
	s.touch()
}

func (s *Subject) touch() {
	s.updatedAt = time.Now().UTC()
}
