package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
)

type SubjectDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	BundlePrice   *string   `json:"bundle_price,omitempty"`
	BundleEnabled bool      `json:"bundle_enabled"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ContentTypeDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

type SubjectContentDTO struct {
	ID            string `json:"id"`
	ContentTypeID string `json:"content_type_id"`
	Title         string `json:"title"`
	SortOrder     int    `json:"sort_order"`
}

type ContentTypePriceDTO struct {
	ContentTypeID   string `json:"content_type_id"`
	ContentTypeName string `json:"content_type_name"`
	Price           string `json:"price"`
}

// BundleSummaryDTO compares the bundle against buying every available content type separately.
type BundleSummaryDTO struct {
	Price           string   `json:"price"`
	IndividualTotal string   `json:"individual_total"`
	Savings         string   `json:"savings"`
	ContentTypeIDs  []string `json:"content_type_ids"`
}

type SubjectDetailDTO struct {
	SubjectDTO
	DescriptionHTML string                 `json:"description_html"`
	Contents        []*SubjectContentDTO   `json:"contents"`
	Pricing         []*ContentTypePriceDTO `json:"pricing"`
	Bundle          *BundleSummaryDTO      `json:"bundle,omitempty"`
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ToSubjectDTO(s *catalog.Subject) *SubjectDTO {
	if s == nil {
		return nil
	}
	out := &SubjectDTO{
		ID:            s.ID(),
		Title:         s.Title(),
		Slug:          s.Slug(),
		BundleEnabled: s.BundleEnabled(),
		IsActive:      s.IsActive(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
	if price, ok := s.BundlePrice(); ok {
		p := formatMoney(price)
		out.BundlePrice = &p
	}
	return out
}

func ToSubjectDTOList(subjects []*catalog.Subject) []*SubjectDTO {
	out := make([]*SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, ToSubjectDTO(s))
	}
	return out
}

func ToContentTypeDTO(c *catalog.ContentType) *ContentTypeDTO {
	if c == nil {
		return nil
	}
	return &ContentTypeDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Slug:      c.Slug(),
		IsActive:  c.IsActive(),
		SortOrder: c.SortOrder(),
	}
}

func ToContentTypeDTOList(types []*catalog.ContentType) []*ContentTypeDTO {
	out := make([]*ContentTypeDTO, 0, len(types))
	for _, c := range types {
		out = append(out, ToContentTypeDTO(c))
	}
	return out
}

func ToSubjectContentDTO(c *catalog.SubjectContent) *SubjectContentDTO {
	if c == nil {
		return nil
	}
	return &SubjectContentDTO{
		ID:            c.ID(),
		ContentTypeID: c.ContentTypeID(),
		Title:         c.Title(),
		SortOrder:     c.SortOrder(),
	}
}

// ToContentTypePriceDTO formats a price row; name comes from the content type lookup.
func ToContentTypePriceDTO(p *catalog.ContentTypePricing, name string) *ContentTypePriceDTO {
	return &ContentTypePriceDTO{
		ContentTypeID:   p.ContentTypeID(),
		ContentTypeName: name,
		Price:           formatMoney(p.Price()),
	}
}

func NewBundleSummaryDTO(price, individualTotal decimal.Decimal, contentTypeIDs []string) *BundleSummaryDTO {
	savings := individualTotal.Sub(price)
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	return &BundleSummaryDTO{
		Price:           formatMoney(price),
		IndividualTotal: formatMoney(individualTotal),
		Savings:         formatMoney(savings),
		ContentTypeIDs:  contentTypeIDs,
	}
}
