package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/domain/cart"
)

type CartItemDTO struct {
	ID              string    `json:"id"`
	SubjectID       string    `json:"subject_id"`
	SubjectTitle    string    `json:"subject_title"`
	SubjectSlug     string    `json:"subject_slug"`
	IsBundle        bool      `json:"is_bundle"`
	ContentTypeID   *string   `json:"content_type_id,omitempty"`
	ContentTypeName string    `json:"content_type_name,omitempty"`
	Price           string    `json:"price"`
	AddedAt         time.Time `json:"added_at"`
}

type CartDTO struct {
	Items     []*CartItemDTO `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  string         `json:"subtotal"`
	Currency  string         `json:"currency"`
}

// ItemLabels carries the display names resolved from the catalog for one cart item.
type ItemLabels struct {
	SubjectTitle    string
	SubjectSlug     string
	ContentTypeName string
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ToCartItemDTO(item *cart.Item, labels ItemLabels) *CartItemDTO {
	if item == nil {
		return nil
	}

	out := &CartItemDTO{
		ID:           item.ID(),
		SubjectID:    item.SubjectID(),
		SubjectTitle: labels.SubjectTitle,
		SubjectSlug:  labels.SubjectSlug,
		IsBundle:     item.IsBundle(),
		Price:        FormatMoney(item.Price()),
		AddedAt:      item.CreatedAt(),
	}
	if ctID, ok := item.ContentTypeID(); ok {
		out.ContentTypeID = &ctID
		out.ContentTypeName = labels.ContentTypeName
	}
	return out
}

// ToCartDTO builds the cart view. labels is keyed by cart item ID; missing entries leave names empty.
func ToCartDTO(items []*cart.Item, labels map[string]ItemLabels, currency string) *CartDTO {
	dtos := make([]*CartItemDTO, 0, len(items))
	for _, it := range items {
		dtos = append(dtos, ToCartItemDTO(it, labels[it.ID()]))
	}
	return &CartDTO{
		Items:     dtos,
		ItemCount: len(items),
		Subtotal:  FormatMoney(cart.Subtotal(items)),
		Currency:  currency,
	}
}
