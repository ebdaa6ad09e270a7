package dto

import (
	"github.com/lumen-edu/lumen/internal/domain/offer"
)

type OfferSummaryDTO struct {
	Code          string  `json:"code"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discount_type"`
	Value         string  `json:"value"`
	SubjectID     *string `json:"subject_id,omitempty"`
	ContentTypeID *string `json:"content_type_id,omitempty"`
}

// OfferApplicationDTO is the result of evaluating an offer code against the cart.
type OfferApplicationDTO struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	Offer           *OfferSummaryDTO `json:"offer"`
	Subtotal        string           `json:"subtotal"`
	Discount        string           `json:"discount"`
	Total           string           `json:"total"`
	ApplicableItems int              `json:"applicable_items"`
}

func ToOfferSummaryDTO(o *offer.Offer) *OfferSummaryDTO {
	if o == nil {
		return nil
	}
	return &OfferSummaryDTO{
		Code:          o.Code(),
		Description:   o.Description(),
		DiscountType:  o.DiscountType().String(),
		Value:         o.Value().String(),
		SubjectID:     o.SubjectID(),
		ContentTypeID: o.ContentTypeID(),
	}
}

func ToOfferApplicationDTO(o *offer.Offer, ev offer.Evaluation, message string) *OfferApplicationDTO {
	return &OfferApplicationDTO{
		Success:         true,
		Message:         message,
		Offer:           ToOfferSummaryDTO(o),
		Subtotal:        FormatMoney(ev.Subtotal),
		Discount:        FormatMoney(ev.Discount),
		Total:           FormatMoney(ev.Total),
		ApplicableItems: ev.ApplicableItems,
	}
}
