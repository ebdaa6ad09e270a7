package dto

import (
	"time"

	"github.com/lumen-edu/lumen/internal/domain/offer"
)

type OfferDTO struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	DiscountType  string    `json:"discount_type"`
	Value         string    `json:"value"`
	SubjectID     *string   `json:"subject_id,omitempty"`
	ContentTypeID *string   `json:"content_type_id,omitempty"`
	ValidFrom     time.Time `json:"valid_from"`
	ValidUntil    time.Time `json:"valid_until"`
	MaxUsage      *int      `json:"max_usage,omitempty"`
	CurrentUsage  int       `json:"current_usage"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToOfferDTO(o *offer.Offer) *OfferDTO {
	if o == nil {
		return nil
	}
	return &OfferDTO{
		ID:            o.ID(),
		Code:          o.Code(),
		Description:   o.Description(),
		DiscountType:  o.DiscountType().String(),
		Value:         o.Value().String(),
		SubjectID:     o.SubjectID(),
		ContentTypeID: o.ContentTypeID(),
		ValidFrom:     o.ValidFrom(),
		ValidUntil:    o.ValidUntil(),
		MaxUsage:      o.MaxUsage(),
		CurrentUsage:  o.CurrentUsage(),
		IsActive:      o.IsActive(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func ToOfferDTOList(offers []*offer.Offer) []*OfferDTO {
	out := make([]*OfferDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, ToOfferDTO(o))
	}
	return out
}
