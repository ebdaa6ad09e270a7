package dto

import (
	"time"

	"github.com/lumen-edu/lumen/internal/domain/purchase"
)

type PurchaseLineDTO struct {
	SubjectID       string   `json:"subject_id"`
	SubjectTitle    string   `json:"subject_title"`
	IsBundle        bool     `json:"is_bundle"`
	ContentTypeID   string   `json:"content_type_id,omitempty"`
	ContentTypeName string   `json:"content_type_name,omitempty"`
	Price           string   `json:"price"`
	GrantedTypeIDs  []string `json:"granted_content_type_ids"`
}

type PurchaseDTO struct {
	ID               string             `json:"id"`
	OfferCode        *string            `json:"offer_code,omitempty"`
	Subtotal         string             `json:"subtotal"`
	Discount         string             `json:"discount"`
	Total            string             `json:"total"`
	Currency         string             `json:"currency"`
	PaymentReference string             `json:"payment_reference"`
	Lines            []*PurchaseLineDTO `json:"lines"`
	CreatedAt        time.Time          `json:"created_at"`
}

func ToPurchaseDTO(p *purchase.Purchase) *PurchaseDTO {
	if p == nil {
		return nil
	}
	lines := make([]*PurchaseLineDTO, 0, len(p.Lines()))
	for _, l := range p.Lines() {
		lines = append(lines, &PurchaseLineDTO{
			SubjectID:       l.SubjectID,
			SubjectTitle:    l.SubjectTitle,
			IsBundle:        l.IsBundle,
			ContentTypeID:   l.ContentTypeID,
			ContentTypeName: l.ContentTypeName,
			Price:           FormatMoney(l.Price),
			GrantedTypeIDs:  l.GrantedTypeIDs,
		})
	}
	return &PurchaseDTO{
		ID:               p.ID(),
		OfferCode:        p.OfferCode(),
		Subtotal:         FormatMoney(p.Subtotal()),
		Discount:         FormatMoney(p.Discount()),
		Total:            FormatMoney(p.Total()),
		Currency:         p.Currency(),
		PaymentReference: p.PaymentReference(),
		Lines:            lines,
		CreatedAt:        p.CreatedAt(),
	}
}

func ToPurchaseDTOList(ps []*purchase.Purchase) []*PurchaseDTO {
	out := make([]*PurchaseDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPurchaseDTO(p))
	}
	return out
}
