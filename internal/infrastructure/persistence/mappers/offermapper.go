package mappers

import (
	"fmt"

	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
)

// OfferMapper handles mapping between Offer domain entity and database model
type OfferMapper struct{}

// NewOfferMapper creates a new OfferMapper
func NewOfferMapper() *OfferMapper {
	return &OfferMapper{}
}

// ToDomain converts database model to domain entity
func (m *OfferMapper) ToDomain(model *models.OfferModel) (*offer.Offer, error) {
	if model == nil {
		return nil, fmt.Errorf("offer model cannot be nil")
	}

	discountType := offer.DiscountType(model.DiscountType)
	if !discountType.IsValid() {
		return nil, fmt.Errorf("offer %s has unknown discount type %q", model.Code, model.DiscountType)
	}

	terms := offer.Terms{
		Description:   model.Description,
		DiscountType:  discountType,
		Value:         model.DiscountValue,
		SubjectID:     model.SubjectID,
		ContentTypeID: model.ContentTypeID,
		ValidFrom:     model.ValidFrom.UTC(),
		ValidUntil:    model.ValidUntil.UTC(),
		MaxUsage:      model.MaxUsage,
	}

	return offer.ReconstructOffer(model.ID, model.Code, terms, model.CurrentUsage, model.IsActive,
		model.CreatedAt, model.UpdatedAt), nil
}

// ToModel converts domain entity to database model
func (m *OfferMapper) ToModel(o *offer.Offer) (*models.OfferModel, error) {
	if o == nil {
		return nil, fmt.Errorf("offer cannot be nil")
	}

	return &models.OfferModel{
		ID:            o.ID(),
		Code:          o.Code(),
		Description:   o.Description(),
		DiscountType:  o.DiscountType().String(),
		DiscountValue: o.Value(),
		SubjectID:     o.SubjectID(),
		ContentTypeID: o.ContentTypeID(),
		ValidFrom:     o.ValidFrom(),
		ValidUntil:    o.ValidUntil(),
		MaxUsage:      o.MaxUsage(),
		CurrentUsage:  o.CurrentUsage(),
		IsActive:      o.IsActive(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}, nil
}

// ToDomainList converts a list of database models to domain entities
func (m *OfferMapper) ToDomainList(modelList []*models.OfferModel) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(modelList))
	for _, model := range modelList {
		o, err := m.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert offer: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, nil
}
