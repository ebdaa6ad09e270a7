package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
)

// PurchaseMapper handles mapping between Purchase domain entity and database model.
// Lines are stored as a JSON snapshot in purchases.items.
type PurchaseMapper struct{}

// NewPurchaseMapper creates a new PurchaseMapper
func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

// ToDomain converts database model to domain entity
func (m *PurchaseMapper) ToDomain(model *models.PurchaseModel) (*purchase.Purchase, error) {
	if model == nil {
		return nil, fmt.Errorf("purchase model cannot be nil")
	}

	var lines []purchase.Line
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &lines); err != nil {
			return nil, fmt.Errorf("failed to decode items of purchase %s: %w", model.ID, err)
		}
	}

	totals := purchase.Totals{
		Subtotal: model.Subtotal,
		Discount: model.Discount,
		Total:    model.Total,
	}

	return purchase.ReconstructPurchase(model.ID, model.UserID, model.OfferCode, totals, model.Currency,
		model.PaymentReference, lines, model.CreatedAt), nil
}

// ToModel converts domain entity to database model
func (m *PurchaseMapper) ToModel(p *purchase.Purchase) (*models.PurchaseModel, error) {
	if p == nil {
		return nil, fmt.Errorf("purchase cannot be nil")
	}

	items, err := json.Marshal(p.Lines())
	if err != nil {
		return nil, fmt.Errorf("failed to encode purchase items: %w", err)
	}

	return &models.PurchaseModel{
		ID:               p.ID(),
		UserID:           p.UserID(),
		OfferCode:        p.OfferCode(),
		Subtotal:         p.Subtotal(),
		Discount:         p.Discount(),
		Total:            p.Total(),
		Currency:         p.Currency(),
		PaymentReference: p.PaymentReference(),
		Items:            datatypes.JSON(items),
		CreatedAt:        p.CreatedAt(),
	}, nil
}

// ToDomainList converts a list of database models to domain entities
func (m *PurchaseMapper) ToDomainList(modelList []*models.PurchaseModel) ([]*purchase.Purchase, error) {
	purchases := make([]*purchase.Purchase, 0, len(modelList))
	for _, model := range modelList {
		p, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}
