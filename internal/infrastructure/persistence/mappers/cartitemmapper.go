package mappers

import (
	"fmt"

	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
)

// CartItemMapper handles mapping between cart items and cart_items rows
type CartItemMapper struct{}

// NewCartItemMapper creates a new CartItemMapper
func NewCartItemMapper() *CartItemMapper {
	return &CartItemMapper{}
}

// LineKey returns the value stored in line_key for a line.
func LineKey(line cart.Line) string {
	if ct, ok := cart.ContentTypeOf(line); ok {
		return ct
	}
	return models.BundleLineKey
}

// ToDomain converts a cart_items row to a domain item
func (m *CartItemMapper) ToDomain(model *models.CartItemModel) (*cart.Item, error) {
	if model == nil {
		return nil, fmt.Errorf("cart item model cannot be nil")
	}

	contentTypeID := ""
	if model.ContentTypeID != nil {
		contentTypeID = *model.ContentTypeID
	}
	line, err := cart.NewLine(model.IsBundle, contentTypeID)
	if err != nil {
		return nil, fmt.Errorf("cart item %s: %w", model.ID, err)
	}

	return cart.ReconstructItem(model.ID, model.UserID, model.SubjectID, line, model.Price, model.CreatedAt), nil
}

// ToModel converts a domain item to a cart_items row
func (m *CartItemMapper) ToModel(item *cart.Item) (*models.CartItemModel, error) {
	if item == nil {
		return nil, fmt.Errorf("cart item cannot be nil")
	}

	model := &models.CartItemModel{
		ID:        item.ID(),
		UserID:    item.UserID(),
		SubjectID: item.SubjectID(),
		LineKey:   LineKey(item.Line()),
		IsBundle:  item.IsBundle(),
		Price:     item.Price(),
		CreatedAt: item.CreatedAt(),
	}
	if ct, ok := item.ContentTypeID(); ok {
		model.ContentTypeID = &ct
	}

	return model, nil
}

// ToDomainList converts a list of rows
func (m *CartItemMapper) ToDomainList(modelList []*models.CartItemModel) ([]*cart.Item, error) {
	items := make([]*cart.Item, 0, len(modelList))
	for _, model := range modelList {
		item, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
