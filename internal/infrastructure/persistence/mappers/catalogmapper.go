package mappers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
)

// CatalogMapper handles mapping between catalog domain objects and database models
type CatalogMapper struct{}

// NewCatalogMapper creates a new CatalogMapper
func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

// SubjectToDomain converts a subject model to the domain entity
func (m *CatalogMapper) SubjectToDomain(model *models.SubjectModel) (*catalog.Subject, error) {
	if model == nil {
		return nil, fmt.Errorf("subject model cannot be nil")
	}
	return catalog.ReconstructSubject(
		model.ID,
		model.Title,
		model.Slug,
		model.Description,
		model.BundlePrice,
		model.IsBundleEnabled,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// SubjectToModel converts a subject entity to the database model
func (m *CatalogMapper) SubjectToModel(subject *catalog.Subject) (*models.SubjectModel, error) {
	if subject == nil {
		return nil, fmt.Errorf("subject cannot be nil")
	}
	price, ok := subject.BundlePrice()
	return &models.SubjectModel{
		ID:              subject.ID(),
		Title:           subject.Title(),
		Slug:            subject.Slug(),
		Description:     subject.Description(),
		BundlePrice:     decimal.NullDecimal{Decimal: price, Valid: ok},
		IsBundleEnabled: subject.BundleEnabled(),
		IsActive:        subject.IsActive(),
		CreatedAt:       subject.CreatedAt(),
		UpdatedAt:       subject.UpdatedAt(),
	}, nil
}

// SubjectsToDomain converts a list of subject models
func (m *CatalogMapper) SubjectsToDomain(modelList []*models.SubjectModel) ([]*catalog.Subject, error) {
	subjects := make([]*catalog.Subject, 0, len(modelList))
	for _, model := range modelList {
		subject, err := m.SubjectToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert subject %s: %w", model.ID, err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

func (m *CatalogMapper) ContentTypeToDomain(model *models.ContentTypeModel) *catalog.ContentType {
	return catalog.ReconstructContentType(model.ID, model.Name, model.Slug, model.IsActive, model.SortOrder, model.CreatedAt)
}

func (m *CatalogMapper) ContentTypeToModel(ct *catalog.ContentType) *models.ContentTypeModel {
	return &models.ContentTypeModel{
		ID:        ct.ID(),
		Name:      ct.Name(),
		Slug:      ct.Slug(),
		IsActive:  ct.IsActive(),
		SortOrder: ct.SortOrder(),
		CreatedAt: ct.CreatedAt(),
	}
}

func (m *CatalogMapper) ContentToDomain(model *models.SubjectContentModel) *catalog.SubjectContent {
	return catalog.ReconstructSubjectContent(model.ID, model.SubjectID, model.ContentTypeID, model.Title,
		model.ResourceURL, model.IsActive, model.SortOrder, model.CreatedAt)
}

func (m *CatalogMapper) ContentToModel(c *catalog.SubjectContent) *models.SubjectContentModel {
	return &models.SubjectContentModel{
		ID:            c.ID(),
		SubjectID:     c.SubjectID(),
		ContentTypeID: c.ContentTypeID(),
		Title:         c.Title(),
		ResourceURL:   c.ResourceURL(),
		IsActive:      c.IsActive(),
		SortOrder:     c.SortOrder(),
		CreatedAt:     c.CreatedAt(),
	}
}

func (m *CatalogMapper) PricingToDomain(model *models.SubjectContentTypePricingModel) *catalog.ContentTypePricing {
	return catalog.ReconstructContentTypePricing(model.ID, model.SubjectID, model.ContentTypeID, model.Price, model.UpdatedAt)
}

func (m *CatalogMapper) PricingToModel(p *catalog.ContentTypePricing) *models.SubjectContentTypePricingModel {
	return &models.SubjectContentTypePricingModel{
		ID:            p.ID(),
		SubjectID:     p.SubjectID(),
		ContentTypeID: p.ContentTypeID(),
		Price:         p.Price(),
		UpdatedAt:     p.UpdatedAt(),
	}
}
