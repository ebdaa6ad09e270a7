package mappers

import (
	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
)

type UserAccessMapper struct{}

func NewUserAccessMapper() *UserAccessMapper {
	return &UserAccessMapper{}
}

func (m *UserAccessMapper) ToDomain(model *models.UserAccessModel) *access.UserAccess {
	return access.ReconstructUserAccess(model.ID, model.UserID, model.SubjectID, model.ContentTypeID,
		access.Source(model.Source), model.PurchaseID, model.GrantedAt)
}

func (m *UserAccessMapper) ToModel(a *access.UserAccess) *models.UserAccessModel {
	return &models.UserAccessModel{
		ID:            a.ID(),
		UserID:        a.UserID(),
		SubjectID:     a.SubjectID(),
		ContentTypeID: a.ContentTypeID(),
		Source:        string(a.Source()),
		PurchaseID:    a.PurchaseID(),
		GrantedAt:     a.GrantedAt(),
	}
}

func (m *UserAccessMapper) ToDomainList(modelList []*models.UserAccessModel) []*access.UserAccess {
	grants := make([]*access.UserAccess, 0, len(modelList))
	for _, model := range modelList {
		grants = append(grants, m.ToDomain(model))
	}
	return grants
}
