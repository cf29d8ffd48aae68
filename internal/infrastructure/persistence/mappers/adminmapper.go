package mappers

import (
	"deskbot/internal/domain/admin"
	"deskbot/internal/infrastructure/persistence/models"
)

type AdminMapper interface {
	ToModel(a *admin.Admin) *models.AdminModel
	ToDomain(model *models.AdminModel) (*admin.Admin, error)
}

type AdminMapperImpl struct{}

func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToModel(a *admin.Admin) *models.AdminModel {
	return &models.AdminModel{
		UserID:    a.UserID(),
		GrantedBy: a.GrantedBy(),
		GrantedAt: a.GrantedAt().UnixMilli(),
	}
}

func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) (*admin.Admin, error) {
	return admin.ReconstructAdmin(
		model.UserID,
		model.GrantedBy,
		millisToTime(model.GrantedAt),
	)
}
