package mappers

import (
	"deskbot/internal/domain/user"
	"deskbot/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	NoteToModel(n *user.Note) *models.NoteModel
	NoteToDomain(model *models.NoteModel) (*user.Note, error)
	RatingToModel(r *user.Rating) *models.RatingModel
	RatingToDomain(model *models.RatingModel) (*user.Rating, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID(),
		Username:       u.Username(),
		FirstName:      u.FirstName(),
		LastName:       u.LastName(),
		IsBanned:       u.IsBanned(),
		Language:       u.Language(),
		UrgentToday:    u.UrgentToday(),
		LastUrgentDate: u.LastUrgentDate(),
		RegisteredAt:   u.RegisteredAt().UnixMilli(),
		UpdatedAt:      u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.FirstName,
		model.LastName,
		model.IsBanned,
		model.Language,
		model.UrgentToday,
		model.LastUrgentDate,
		millisToTime(model.RegisteredAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) NoteToModel(n *user.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		AdminID:   n.AdminID(),
		Text:      n.Text(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) NoteToDomain(model *models.NoteModel) (*user.Note, error) {
	return user.ReconstructNote(
		model.ID,
		model.UserID,
		model.AdminID,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}

func (m *UserMapperImpl) RatingToModel(r *user.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:        r.ID(),
		UserID:    r.UserID(),
		AdminID:   r.AdminID(),
		Score:     r.Score(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) RatingToDomain(model *models.RatingModel) (*user.Rating, error) {
	return user.ReconstructRating(
		model.ID,
		model.UserID,
		model.AdminID,
		model.Score,
		model.Comment,
		millisToTime(model.CreatedAt),
	)
}
