package mappers

import (
	"deskbot/internal/domain/faq"
	"deskbot/internal/infrastructure/persistence/models"
)

type FAQMapper interface {
	ToModel(e *faq.Entry) *models.FAQEntryModel
	ToDomain(model *models.FAQEntryModel) (*faq.Entry, error)
}

type FAQMapperImpl struct{}

func NewFAQMapper() FAQMapper {
	return &FAQMapperImpl{}
}

func (m *FAQMapperImpl) ToModel(e *faq.Entry) *models.FAQEntryModel {
	return &models.FAQEntryModel{
		ID:        e.ID(),
		Question:  e.Question(),
		Answer:    e.Answer(),
		TopicID:   e.TopicID(),
		Keywords:  e.Keywords(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *FAQMapperImpl) ToDomain(model *models.FAQEntryModel) (*faq.Entry, error) {
	return faq.ReconstructEntry(
		model.ID,
		model.Question,
		model.Answer,
		model.TopicID,
		model.Keywords,
		millisToTime(model.CreatedAt),
	)
}
