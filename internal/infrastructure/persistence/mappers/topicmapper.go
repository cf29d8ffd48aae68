package mappers

import (
	"deskbot/internal/domain/topic"
	"deskbot/internal/infrastructure/persistence/models"
)

type TopicMapper interface {
	ToModel(t *topic.Topic) *models.TopicModel
	ToDomain(model *models.TopicModel) (*topic.Topic, error)
}

type TopicMapperImpl struct{}

func NewTopicMapper() TopicMapper {
	return &TopicMapperImpl{}
}

func (m *TopicMapperImpl) ToModel(t *topic.Topic) *models.TopicModel {
	return &models.TopicModel{
		ID:            t.ID(),
		Name:          t.Name(),
		Description:   t.Description(),
		IsQuickAction: t.IsQuickAction(),
		IsUrgent:      t.IsUrgent(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
	}
}

func (m *TopicMapperImpl) ToDomain(model *models.TopicModel) (*topic.Topic, error) {
	return topic.ReconstructTopic(
		model.ID,
		model.Name,
		model.Description,
		model.IsQuickAction,
		model.IsUrgent,
		millisToTime(model.CreatedAt),
	)
}
