package usecases

import (
	"context"

	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/logger"
)

type TopicView struct {
	TopicID     uint
	Name        string
	Description string
	QuickAction bool
	Urgent      bool
}

type ListTopicsResult struct {
	Topics []TopicView
}

type ListTopicsUseCase struct {
	topicRepo topic.TopicRepository
	logger    logger.Interface
}

func NewListTopicsUseCase(topicRepo topic.TopicRepository, logger logger.Interface) *ListTopicsUseCase {
	return &ListTopicsUseCase{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (uc *ListTopicsUseCase) Execute(ctx context.Context) (*ListTopicsResult, error) {
	topics, err := uc.topicRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TopicView, 0, len(topics))
	for _, tp := range topics {
		views = append(views, TopicView{
			TopicID:     tp.ID(),
			Name:        tp.Name(),
			Description: tp.Description(),
			QuickAction: tp.IsQuickAction(),
			Urgent:      tp.IsUrgent(),
		})
	}

	return &ListTopicsResult{Topics: views}, nil
}
