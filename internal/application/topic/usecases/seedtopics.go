package usecases

import (
	"context"

	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/logger"
)

type seedTopic struct {
	name        string
	description string
	quickAction bool
	urgent      bool
}

var defaultTopics = []seedTopic{
	{"Общие вопросы", "Вопросы общего характера", false, false},
	{"Техническая помощь", "Проблемы с использованием сервиса", false, false},
	{"Предложения", "Предложения по улучшению", false, false},
	{"Жалобы", "Жалобы на работу сервиса или сотрудников", false, false},
	{"Сообщить об ошибке", "Критическая ошибка в работе сервиса", true, false},
	{"Вопрос по оплате", "Проблемы с платежами или возвратами", true, false},
	{"Срочный запрос", "Требуется немедленное внимание", true, true},
}

// SeedTopicsUseCase runs at startup and populates the compose menu the
// first time the bot comes up against an empty database. A non-empty
// topics table is left untouched.
type SeedTopicsUseCase struct {
	topicRepo topic.TopicRepository
	logger    logger.Interface
}

func NewSeedTopicsUseCase(topicRepo topic.TopicRepository, logger logger.Interface) *SeedTopicsUseCase {
	return &SeedTopicsUseCase{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (uc *SeedTopicsUseCase) Execute(ctx context.Context) error {
	count, err := uc.topicRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range defaultTopics {
		tp, err := topic.NewTopic(seed.name, seed.description, seed.quickAction, seed.urgent)
		if err != nil {
			return err
		}
		if err := uc.topicRepo.Save(ctx, tp); err != nil {
			return err
		}
	}

	uc.logger.Infow("seeded default topics", "count", len(defaultTopics))
	return nil
}
