package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type CreateTopicCommand struct {
	AdminID     int64
	Name        string
	Description string
	QuickAction bool
	Urgent      bool
}

type CreateTopicResult struct {
	TopicID     uint
	Name        string
	QuickAction bool
	Urgent      bool
}

// CreateTopicUseCase adds a topic to the compose menu. Topic names are
// unique, and an urgent topic must also be a quick action so its
// tickets skip straight to the message prompt.
type CreateTopicUseCase struct {
	topicRepo topic.TopicRepository
	adminRepo admin.AdminRepository
	logger    logger.Interface
}

func NewCreateTopicUseCase(
	topicRepo topic.TopicRepository,
	adminRepo admin.AdminRepository,
	logger logger.Interface,
) *CreateTopicUseCase {
	return &CreateTopicUseCase{
		topicRepo: topicRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *CreateTopicUseCase) Execute(ctx context.Context, cmd CreateTopicCommand) (*CreateTopicResult, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.AdminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewForbiddenError("only admins can create topics")
	}

	existing, err := uc.topicRepo.GetByName(ctx, cmd.Name)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("topic name already exists")
	}

	tp, err := topic.NewTopic(cmd.Name, cmd.Description, cmd.QuickAction, cmd.Urgent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.topicRepo.Save(ctx, tp); err != nil {
		uc.logger.Errorw("failed to save topic", "error", err, "name", cmd.Name)
		return nil, err
	}

	uc.logger.Infow("topic created",
		"topic_id", tp.ID(), "name", tp.Name(), "quick_action", tp.IsQuickAction(), "urgent", tp.IsUrgent())
	return &CreateTopicResult{
		TopicID:     tp.ID(),
		Name:        tp.Name(),
		QuickAction: tp.IsQuickAction(),
		Urgent:      tp.IsUrgent(),
	}, nil
}
