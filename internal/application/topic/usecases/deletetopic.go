package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/ticket"
	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type DeleteTopicCommand struct {
	AdminID int64
	TopicID uint
}

type DeleteTopicResult struct {
	TopicID uint
	Name    string
}

// DeleteTopicUseCase removes a topic. A topic referenced by any ticket
// is kept, since ticket rows carry the topic id and history views would
// otherwise dangle.
type DeleteTopicUseCase struct {
	topicRepo  topic.TopicRepository
	ticketRepo ticket.TicketRepository
	adminRepo  admin.AdminRepository
	logger     logger.Interface
}

func NewDeleteTopicUseCase(
	topicRepo topic.TopicRepository,
	ticketRepo ticket.TicketRepository,
	adminRepo admin.AdminRepository,
	logger logger.Interface,
) *DeleteTopicUseCase {
	return &DeleteTopicUseCase{
		topicRepo:  topicRepo,
		ticketRepo: ticketRepo,
		adminRepo:  adminRepo,
		logger:     logger,
	}
}

func (uc *DeleteTopicUseCase) Execute(ctx context.Context, cmd DeleteTopicCommand) (*DeleteTopicResult, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.AdminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewForbiddenError("only admins can delete topics")
	}

	tp, err := uc.topicRepo.GetByID(ctx, cmd.TopicID)
	if err != nil {
		return nil, err
	}

	inUse, err := uc.ticketRepo.CountByTopicID(ctx, cmd.TopicID)
	if err != nil {
		return nil, err
	}
	if inUse > 0 {
		return nil, errors.NewConflictError("topic is referenced by tickets")
	}

	if err := uc.topicRepo.Delete(ctx, cmd.TopicID); err != nil {
		uc.logger.Errorw("failed to delete topic", "error", err, "topic_id", cmd.TopicID)
		return nil, err
	}

	uc.logger.Infow("topic deleted", "topic_id", cmd.TopicID, "name", tp.Name())
	return &DeleteTopicResult{TopicID: cmd.TopicID, Name: tp.Name()}, nil
}
