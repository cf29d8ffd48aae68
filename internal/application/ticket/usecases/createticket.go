package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID    int64
	TopicID   uint
	Body      string
	Anonymous bool
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

// CreateTicketUseCase inserts a new ticket together with its single "new"
// history row in one transaction. Priority is derived from the topic, never
// user-chosen.
type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	topicRepo   topic.TopicRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	topicRepo topic.TopicRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		topicRepo:   topicRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.UserID, "topic_id", cmd.TopicID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	tp, err := uc.topicRepo.GetByID(ctx, cmd.TopicID)
	if err != nil {
		uc.logger.Errorw("failed to load topic", "error", err, "topic_id", cmd.TopicID)
		return nil, err
	}

	priority := vo.DerivePriority(tp.IsUrgent(), tp.IsQuickAction())

	newTicket, err := ticket.NewTicket(cmd.UserID, cmd.TopicID, cmd.Body, cmd.Anonymous, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		entry, err := ticket.NewStatusHistoryEntry(newTicket.ID(), vo.StatusNew, nil)
		if err != nil {
			return err
		}
		return uc.historyRepo.Save(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"priority", newTicket.Priority().String(),
	)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.TopicID == 0 {
		return errors.NewValidationError("topic ID is required")
	}
	if len(cmd.Body) == 0 {
		return errors.NewValidationError("body is required")
	}
	return nil
}
