package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/ticket"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type AppendReplyCommand struct {
	TicketID uint
	AuthorID int64
	Text     string
}

type AppendReplyResult struct {
	ReplyID      uint
	TicketUserID int64
	TicketStatus string
	CreatedAt    time.Time
}

// AppendReplyUseCase appends a dialog message from either side. A reply is
// not a status event: it marks the ticket read and moves a new ticket to
// in_progress, but writes no history row.
type AppendReplyUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewAppendReplyUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AppendReplyUseCase {
	return &AppendReplyUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *AppendReplyUseCase) Execute(ctx context.Context, cmd AppendReplyCommand) (*AppendReplyResult, error) {
	uc.logger.Infow("executing append reply use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}
	if len(cmd.Text) == 0 {
		return nil, errors.NewValidationError("text is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.RegisterReply(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	reply, err := ticket.NewReply(cmd.TicketID, cmd.AuthorID, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.replyRepo.Save(txCtx, reply); err != nil {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to append reply", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return &AppendReplyResult{
		ReplyID:      reply.ID(),
		TicketUserID: t.UserID(),
		TicketStatus: t.Status().String(),
		CreatedAt:    reply.CreatedAt(),
	}, nil
}
