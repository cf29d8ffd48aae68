package usecases

import (
	"context"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
	// ActingAdminID is nil for system-initiated changes such as the owning
	// user ending their own dialog.
	ActingAdminID *int64
}

type ChangeStatusResult struct {
	TicketID     uint
	TicketUserID int64
	OldStatus    string
	NewStatus    string
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	// No write and no history row for a repeated status.
	if oldStatus == t.Status() {
		return &ChangeStatusResult{
			TicketID:     t.ID(),
			TicketUserID: t.UserID(),
			OldStatus:    oldStatus.String(),
			NewStatus:    t.Status().String(),
		}, nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		entry, err := ticket.NewStatusHistoryEntry(t.ID(), newStatus, cmd.ActingAdminID)
		if err != nil {
			return err
		}
		return uc.historyRepo.Save(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to change status", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", oldStatus.String(),
		"to", newStatus.String(),
	)

	return &ChangeStatusResult{
		TicketID:     t.ID(),
		TicketUserID: t.UserID(),
		OldStatus:    oldStatus.String(),
		NewStatus:    newStatus.String(),
	}, nil
}
