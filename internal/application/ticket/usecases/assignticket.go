package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/ticket"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID uint
	AdminID  int64
}

type AssignTicketResult struct {
	TicketID        uint
	AssignedAdminID int64
}

// AssignTicketUseCase sets the assignee. The assignee must be a current
// admin; assignment has no status side effect.
type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	adminRepo  admin.AdminRepository
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	adminRepo admin.AdminRepository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		adminRepo:  adminRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "admin_id", cmd.AdminID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AdminID == 0 {
		return nil, errors.NewValidationError("admin ID is required")
	}

	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.AdminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewValidationError("assignee is not an admin")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.AssignTo(cmd.AdminID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return &AssignTicketResult{
		TicketID:        t.ID(),
		AssignedAdminID: cmd.AdminID,
	}, nil
}
