package usecases

import (
	"context"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TicketID uint
	FileID   string
	Kind     string
}

type AddAttachmentResult struct {
	AttachmentID uint
}

// AddAttachmentUseCase stores a transport file handle against a ticket, up to
// the configured per-ticket cap.
type AddAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	maxPerTicket   int
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	maxPerTicket int,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		maxPerTicket:   maxPerTicket,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.FileID) == 0 {
		return nil, errors.NewValidationError("file ID is required")
	}

	kind, err := vo.NewMediaKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	count, err := uc.attachmentRepo.CountByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if count >= int64(uc.maxPerTicket) {
		return nil, errors.NewValidationError("attachment limit reached for this ticket")
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, cmd.FileID, kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return &AddAttachmentResult{AttachmentID: attachment.ID()}, nil
}
