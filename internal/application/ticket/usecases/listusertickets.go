package usecases

import (
	"context"

	"deskbot/internal/domain/ticket"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type ListUserTicketsQuery struct {
	UserID   int64
	Status   string
	Page     int
	PageSize int
}

type ListUserTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListUserTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListUserTicketsUseCase {
	return &ListUserTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListUserTicketsUseCase) Execute(ctx context.Context, query ListUserTicketsQuery) (*ListTicketsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	filter, err := buildFilter(query.Status, nil, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.GetUserTickets(ctx, query.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list user tickets", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return buildListResult(tickets, total, filter), nil
}
