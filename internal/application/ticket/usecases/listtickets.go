package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
	"deskbot/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status   string
	Open     *bool
	Unread   *bool
	Page     int
	PageSize int
}

type TicketSummary struct {
	TicketID        uint
	UserID          int64
	TopicID         uint
	Body            string
	IsRead          bool
	Status          string
	Priority        string
	IsAnonymous     bool
	AssignedAdminID *int64
	CreatedAt       time.Time
}

type ListTicketsResult struct {
	Items      []TicketSummary
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := buildFilter(query.Status, query.Unread, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	filter.Open = query.Open

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return buildListResult(tickets, total, filter), nil
}

func buildFilter(status string, unread *bool, page, pageSize int) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{Unread: unread}
	p := utils.ValidatePagination(page, pageSize, 10)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	if len(status) > 0 {
		st, err := vo.NewTicketStatus(status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &st
	}
	return filter, nil
}

func buildListResult(tickets []*ticket.Ticket, total int64, filter ticket.TicketFilter) *ListTicketsResult {
	result := &ListTicketsResult{
		Items:      make([]TicketSummary, 0, len(tickets)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: utils.TotalPages(total, filter.PageSize),
	}

	for _, t := range tickets {
		result.Items = append(result.Items, TicketSummary{
			TicketID:        t.ID(),
			UserID:          t.UserID(),
			TopicID:         t.TopicID(),
			Body:            t.Body(),
			IsRead:          t.IsRead(),
			Status:          t.Status().String(),
			Priority:        t.Priority().String(),
			IsAnonymous:     t.IsAnonymous(),
			AssignedAdminID: t.AssignedAdminID(),
			CreatedAt:       t.CreatedAt(),
		})
	}
	return result
}
