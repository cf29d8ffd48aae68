package usecases

import (
	"context"

	"deskbot/internal/domain/ticket"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type AddRatingCommand struct {
	UserID   int64
	TicketID uint
	Score    int
	Comment  string
}

type AddRatingResult struct {
	RatingID uint
	AdminID  int64
}

// AddRatingUseCase records the owner's score for the handling of a
// ticket. The rated admin is the assignee when one exists, otherwise
// the author of the most recent reply.
type AddRatingUseCase struct {
	ratingRepo user.RatingRepository
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	logger     logger.Interface
}

func NewAddRatingUseCase(
	ratingRepo user.RatingRepository,
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	logger logger.Interface,
) *AddRatingUseCase {
	return &AddRatingUseCase{
		ratingRepo: ratingRepo,
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		logger:     logger,
	}
}

func (uc *AddRatingUseCase) Execute(ctx context.Context, cmd AddRatingCommand) (*AddRatingResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("only the ticket owner can rate it")
	}

	adminID, err := uc.resolveAdmin(ctx, t)
	if err != nil {
		return nil, err
	}

	rating, err := user.NewRating(cmd.UserID, adminID, cmd.Score, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ratingRepo.Save(ctx, rating); err != nil {
		uc.logger.Errorw("failed to save rating", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("rating recorded",
		"rating_id", rating.ID(), "ticket_id", cmd.TicketID, "admin_id", adminID, "score", cmd.Score)
	return &AddRatingResult{RatingID: rating.ID(), AdminID: adminID}, nil
}

func (uc *AddRatingUseCase) resolveAdmin(ctx context.Context, t *ticket.Ticket) (int64, error) {
	if id := t.AssignedAdminID(); id != nil {
		return *id, nil
	}

	replies, err := uc.replyRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return 0, err
	}
	// The owner's own dialog continuations share the thread, so walk
	// back to the newest reply written by someone else.
	for i := len(replies) - 1; i >= 0; i-- {
		if replies[i].AuthorID() != t.UserID() {
			return replies[i].AuthorID(), nil
		}
	}
	return 0, errors.NewConflictError("ticket has no admin activity to rate")
}
