package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/ticket"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

// TicketView aggregates everything the detail screens need: the ticket,
// replies oldest first, attachments, notes about the owner, and status
// history newest first.
type TicketView struct {
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
	Replies         []ReplyView
	Attachments     []AttachmentView
	OwnerNotes      []NoteView
	History         []HistoryView
}

type ReplyView struct {
	ReplyID   uint
	AuthorID  int64
	Text      string
	CreatedAt time.Time
}

type AttachmentView struct {
	AttachmentID uint
	FileID       string
	Kind         string
}

type NoteView struct {
	NoteID    uint
	AdminID   int64
	Text      string
	CreatedAt time.Time
}

type HistoryView struct {
	Status    string
	AdminID   *int64
	CreatedAt time.Time
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	replyRepo      ticket.ReplyRepository
	attachmentRepo ticket.AttachmentRepository
	historyRepo    ticket.StatusHistoryRepository
	noteRepo       user.NoteRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	attachmentRepo ticket.AttachmentRepository,
	historyRepo ticket.StatusHistoryRepository,
	noteRepo user.NoteRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		replyRepo:      replyRepo,
		attachmentRepo: attachmentRepo,
		historyRepo:    historyRepo,
		noteRepo:       noteRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketView, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	replies, err := uc.replyRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	history, err := uc.historyRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	notes, err := uc.noteRepo.GetByUserID(ctx, t.UserID())
	if err != nil {
		return nil, err
	}

	view := &TicketView{
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
	}

	for _, r := range replies {
		view.Replies = append(view.Replies, ReplyView{
			ReplyID:   r.ID(),
			AuthorID:  r.AuthorID(),
			Text:      r.Text(),
			CreatedAt: r.CreatedAt(),
		})
	}
	for _, a := range attachments {
		view.Attachments = append(view.Attachments, AttachmentView{
			AttachmentID: a.ID(),
			FileID:       a.FileID(),
			Kind:         a.Kind().String(),
		})
	}
	for _, n := range notes {
		view.OwnerNotes = append(view.OwnerNotes, NoteView{
			NoteID:    n.ID(),
			AdminID:   n.AdminID(),
			Text:      n.Text(),
			CreatedAt: n.CreatedAt(),
		})
	}
	for _, h := range history {
		view.History = append(view.History, HistoryView{
			Status:    h.Status().String(),
			AdminID:   h.AdminID(),
			CreatedAt: h.CreatedAt(),
		})
	}

	return view, nil
}
