package ticket

import (
	"context"

	vo "deskbot/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	GetUserTickets(ctx context.Context, userID int64, filter TicketFilter) ([]*Ticket, int64, error)
	CountByTopicID(ctx context.Context, topicID uint) (int64, error)
}

type TicketFilter struct {
	Status *vo.TicketStatus
	// Open selects tickets still awaiting work (new or in_progress) when
	// true, finished ones when false. Ignored when Status is set.
	Open            *bool
	Priority        *vo.Priority
	TopicID         *uint
	AssignedAdminID *int64
	Unread          *bool
	Page            int
	PageSize        int
}

type ReplyRepository interface {
	Save(ctx context.Context, reply *Reply) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Reply, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
}

type StatusHistoryRepository interface {
	Save(ctx context.Context, entry *StatusHistoryEntry) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*StatusHistoryEntry, error)
}
