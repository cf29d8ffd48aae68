package ticket

import (
	"fmt"
	"time"
)

const maxReplyLength = 4000

// Reply is one message inside a ticket dialog. The author is an admin
// answering, or the ticket owner continuing the dialog; both land in
// the same thread.
type Reply struct {
	id        uint
	ticketID  uint
	authorID  int64
	text      string
	createdAt time.Time
}

func NewReply(ticketID uint, authorID int64, text string) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text is required")
	}
	if len([]rune(text)) > maxReplyLength {
		return nil, fmt.Errorf("text exceeds maximum length of %d characters", maxReplyLength)
	}

	return &Reply{
		ticketID:  ticketID,
		authorID:  authorID,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func ReconstructReply(id, ticketID uint, authorID int64, text string, createdAt time.Time) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Reply{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (r *Reply) ID() uint {
	return r.id
}

func (r *Reply) TicketID() uint {
	return r.ticketID
}

func (r *Reply) AuthorID() int64 {
	return r.authorID
}

func (r *Reply) Text() string {
	return r.text
}

func (r *Reply) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}
