package ticket

import (
	"fmt"
	"time"

	vo "deskbot/internal/domain/ticket/valueobjects"
)

const maxBodyLength = 4000

type Ticket struct {
	id              uint
	userID          int64
	topicID         uint
	body            string
	isRead          bool
	status          vo.TicketStatus
	priority        vo.Priority
	isAnonymous     bool
	assignedAdminID *int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTicket(
	userID int64,
	topicID uint,
	body string,
	anonymous bool,
	priority vo.Priority,
) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if topicID == 0 {
		return nil, fmt.Errorf("topic ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len([]rune(body)) > maxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Ticket{
		userID:      userID,
		topicID:     topicID,
		body:        body,
		status:      vo.StatusNew,
		priority:    priority,
		isAnonymous: anonymous,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	userID int64,
	topicID uint,
	body string,
	isRead bool,
	status vo.TicketStatus,
	priority vo.Priority,
	isAnonymous bool,
	assignedAdminID *int64,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:              id,
		userID:          userID,
		topicID:         topicID,
		body:            body,
		isRead:          isRead,
		status:          status,
		priority:        priority,
		isAnonymous:     isAnonymous,
		assignedAdminID: assignedAdminID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() int64 {
	return t.userID
}

func (t *Ticket) TopicID() uint {
	return t.topicID
}

func (t *Ticket) Body() string {
	return t.body
}

func (t *Ticket) IsRead() bool {
	return t.isRead
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) IsAnonymous() bool {
	return t.isAnonymous
}

func (t *Ticket) AssignedAdminID() *int64 {
	return t.assignedAdminID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) MarkRead() {
	if t.isRead {
		return
	}
	t.isRead = true
	t.updatedAt = time.Now()
}

// ChangeStatus applies an explicit status change. A repeated non-terminal
// status is a no-op; any change on a closed ticket is rejected.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed, cannot transition to %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// RegisterReply records the status side effects of an admin reply: the ticket
// is marked read and a new ticket moves to in_progress. Replies to closed
// tickets are rejected.
func (t *Ticket) RegisterReply() error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed, cannot append reply")
	}

	t.isRead = true
	if t.status.IsNew() {
		t.status = vo.StatusInProgress
	}
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) AssignTo(adminID int64) error {
	if adminID == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}

	t.assignedAdminID = &adminID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assignedAdminID = nil
	t.updatedAt = time.Now()
}
