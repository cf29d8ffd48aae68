package ticket

import (
	"fmt"
	"time"

	vo "deskbot/internal/domain/ticket/valueobjects"
)

// StatusHistoryEntry is one row of the append-only status audit log. A nil
// admin ID marks a system-initiated change.
type StatusHistoryEntry struct {
	id        uint
	ticketID  uint
	status    vo.TicketStatus
	adminID   *int64
	createdAt time.Time
}

func NewStatusHistoryEntry(ticketID uint, status vo.TicketStatus, adminID *int64) (*StatusHistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &StatusHistoryEntry{
		ticketID:  ticketID,
		status:    status,
		adminID:   adminID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructStatusHistoryEntry(
	id, ticketID uint,
	status vo.TicketStatus,
	adminID *int64,
	createdAt time.Time,
) (*StatusHistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &StatusHistoryEntry{
		id:        id,
		ticketID:  ticketID,
		status:    status,
		adminID:   adminID,
		createdAt: createdAt,
	}, nil
}

func (h *StatusHistoryEntry) ID() uint {
	return h.id
}

func (h *StatusHistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *StatusHistoryEntry) Status() vo.TicketStatus {
	return h.status
}

func (h *StatusHistoryEntry) AdminID() *int64 {
	return h.adminID
}

func (h *StatusHistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *StatusHistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
