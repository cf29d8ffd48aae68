package ticket

import (
	"fmt"
	"time"

	vo "deskbot/internal/domain/ticket/valueobjects"
)

type Attachment struct {
	id        uint
	ticketID  uint
	fileID    string
	kind      vo.MediaKind
	localPath *string
	createdAt time.Time
}

func NewAttachment(ticketID uint, fileID string, kind vo.MediaKind) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileID) == 0 {
		return nil, fmt.Errorf("file ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid media kind")
	}

	return &Attachment{
		ticketID:  ticketID,
		fileID:    fileID,
		kind:      kind,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAttachment(
	id, ticketID uint,
	fileID string,
	kind vo.MediaKind,
	localPath *string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid media kind")
	}

	return &Attachment{
		id:        id,
		ticketID:  ticketID,
		fileID:    fileID,
		kind:      kind,
		localPath: localPath,
		createdAt: createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FileID() string {
	return a.fileID
}

func (a *Attachment) Kind() vo.MediaKind {
	return a.kind
}

func (a *Attachment) LocalPath() *string {
	return a.localPath
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Attachment) SetLocalPath(path string) {
	a.localPath = &path
}
