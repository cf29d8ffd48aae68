package user

import (
	"fmt"
	"time"
)

// Note is a free-text annotation about a user, written by an admin and visible
// to any admin viewing that user's tickets.
type Note struct {
	id        uint
	userID    int64
	adminID   int64
	text      string
	createdAt time.Time
}

func NewNote(userID, adminID int64, text string) (*Note, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if adminID == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text is required")
	}

	return &Note{
		userID:    userID,
		adminID:   adminID,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNote(id uint, userID, adminID int64, text string, createdAt time.Time) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Note{
		id:        id,
		userID:    userID,
		adminID:   adminID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) UserID() int64 {
	return n.userID
}

func (n *Note) AdminID() int64 {
	return n.adminID
}

func (n *Note) Text() string {
	return n.text
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}
