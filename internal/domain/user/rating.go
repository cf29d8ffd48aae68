package user

import (
	"fmt"
	"time"
)

// Rating is one feedback submission for an admin's handling of a dialog.
// Append-only, no dedup.
type Rating struct {
	id        uint
	userID    int64
	adminID   int64
	score     int
	comment   string
	createdAt time.Time
}

func NewRating(userID, adminID int64, score int, comment string) (*Rating, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if adminID == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5")
	}

	return &Rating{
		userID:    userID,
		adminID:   adminID,
		score:     score,
		comment:   comment,
		createdAt: time.Now(),
	}, nil
}

func ReconstructRating(id uint, userID, adminID int64, score int, comment string, createdAt time.Time) (*Rating, error) {
	if id == 0 {
		return nil, fmt.Errorf("rating ID cannot be zero")
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5")
	}

	return &Rating{
		id:        id,
		userID:    userID,
		adminID:   adminID,
		score:     score,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

func (r *Rating) ID() uint {
	return r.id
}

func (r *Rating) UserID() int64 {
	return r.userID
}

func (r *Rating) AdminID() int64 {
	return r.adminID
}

func (r *Rating) Score() int {
	return r.score
}

func (r *Rating) Comment() string {
	return r.comment
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rating ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rating ID cannot be zero")
	}
	r.id = id
	return nil
}
