package topic

import (
	"fmt"
	"time"
)

// Topic is a named support category. A quick-action topic escalates derived
// ticket priority to high; an urgent topic escalates to urgent and is subject
// to the per-user daily quota.
type Topic struct {
	id            uint
	name          string
	description   string
	isQuickAction bool
	isUrgent      bool
	createdAt     time.Time
}

func NewTopic(name, description string, quickAction, urgent bool) (*Topic, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if urgent && !quickAction {
		return nil, fmt.Errorf("urgent topic must be a quick action")
	}

	return &Topic{
		name:          name,
		description:   description,
		isQuickAction: quickAction,
		isUrgent:      urgent,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructTopic(id uint, name, description string, quickAction, urgent bool, createdAt time.Time) (*Topic, error) {
	if id == 0 {
		return nil, fmt.Errorf("topic ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Topic{
		id:            id,
		name:          name,
		description:   description,
		isQuickAction: quickAction,
		isUrgent:      urgent,
		createdAt:     createdAt,
	}, nil
}

func (t *Topic) ID() uint {
	return t.id
}

func (t *Topic) Name() string {
	return t.name
}

func (t *Topic) Description() string {
	return t.description
}

func (t *Topic) IsQuickAction() bool {
	return t.isQuickAction
}

func (t *Topic) IsUrgent() bool {
	return t.isUrgent
}

func (t *Topic) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Topic) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("topic ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("topic ID cannot be zero")
	}
	t.id = id
	return nil
}
