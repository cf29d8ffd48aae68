package faq

import (
	"fmt"
	"time"
)

// Entry is a question/answer pair searchable by keyword substring. TopicID is
// optional; a zero value means the entry is not tied to a topic.
type Entry struct {
	id        uint
	question  string
	answer    string
	topicID   uint
	keywords  string
	createdAt time.Time
}

func NewEntry(question, answer string, topicID uint, keywords string) (*Entry, error) {
	if len(question) == 0 {
		return nil, fmt.Errorf("question is required")
	}
	if len(answer) == 0 {
		return nil, fmt.Errorf("answer is required")
	}

	return &Entry{
		question:  question,
		answer:    answer,
		topicID:   topicID,
		keywords:  keywords,
		createdAt: time.Now(),
	}, nil
}

func ReconstructEntry(id uint, question, answer string, topicID uint, keywords string, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if len(question) == 0 {
		return nil, fmt.Errorf("question is required")
	}

	return &Entry{
		id:        id,
		question:  question,
		answer:    answer,
		topicID:   topicID,
		keywords:  keywords,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) Question() string {
	return e.question
}

func (e *Entry) Answer() string {
	return e.answer
}

func (e *Entry) TopicID() uint {
	return e.topicID
}

func (e *Entry) Keywords() string {
	return e.keywords
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
