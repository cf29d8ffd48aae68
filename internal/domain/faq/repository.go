package faq

import "context"

type EntryRepository interface {
	Save(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, entryID uint) error
	GetByID(ctx context.Context, entryID uint) (*Entry, error)
	ListAll(ctx context.Context) ([]*Entry, error)

	// Search matches the query as a case-insensitive substring against
	// question, answer and keywords.
	Search(ctx context.Context, query string) ([]*Entry, error)
}
