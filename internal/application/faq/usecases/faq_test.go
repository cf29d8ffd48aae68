package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/faq"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type mockEntryRepository struct {
	SaveFunc    func(ctx context.Context, e *faq.Entry) error
	DeleteFunc  func(ctx context.Context, entryID uint) error
	GetByIDFunc func(ctx context.Context, entryID uint) (*faq.Entry, error)
	ListAllFunc func(ctx context.Context) ([]*faq.Entry, error)
	SearchFunc  func(ctx context.Context, query string) ([]*faq.Entry, error)
}

func (m *mockEntryRepository) Save(ctx context.Context, e *faq.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, entryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, entryID)
	}
	return nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, entryID uint) (*faq.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, entryID)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListAll(ctx context.Context) ([]*faq.Entry, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockEntryRepository) Search(ctx context.Context, query string) ([]*faq.Entry, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

type mockAdminRepository struct {
	admin.AdminRepository

	IsAdminFunc func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockAdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx, userID)
	}
	return true, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }

func TestAddEntry(t *testing.T) {
	t.Run("saves a valid entry", func(t *testing.T) {
		var saved *faq.Entry
		repo := &mockEntryRepository{
			SaveFunc: func(ctx context.Context, e *faq.Entry) error {
				saved = e
				return nil
			},
		}
		uc := NewAddEntryUseCase(repo, &mockAdminRepository{}, &mockLogger{})

		view, err := uc.Execute(context.Background(), AddEntryCommand{
			AdminID: 1, Question: "How do I reset my password?", Answer: "Use the reset link.",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "How do I reset my password?", view.Question)
	})

	t.Run("rejects a non-admin", func(t *testing.T) {
		adminRepo := &mockAdminRepository{
			IsAdminFunc: func(ctx context.Context, userID int64) (bool, error) { return false, nil },
		}
		uc := NewAddEntryUseCase(&mockEntryRepository{}, adminRepo, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddEntryCommand{AdminID: 5, Question: "q", Answer: "a"})

		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("rejects an empty question", func(t *testing.T) {
		uc := NewAddEntryUseCase(&mockEntryRepository{}, &mockAdminRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddEntryCommand{AdminID: 1, Answer: "a"})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestRemoveEntry(t *testing.T) {
	t.Run("deletes an existing entry", func(t *testing.T) {
		entry, err := faq.NewEntry("q", "a", 0, "")
		require.NoError(t, err)
		deleted := uint(0)
		repo := &mockEntryRepository{
			GetByIDFunc: func(ctx context.Context, entryID uint) (*faq.Entry, error) { return entry, nil },
			DeleteFunc: func(ctx context.Context, entryID uint) error {
				deleted = entryID
				return nil
			},
		}
		uc := NewRemoveEntryUseCase(repo, &mockAdminRepository{}, &mockLogger{})

		require.NoError(t, uc.Execute(context.Background(), RemoveEntryCommand{AdminID: 1, EntryID: 9}))
		assert.Equal(t, uint(9), deleted)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &mockEntryRepository{
			GetByIDFunc: func(ctx context.Context, entryID uint) (*faq.Entry, error) {
				return nil, errors.NewNotFoundError("faq entry not found")
			},
		}
		uc := NewRemoveEntryUseCase(repo, &mockAdminRepository{}, &mockLogger{})

		err := uc.Execute(context.Background(), RemoveEntryCommand{AdminID: 1, EntryID: 9})

		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSearchEntries(t *testing.T) {
	t.Run("maps matches to views", func(t *testing.T) {
		e, err := faq.NewEntry("How to pay?", "With a card.", 2, "billing payment")
		require.NoError(t, err)
		repo := &mockEntryRepository{
			SearchFunc: func(ctx context.Context, query string) ([]*faq.Entry, error) {
				assert.Equal(t, "pay", query)
				return []*faq.Entry{e}, nil
			},
		}
		uc := NewSearchEntriesUseCase(repo, &mockLogger{})

		views, err := uc.Execute(context.Background(), "pay")

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "How to pay?", views[0].Question)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		uc := NewSearchEntriesUseCase(&mockEntryRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), "")

		assert.True(t, errors.IsValidationError(err))
	})
}
