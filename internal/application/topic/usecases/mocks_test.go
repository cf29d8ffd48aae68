package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/ticket"
	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/logger"
)

type mockTopicRepository struct {
	SaveFunc      func(ctx context.Context, tp *topic.Topic) error
	DeleteFunc    func(ctx context.Context, topicID uint) error
	GetByIDFunc   func(ctx context.Context, topicID uint) (*topic.Topic, error)
	GetByNameFunc func(ctx context.Context, name string) (*topic.Topic, error)
	ListAllFunc   func(ctx context.Context) ([]*topic.Topic, error)
	CountFunc     func(ctx context.Context) (int64, error)
}

func (m *mockTopicRepository) Save(ctx context.Context, tp *topic.Topic) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tp)
	}
	return nil
}

func (m *mockTopicRepository) Delete(ctx context.Context, topicID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, topicID)
	}
	return nil
}

func (m *mockTopicRepository) GetByID(ctx context.Context, topicID uint) (*topic.Topic, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, topicID)
	}
	return nil, nil
}

func (m *mockTopicRepository) GetByName(ctx context.Context, name string) (*topic.Topic, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTopicRepository) ListAll(ctx context.Context) ([]*topic.Topic, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTopicRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockTicketRepository struct {
	ticket.TicketRepository

	CountByTopicIDFunc func(ctx context.Context, topicID uint) (int64, error)
}

func (m *mockTicketRepository) CountByTopicID(ctx context.Context, topicID uint) (int64, error) {
	if m.CountByTopicIDFunc != nil {
		return m.CountByTopicIDFunc(ctx, topicID)
	}
	return 0, nil
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
