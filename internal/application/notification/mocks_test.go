package notification

import (
	"context"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/logger"
)

type mockSender struct {
	SendMessageFunc             func(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboardFunc func(ctx context.Context, chatID int64, text string, keyboard actions.Keyboard) error
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, chatID, text)
	}
	return nil
}

func (m *mockSender) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard actions.Keyboard) error {
	if m.SendMessageWithKeyboardFunc != nil {
		return m.SendMessageWithKeyboardFunc(ctx, chatID, text, keyboard)
	}
	return nil
}

type mockUserRepository struct {
	user.UserRepository

	GetByIDFunc       func(ctx context.Context, userID int64) (*user.User, error)
	ListNotBannedFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) ListNotBanned(ctx context.Context) ([]*user.User, error) {
	if m.ListNotBannedFunc != nil {
		return m.ListNotBannedFunc(ctx)
	}
	return nil, nil
}

type mockAdminRepository struct {
	admin.AdminRepository

	ListAllFunc func(ctx context.Context) ([]*admin.Admin, error)
}

func (m *mockAdminRepository) ListAll(ctx context.Context) ([]*admin.Admin, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct {
	DebugwFunc func(msg string, keysAndValues ...any)
	InfowFunc  func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }
