package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/logger"
)

type mockAdminRepository struct {
	SaveFunc    func(ctx context.Context, a *admin.Admin) error
	DeleteFunc  func(ctx context.Context, userID int64) error
	IsAdminFunc func(ctx context.Context, userID int64) (bool, error)
	ListAllFunc func(ctx context.Context) ([]*admin.Admin, error)
	CountFunc   func(ctx context.Context) (int64, error)
}

func (m *mockAdminRepository) Save(ctx context.Context, a *admin.Admin) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAdminRepository) Delete(ctx context.Context, userID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockAdminRepository) GetByUserID(ctx context.Context, userID int64) (*admin.Admin, error) {
	return nil, nil
}

func (m *mockAdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx, userID)
	}
	return false, nil
}

func (m *mockAdminRepository) ListAll(ctx context.Context) ([]*admin.Admin, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockUserRepository struct {
	user.UserRepository

	SaveFunc    func(ctx context.Context, u *user.User) error
	GetByIDFunc func(ctx context.Context, userID int64) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
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
