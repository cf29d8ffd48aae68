package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/ticket"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/logger"
)

type mockUserRepository struct {
	user.UserRepository

	SaveFunc            func(ctx context.Context, u *user.User) error
	UpdateFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, userID int64) (*user.User, error)
	ListAllFunc         func(ctx context.Context) ([]*user.User, error)
	UrgentQuotaUsedFunc func(ctx context.Context, userID int64, today string) (int, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAll(ctx context.Context) ([]*user.User, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UrgentQuotaUsed(ctx context.Context, userID int64, today string) (int, error) {
	if m.UrgentQuotaUsedFunc != nil {
		return m.UrgentQuotaUsedFunc(ctx, userID, today)
	}
	return 0, nil
}

type mockNoteRepository struct {
	SaveFunc        func(ctx context.Context, note *user.Note) error
	GetByUserIDFunc func(ctx context.Context, userID int64) ([]*user.Note, error)
}

func (m *mockNoteRepository) Save(ctx context.Context, note *user.Note) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, note)
	}
	return nil
}

func (m *mockNoteRepository) GetByUserID(ctx context.Context, userID int64) ([]*user.Note, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockRatingRepository struct {
	SaveFunc         func(ctx context.Context, rating *user.Rating) error
	GetByAdminIDFunc func(ctx context.Context, adminID int64) ([]*user.Rating, error)
}

func (m *mockRatingRepository) Save(ctx context.Context, rating *user.Rating) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rating)
	}
	return nil
}

func (m *mockRatingRepository) GetByAdminID(ctx context.Context, adminID int64) ([]*user.Rating, error) {
	if m.GetByAdminIDFunc != nil {
		return m.GetByAdminIDFunc(ctx, adminID)
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
	return false, nil
}

type mockTicketRepository struct {
	ticket.TicketRepository

	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockReplyRepository struct {
	ticket.ReplyRepository

	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error)
}

func (m *mockReplyRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockProfileSource struct {
	GetChatProfileFunc func(ctx context.Context, userID int64) (string, string, string, error)
}

func (m *mockProfileSource) GetChatProfile(ctx context.Context, userID int64) (string, string, string, error) {
	if m.GetChatProfileFunc != nil {
		return m.GetChatProfileFunc(ctx, userID)
	}
	return "", "", "", nil
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
