package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/ticket"
	"deskbot/internal/domain/topic"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetUserTicketsFunc func(ctx context.Context, userID int64, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByTopicIDFunc func(ctx context.Context, topicID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetUserTickets(ctx context.Context, userID int64, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetUserTicketsFunc != nil {
		return m.GetUserTicketsFunc(ctx, userID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByTopicID(ctx context.Context, topicID uint) (int64, error) {
	if m.CountByTopicIDFunc != nil {
		return m.CountByTopicIDFunc(ctx, topicID)
	}
	return 0, nil
}

type mockReplyRepository struct {
	SaveFunc          func(ctx context.Context, reply *ticket.Reply) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error)
}

func (m *mockReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, reply)
	}
	return reply.SetID(1)
}

func (m *mockReplyRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc            func(ctx context.Context, attachment *ticket.Attachment) error
	GetByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	CountByTicketIDFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return attachment.SetID(1)
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketIDFunc != nil {
		return m.CountByTicketIDFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockStatusHistoryRepository struct {
	SaveFunc          func(ctx context.Context, entry *ticket.StatusHistoryEntry) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.StatusHistoryEntry, error)
}

func (m *mockStatusHistoryRepository) Save(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return entry.SetID(1)
}

func (m *mockStatusHistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.StatusHistoryEntry, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockTopicRepository struct {
	SaveFunc      func(ctx context.Context, t *topic.Topic) error
	DeleteFunc    func(ctx context.Context, topicID uint) error
	GetByIDFunc   func(ctx context.Context, topicID uint) (*topic.Topic, error)
	GetByNameFunc func(ctx context.Context, name string) (*topic.Topic, error)
	ListAllFunc   func(ctx context.Context) ([]*topic.Topic, error)
	CountFunc     func(ctx context.Context) (int64, error)
}

func (m *mockTopicRepository) Save(ctx context.Context, t *topic.Topic) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
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

type mockAdminRepository struct {
	SaveFunc        func(ctx context.Context, a *admin.Admin) error
	DeleteFunc      func(ctx context.Context, userID int64) error
	GetByUserIDFunc func(ctx context.Context, userID int64) (*admin.Admin, error)
	IsAdminFunc     func(ctx context.Context, userID int64) (bool, error)
	ListAllFunc     func(ctx context.Context) ([]*admin.Admin, error)
	CountFunc       func(ctx context.Context) (int64, error)
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
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
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

// mockTxManager runs the callback inline, no transaction semantics.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
