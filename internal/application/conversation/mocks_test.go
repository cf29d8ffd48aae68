package conversation

import (
	"context"

	adminuc "deskbot/internal/application/admin/usecases"
	"deskbot/internal/application/conversation/actions"
	faquc "deskbot/internal/application/faq/usecases"
	"deskbot/internal/application/notification"
	ticketuc "deskbot/internal/application/ticket/usecases"
	topicuc "deskbot/internal/application/topic/usecases"
	useruc "deskbot/internal/application/user/usecases"
	"deskbot/internal/shared/logger"
)

type sentMessage struct {
	ChatID   int64
	Text     string
	Keyboard actions.Keyboard
}

type mockResponder struct {
	Sent      []sentMessage
	Answered  []string
	SendErr   error
	AnswerErr error
}

func (m *mockResponder) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.Sent = append(m.Sent, sentMessage{ChatID: chatID, Text: text})
	return m.SendErr
}

func (m *mockResponder) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard actions.Keyboard) error {
	m.Sent = append(m.Sent, sentMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
	return m.SendErr
}

func (m *mockResponder) EditMessage(ctx context.Context, chatID, messageID int64, text string, keyboard actions.Keyboard) error {
	m.Sent = append(m.Sent, sentMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
	return m.SendErr
}

func (m *mockResponder) AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error {
	m.Answered = append(m.Answered, callbackID)
	return m.AnswerErr
}

func (m *mockResponder) lastText() string {
	if len(m.Sent) == 0 {
		return ""
	}
	return m.Sent[len(m.Sent)-1].Text
}

type mockNotifier struct {
	NewTickets    []notification.NewTicketInfo
	UserReplies   []uint
	ReplyErr      error
	Broadcasts    []string
	BroadcastFunc func(ctx context.Context, text string) (notification.BroadcastResult, error)
}

func (m *mockNotifier) NotifyAdminsNewTicket(ctx context.Context, info notification.NewTicketInfo) {
	m.NewTickets = append(m.NewTickets, info)
}

func (m *mockNotifier) NotifyAdminsUserReply(ctx context.Context, ticketID uint, text string) {
	m.UserReplies = append(m.UserReplies, ticketID)
}

func (m *mockNotifier) NotifyUserOfReply(ctx context.Context, ownerID int64, ticketID uint, text string) error {
	return m.ReplyErr
}

func (m *mockNotifier) NotifyTicketAssigned(ctx context.Context, adminID int64, ticketID uint, topicName string) {
}

func (m *mockNotifier) NotifyTicketResolved(ctx context.Context, ownerID int64, ticketID uint) {}

func (m *mockNotifier) Broadcast(ctx context.Context, text string) (notification.BroadcastResult, error) {
	m.Broadcasts = append(m.Broadcasts, text)
	if m.BroadcastFunc != nil {
		return m.BroadcastFunc(ctx, text)
	}
	return notification.BroadcastResult{Sent: len(text)}, nil
}

type mockQuota struct {
	ConsumeFunc func(ctx context.Context, userID int64) error
	Max         int
}

func (m *mockQuota) Consume(ctx context.Context, userID int64) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, userID)
	}
	return nil
}

func (m *mockQuota) MaxPerDay() int { return m.Max }

type mockAdminChecker struct {
	IsAdminFunc func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockAdminChecker) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx, userID)
	}
	return false, nil
}

type mockRegisterUser struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.RegisterUserCommand) (*useruc.RegisterUserResult, error)
}

func (m *mockRegisterUser) Execute(ctx context.Context, cmd useruc.RegisterUserCommand) (*useruc.RegisterUserResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockSetLanguage struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.SetLanguageCommand) (*useruc.SetLanguageResult, error)
}

func (m *mockSetLanguage) Execute(ctx context.Context, cmd useruc.SetLanguageCommand) (*useruc.SetLanguageResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAddRating struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.AddRatingCommand) (*useruc.AddRatingResult, error)
}

func (m *mockAddRating) Execute(ctx context.Context, cmd useruc.AddRatingCommand) (*useruc.AddRatingResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockCreateTicket struct {
	ExecuteFunc func(ctx context.Context, cmd ticketuc.CreateTicketCommand) (*ticketuc.CreateTicketResult, error)
}

func (m *mockCreateTicket) Execute(ctx context.Context, cmd ticketuc.CreateTicketCommand) (*ticketuc.CreateTicketResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAppendReply struct {
	ExecuteFunc func(ctx context.Context, cmd ticketuc.AppendReplyCommand) (*ticketuc.AppendReplyResult, error)
}

func (m *mockAppendReply) Execute(ctx context.Context, cmd ticketuc.AppendReplyCommand) (*ticketuc.AppendReplyResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockChangeStatus struct {
	ExecuteFunc func(ctx context.Context, cmd ticketuc.ChangeStatusCommand) (*ticketuc.ChangeStatusResult, error)
}

func (m *mockChangeStatus) Execute(ctx context.Context, cmd ticketuc.ChangeStatusCommand) (*ticketuc.ChangeStatusResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetTicket struct {
	ExecuteFunc func(ctx context.Context, query ticketuc.GetTicketQuery) (*ticketuc.TicketView, error)
}

func (m *mockGetTicket) Execute(ctx context.Context, query ticketuc.GetTicketQuery) (*ticketuc.TicketView, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListTopics struct {
	ExecuteFunc func(ctx context.Context) (*topicuc.ListTopicsResult, error)
}

func (m *mockListTopics) Execute(ctx context.Context) (*topicuc.ListTopicsResult, error) {
	return m.ExecuteFunc(ctx)
}

type mockGrantAdmin struct {
	ExecuteFunc func(ctx context.Context, cmd adminuc.GrantAdminCommand) (*adminuc.GrantAdminResult, error)
}

func (m *mockGrantAdmin) Execute(ctx context.Context, cmd adminuc.GrantAdminCommand) (*adminuc.GrantAdminResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockSearchFAQ struct {
	ExecuteFunc func(ctx context.Context, query string) ([]faquc.EntryView, error)
}

func (m *mockSearchFAQ) Execute(ctx context.Context, query string) ([]faquc.EntryView, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
