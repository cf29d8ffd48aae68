package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbot/internal/application/conversation/actions"
	ticketuc "deskbot/internal/application/ticket/usecases"
	topicuc "deskbot/internal/application/topic/usecases"
	useruc "deskbot/internal/application/user/usecases"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
)

const testUserID = int64(42)

func testDeps(t *testing.T) (Deps, *mockResponder, *mockNotifier) {
	t.Helper()

	u, err := user.NewUser(testUserID, "jdoe", "John", "Doe", "en")
	require.NoError(t, err)

	deps := Deps{
		RegisterUser: &mockRegisterUser{
			ExecuteFunc: func(ctx context.Context, cmd useruc.RegisterUserCommand) (*useruc.RegisterUserResult, error) {
				return &useruc.RegisterUserResult{User: u}, nil
			},
		},
		ListTopics: &mockListTopics{
			ExecuteFunc: func(ctx context.Context) (*topicuc.ListTopicsResult, error) {
				return &topicuc.ListTopicsResult{Topics: []topicuc.TopicView{
					{TopicID: 1, Name: "General"},
					{TopicID: 2, Name: "Urgent request", Urgent: true, QuickAction: true},
				}}, nil
			},
		},
		Quota:    &mockQuota{Max: 2},
		Notifier: &mockNotifier{},
		Admins:   &mockAdminChecker{},
		PageSize: 10,
	}

	responder := &mockResponder{}
	notifier := deps.Notifier.(*mockNotifier)
	return deps, responder, notifier
}

func callback(data string) Incoming {
	return Incoming{
		UserID:    testUserID,
		ChatID:    testUserID,
		FirstName: "John",
		Callback:  &Callback{ID: "cb-1", Data: data},
	}
}

func text(body string) Incoming {
	return Incoming{UserID: testUserID, ChatID: testUserID, FirstName: "John", Text: body}
}

func TestComposeFlow(t *testing.T) {
	t.Run("walks topic, anonymity, text into a created ticket", func(t *testing.T) {
		deps, responder, notifier := testDeps(t)

		var created *ticketuc.CreateTicketCommand
		deps.CreateTicket = &mockCreateTicket{
			ExecuteFunc: func(ctx context.Context, cmd ticketuc.CreateTicketCommand) (*ticketuc.CreateTicketResult, error) {
				created = &cmd
				return &ticketuc.CreateTicketResult{TicketID: 9, Status: "new", Priority: "normal"}, nil
			},
		}

		c := NewController(deps, responder, &mockLogger{})

		require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.NewTicket{}))))
		assert.IsType(t, SelectingTopic{}, c.sessions.Get(testUserID))

		require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.PickTopic{TopicID: 1}))))
		assert.Equal(t, ConfirmingAnonymity{TopicID: 1}, c.sessions.Get(testUserID))

		require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.ChooseAnonymity{Anonymous: true}))))
		assert.Equal(t, WritingMessage{TopicID: 1, Anonymous: true}, c.sessions.Get(testUserID))

		require.NoError(t, c.Handle(context.Background(), text("my payment failed")))

		require.NotNil(t, created)
		assert.Equal(t, testUserID, created.UserID)
		assert.Equal(t, uint(1), created.TopicID)
		assert.True(t, created.Anonymous)
		assert.Equal(t, "my payment failed", created.Body)

		assert.Nil(t, c.sessions.Get(testUserID), "session should be idle after creation")

		require.Len(t, notifier.NewTickets, 1)
		assert.Equal(t, uint(9), notifier.NewTickets[0].TicketID)
		assert.Empty(t, notifier.NewTickets[0].AuthorLine, "anonymous ticket must not carry the author")
	})

	t.Run("over-quota urgent pick bounces to idle without a ticket", func(t *testing.T) {
		deps, responder, notifier := testDeps(t)
		deps.Quota = &mockQuota{
			Max: 2,
			ConsumeFunc: func(ctx context.Context, userID int64) error {
				return errors.NewQuotaExceededError("daily urgent limit reached")
			},
		}
		deps.CreateTicket = &mockCreateTicket{
			ExecuteFunc: func(ctx context.Context, cmd ticketuc.CreateTicketCommand) (*ticketuc.CreateTicketResult, error) {
				t.Fatal("no ticket should be created")
				return nil, nil
			},
		}

		c := NewController(deps, responder, &mockLogger{})
		require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.NewTicket{}))))
		require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.PickTopic{TopicID: 2}))))

		assert.Nil(t, c.sessions.Get(testUserID))
		assert.Empty(t, notifier.NewTickets)
		assert.Contains(t, responder.lastText(), "2", "quota message should name the daily limit")
	})

	t.Run("strips markup from the ticket body", func(t *testing.T) {
		deps, responder, _ := testDeps(t)
		deps.CreateTicket = &mockCreateTicket{
			ExecuteFunc: func(ctx context.Context, cmd ticketuc.CreateTicketCommand) (*ticketuc.CreateTicketResult, error) {
				assert.Equal(t, "hello", cmd.Body)
				return &ticketuc.CreateTicketResult{TicketID: 3}, nil
			},
		}

		c := NewController(deps, responder, &mockLogger{})
		c.sessions.Set(testUserID, WritingMessage{TopicID: 1})
		require.NoError(t, c.Handle(context.Background(), text("<script>x</script>hello")))
	})
}

func TestDialogContinuation(t *testing.T) {
	t.Run("text in an open dialog appends a reply authored by the owner", func(t *testing.T) {
		deps, responder, notifier := testDeps(t)

		var appended *ticketuc.AppendReplyCommand
		deps.AppendReply = &mockAppendReply{
			ExecuteFunc: func(ctx context.Context, cmd ticketuc.AppendReplyCommand) (*ticketuc.AppendReplyResult, error) {
				appended = &cmd
				return &ticketuc.AppendReplyResult{ReplyID: 1, TicketUserID: testUserID, TicketStatus: "in_progress"}, nil
			},
		}

		c := NewController(deps, responder, &mockLogger{})
		c.sessions.Set(testUserID, WritingMessage{TopicID: 1, DialogTicketID: 7})

		require.NoError(t, c.Handle(context.Background(), text("still broken")))

		require.NotNil(t, appended)
		assert.Equal(t, uint(7), appended.TicketID)
		assert.Equal(t, testUserID, appended.AuthorID)

		assert.Equal(t, []uint{7}, notifier.UserReplies)
		assert.Equal(t, WritingMessage{TopicID: 1, DialogTicketID: 7}, c.sessions.Get(testUserID),
			"dialog stays open for further messages")
	})

	t.Run("closed dialog rejects the continuation and resets the session", func(t *testing.T) {
		deps, responder, _ := testDeps(t)
		deps.AppendReply = &mockAppendReply{
			ExecuteFunc: func(ctx context.Context, cmd ticketuc.AppendReplyCommand) (*ticketuc.AppendReplyResult, error) {
				return nil, errors.NewConflictError("ticket is closed")
			},
		}

		c := NewController(deps, responder, &mockLogger{})
		c.sessions.Set(testUserID, WritingMessage{TopicID: 1, DialogTicketID: 7})

		require.NoError(t, c.Handle(context.Background(), text("anyone there?")))
		assert.Nil(t, c.sessions.Get(testUserID))
		assert.NotEmpty(t, responder.Sent)
	})
}

func TestCancelClearsSession(t *testing.T) {
	deps, responder, _ := testDeps(t)
	c := NewController(deps, responder, &mockLogger{})
	c.sessions.Set(testUserID, WritingMessage{TopicID: 1, DialogTicketID: 7})

	require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.Cancel{}))))

	assert.Nil(t, c.sessions.Get(testUserID))
	assert.NotEmpty(t, responder.Sent, "cancel should land back on the menu")
}

func TestAdminGate(t *testing.T) {
	t.Run("non-admin pressing an admin button is turned away", func(t *testing.T) {
		deps, responder, _ := testDeps(t)
		c := NewController(deps, responder, &mockLogger{})

		require.NoError(t, c.Handle(context.Background(), callback(actions.Encode(actions.AdminPanel{}))))
		// Unauthorized notice plus the re-rendered menu.
		assert.GreaterOrEqual(t, len(responder.Sent), 2)
		assert.Nil(t, c.sessions.Get(testUserID))
	})

	t.Run("demotion mid-flow kills the pending broadcast", func(t *testing.T) {
		deps, responder, notifier := testDeps(t)
		deps.Admins = &mockAdminChecker{
			IsAdminFunc: func(ctx context.Context, userID int64) (bool, error) { return false, nil },
		}

		c := NewController(deps, responder, &mockLogger{})
		c.sessions.Set(testUserID, Broadcasting{})

		require.NoError(t, c.Handle(context.Background(), text("big announcement")))

		assert.Empty(t, notifier.Broadcasts, "broadcast must not run for a demoted admin")
		assert.Nil(t, c.sessions.Get(testUserID))
	})

	t.Run("admin broadcast reports the tally", func(t *testing.T) {
		deps, responder, notifier := testDeps(t)
		deps.Admins = &mockAdminChecker{
			IsAdminFunc: func(ctx context.Context, userID int64) (bool, error) { return true, nil },
		}

		c := NewController(deps, responder, &mockLogger{})
		c.sessions.Set(testUserID, Broadcasting{})

		require.NoError(t, c.Handle(context.Background(), text("maintenance tonight")))

		assert.Equal(t, []string{"maintenance tonight"}, notifier.Broadcasts)
		assert.Nil(t, c.sessions.Get(testUserID))
	})
}

func TestUndecodableCallbackFallsBackToMenu(t *testing.T) {
	deps, responder, _ := testDeps(t)
	c := NewController(deps, responder, &mockLogger{})

	require.NoError(t, c.Handle(context.Background(), callback("no-such-action:zzz")))
	assert.NotEmpty(t, responder.Sent)
	assert.Len(t, responder.Answered, 1, "callback must still be acked")
}

func TestTopicInputParsing(t *testing.T) {
	tests := []struct {
		input string
		name  string
		desc  string
		quick bool
		urg   bool
	}{
		{"Billing | Payment problems", "Billing", "Payment problems", false, false},
		{"! Outage | Service down", "Outage", "Service down", true, false},
		{"!! Emergency", "Emergency", "", true, true},
		{"   Plain   ", "Plain", "", false, false},
	}
	for _, tt := range tests {
		name, desc, quick, urg := parseTopicInput(tt.input)
		assert.Equal(t, tt.name, name, tt.input)
		assert.Equal(t, tt.desc, desc, tt.input)
		assert.Equal(t, tt.quick, quick, tt.input)
		assert.Equal(t, tt.urg, urg, tt.input)
	}
}
