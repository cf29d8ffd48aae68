package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/domain/topic"
	"deskbot/internal/shared/errors"
)

func testTopic(t *testing.T, id uint, quickAction, urgent bool) *topic.Topic {
	t.Helper()
	tp, err := topic.NewTopic("Bug report", "desc", quickAction, urgent)
	require.NoError(t, err)
	require.NoError(t, tp.SetID(id))
	return tp
}

func TestCreateTicketUseCase_PriorityDerivation(t *testing.T) {
	tests := []struct {
		name         string
		quickAction  bool
		urgent       bool
		wantPriority string
	}{
		{"standard topic yields normal", false, false, "normal"},
		{"quick action topic yields high", true, false, "high"},
		{"urgent topic yields urgent", true, true, "urgent"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			var savedHistory *ticket.StatusHistoryEntry

			mockTickets := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					if err := tk.SetID(100); err != nil {
						return err
					}
					savedTicket = tk
					return nil
				},
			}
			mockHistory := &mockStatusHistoryRepository{
				SaveFunc: func(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
					savedHistory = entry
					return entry.SetID(1)
				},
			}
			mockTopics := &mockTopicRepository{
				GetByIDFunc: func(ctx context.Context, topicID uint) (*topic.Topic, error) {
					return testTopic(t, topicID, tc.quickAction, tc.urgent), nil
				},
			}

			uc := NewCreateTicketUseCase(mockTickets, mockHistory, mockTopics, &mockTxManager{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), CreateTicketCommand{
				UserID:  100,
				TopicID: 1,
				Body:    "something broke",
			})

			require.NoError(t, err)
			assert.Equal(t, uint(100), result.TicketID)
			assert.Equal(t, "new", result.Status)
			assert.Equal(t, tc.wantPriority, result.Priority)

			require.NotNil(t, savedTicket)
			assert.Nil(t, savedTicket.AssignedAdminID())

			require.NotNil(t, savedHistory, "ticket creation must write the single 'new' history row")
			assert.Equal(t, vo.StatusNew, savedHistory.Status())
			assert.Nil(t, savedHistory.AdminID(), "creation history entry is system-initiated")
		})
	}
}

func TestCreateTicketUseCase_AnonymousFlagPersisted(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockTickets := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(7)
		},
	}
	mockTopics := &mockTopicRepository{
		GetByIDFunc: func(ctx context.Context, topicID uint) (*topic.Topic, error) {
			return testTopic(t, topicID, false, false), nil
		},
	}

	uc := NewCreateTicketUseCase(mockTickets, &mockStatusHistoryRepository{}, mockTopics, &mockTxManager{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		UserID:    100,
		TopicID:   1,
		Body:      "keep my name out of this",
		Anonymous: true,
	})

	require.NoError(t, err)
	require.NotNil(t, savedTicket)
	assert.True(t, savedTicket.IsAnonymous())
	assert.Equal(t, int64(100), savedTicket.UserID(), "author is recorded even when anonymous")
}

func TestCreateTicketUseCase_UnknownTopic(t *testing.T) {
	mockTopics := &mockTopicRepository{
		GetByIDFunc: func(ctx context.Context, topicID uint) (*topic.Topic, error) {
			return nil, errors.NewNotFoundError("topic not found")
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockStatusHistoryRepository{}, mockTopics, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		UserID:  100,
		TopicID: 99,
		Body:    "body",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateTicketUseCase_ValidationFailures(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockStatusHistoryRepository{}, &mockTopicRepository{}, &mockTxManager{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing user", CreateTicketCommand{TopicID: 1, Body: "b"}},
		{"missing topic", CreateTicketCommand{UserID: 1, Body: "b"}},
		{"missing body", CreateTicketCommand{UserID: 1, TopicID: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
