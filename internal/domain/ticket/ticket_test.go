package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "deskbot/internal/domain/ticket/valueobjects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(100, 1, "Cannot log in after update", false, vo.PriorityNormal)
	require.NoError(t, err)
	return tk
}

func reconstructedTicket(t *testing.T, status vo.TicketStatus) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		1,
		100, // userID
		1,   // topicID
		"persisted body",
		false,
		status,
		vo.PriorityHigh,
		false,
		nil, // assignedAdminID
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket_ValidInput(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		topicID   uint
		body      string
		anonymous bool
		priority  vo.Priority
	}{
		{
			name:   "normal priority",
			userID: 100, topicID: 1, body: "Login page broken",
			anonymous: false, priority: vo.PriorityNormal,
		},
		{
			name:   "anonymous urgent",
			userID: 42, topicID: 3, body: "Payment stuck",
			anonymous: true, priority: vo.PriorityUrgent,
		},
		{
			name:   "boundary body length",
			userID: 7, topicID: 2, body: strings.Repeat("b", 4000),
			anonymous: false, priority: vo.PriorityHigh,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.userID, tc.topicID, tc.body, tc.anonymous, tc.priority)
			require.NoError(t, err)
			require.NotNil(t, tk)

			assert.Equal(t, tc.userID, tk.UserID())
			assert.Equal(t, tc.topicID, tk.TopicID())
			assert.Equal(t, tc.body, tk.Body())
			assert.Equal(t, tc.anonymous, tk.IsAnonymous())
			assert.Equal(t, tc.priority, tk.Priority())
			assert.Equal(t, vo.StatusNew, tk.Status(), "new ticket must have status 'new'")
			assert.False(t, tk.IsRead())
			assert.Nil(t, tk.AssignedAdminID())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		topicID  uint
		body     string
		priority vo.Priority
		wantErr  string
	}{
		{"zero user", 0, 1, "body", vo.PriorityNormal, "user ID is required"},
		{"zero topic", 1, 0, "body", vo.PriorityNormal, "topic ID is required"},
		{"empty body", 1, 1, "", vo.PriorityNormal, "body is required"},
		{"body too long", 1, 1, strings.Repeat("b", 4001), vo.PriorityNormal, "exceeds maximum length"},
		{"invalid priority", 1, 1, "body", vo.Priority("extreme"), "invalid priority"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.userID, tc.topicID, tc.body, false, tc.priority)
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestTicket_ChangeStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.TicketStatus
		to      vo.TicketStatus
		wantErr bool
	}{
		{"new to in_progress", vo.StatusNew, vo.StatusInProgress, false},
		{"new to resolved", vo.StatusNew, vo.StatusResolved, false},
		{"new to closed", vo.StatusNew, vo.StatusClosed, false},
		{"in_progress to resolved", vo.StatusInProgress, vo.StatusResolved, false},
		{"in_progress to closed", vo.StatusInProgress, vo.StatusClosed, false},
		{"resolved to closed", vo.StatusResolved, vo.StatusClosed, false},
		{"in_progress back to new", vo.StatusInProgress, vo.StatusNew, true},
		{"resolved back to in_progress", vo.StatusResolved, vo.StatusInProgress, true},
		{"closed to in_progress", vo.StatusClosed, vo.StatusInProgress, true},
		{"closed to resolved", vo.StatusClosed, vo.StatusResolved, true},
		{"closed to closed", vo.StatusClosed, vo.StatusClosed, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := reconstructedTicket(t, tc.from)
			err := tk.ChangeStatus(tc.to)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.from, tk.Status(), "status must not change on rejected transition")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.to, tk.Status())
			}
		})
	}
}

func TestTicket_ChangeStatus_SameStatusNoOp(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)
	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestTicket_ClosedIsTerminal(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))

	for _, next := range []vo.TicketStatus{vo.StatusNew, vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed} {
		err := tk.ChangeStatus(next)
		require.Error(t, err, "closed ticket accepted transition to %s", next)
	}
	assert.Equal(t, vo.StatusClosed, tk.Status())
}

func TestTicket_RegisterReply(t *testing.T) {
	t.Run("new ticket moves to in_progress and is marked read", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.RegisterReply())
		assert.Equal(t, vo.StatusInProgress, tk.Status())
		assert.True(t, tk.IsRead())
	})

	t.Run("in_progress ticket keeps status", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusInProgress)
		require.NoError(t, tk.RegisterReply())
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("resolved ticket keeps status", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusResolved)
		require.NoError(t, tk.RegisterReply())
		assert.Equal(t, vo.StatusResolved, tk.Status())
	})

	t.Run("closed ticket rejects reply", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusClosed)
		err := tk.RegisterReply()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "closed")
	})
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.AssignTo(555))
	require.NotNil(t, tk.AssignedAdminID())
	assert.Equal(t, int64(555), *tk.AssignedAdminID())
	assert.Equal(t, vo.StatusNew, tk.Status(), "assignment must not change status")

	require.Error(t, tk.AssignTo(0))

	tk.Unassign()
	assert.Nil(t, tk.AssignedAdminID())
}

func TestTicket_SetID(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.SetID(9))
	assert.Equal(t, uint(9), tk.ID())
	require.Error(t, tk.SetID(10), "ID must be settable only once")
	require.Error(t, newValidTicket(t).SetID(0))
}

func TestDerivePriority(t *testing.T) {
	assert.Equal(t, vo.PriorityUrgent, vo.DerivePriority(true, true))
	assert.Equal(t, vo.PriorityUrgent, vo.DerivePriority(true, false))
	assert.Equal(t, vo.PriorityHigh, vo.DerivePriority(false, true))
	assert.Equal(t, vo.PriorityNormal, vo.DerivePriority(false, false))
}
