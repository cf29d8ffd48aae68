package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/shared/errors"
)

func TestAddAttachmentUseCase_CapEnforced(t *testing.T) {
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return storedTicket(t, 5, vo.StatusNew), nil
		},
	}

	t.Run("under cap", func(t *testing.T) {
		mockAttachments := &mockAttachmentRepository{
			CountByTicketIDFunc: func(ctx context.Context, ticketID uint) (int64, error) {
				return 2, nil
			},
		}
		uc := NewAddAttachmentUseCase(mockTickets, mockAttachments, 3, &mockLogger{})
		result, err := uc.Execute(context.Background(), AddAttachmentCommand{
			TicketID: 5, FileID: "file-abc", Kind: "photo",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.AttachmentID)
	})

	t.Run("at cap", func(t *testing.T) {
		mockAttachments := &mockAttachmentRepository{
			CountByTicketIDFunc: func(ctx context.Context, ticketID uint) (int64, error) {
				return 3, nil
			},
		}
		uc := NewAddAttachmentUseCase(mockTickets, mockAttachments, 3, &mockLogger{})
		_, err := uc.Execute(context.Background(), AddAttachmentCommand{
			TicketID: 5, FileID: "file-abc", Kind: "photo",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestAddAttachmentUseCase_InvalidKind(t *testing.T) {
	uc := NewAddAttachmentUseCase(&mockTicketRepository{}, &mockAttachmentRepository{}, 3, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddAttachmentCommand{
		TicketID: 5, FileID: "file-abc", Kind: "hologram",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetTicketUseCase_AggregatesView(t *testing.T) {
	tk := storedTicket(t, 5, vo.StatusInProgress)

	reply1, err := ticket.NewReply(5, 200, "first")
	require.NoError(t, err)
	require.NoError(t, reply1.SetID(1))
	reply2, err := ticket.NewReply(5, 200, "second")
	require.NoError(t, err)
	require.NoError(t, reply2.SetID(2))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	mockReplies := &mockReplyRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
			return []*ticket.Reply{reply1, reply2}, nil
		},
	}

	uc := NewGetTicketUseCase(mockTickets, mockReplies, &mockAttachmentRepository{}, &mockStatusHistoryRepository{}, &mockNoteRepository{}, &mockLogger{})
	view, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 5})

	require.NoError(t, err)
	assert.Equal(t, uint(5), view.TicketID)
	assert.Equal(t, "in_progress", view.Status)
	require.Len(t, view.Replies, 2)
	assert.Equal(t, "first", view.Replies[0].Text, "replies are oldest first")
}

func TestGetTicketUseCase_UnknownTicket(t *testing.T) {
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewGetTicketUseCase(mockTickets, &mockReplyRepository{}, &mockAttachmentRepository{}, &mockStatusHistoryRepository{}, &mockNoteRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
