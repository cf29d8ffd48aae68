package telegram

import (
	"context"

	"deskbot/internal/application/conversation"
	vo "deskbot/internal/domain/ticket/valueobjects"
)

// ConversationHandler is the application-side entry point for updates.
type ConversationHandler interface {
	Handle(ctx context.Context, in conversation.Incoming) error
}

// UpdateAdapter translates wire updates into the transport-neutral form
// the conversation controller consumes. It implements UpdateHandler for
// polling and is called directly by the webhook endpoint.
type UpdateAdapter struct {
	controller ConversationHandler
}

func NewUpdateAdapter(controller ConversationHandler) *UpdateAdapter {
	return &UpdateAdapter{controller: controller}
}

func (a *UpdateAdapter) HandleUpdate(ctx context.Context, update *Update) error {
	in, ok := toIncoming(update)
	if !ok {
		return nil
	}
	return a.controller.Handle(ctx, in)
}

// toIncoming flattens an update into the controller's input. Updates
// without an identifiable sender (channel posts, service messages) are
// dropped.
func toIncoming(update *Update) (conversation.Incoming, bool) {
	if update == nil {
		return conversation.Incoming{}, false
	}

	if cb := update.CallbackQuery; cb != nil && cb.From != nil {
		in := conversation.Incoming{
			UserID:       cb.From.ID,
			Username:     cb.From.Username,
			FirstName:    cb.From.FirstName,
			LastName:     cb.From.LastName,
			LanguageCode: cb.From.LanguageCode,
			Callback:     &conversation.Callback{ID: cb.ID, Data: cb.Data},
		}
		if cb.Message != nil && cb.Message.Chat != nil {
			in.ChatID = cb.Message.Chat.ID
			in.MessageID = cb.Message.MessageID
		} else {
			in.ChatID = cb.From.ID
		}
		return in, true
	}

	if msg := update.Message; msg != nil && msg.From != nil && !msg.From.IsBot {
		in := conversation.Incoming{
			UserID:       msg.From.ID,
			ChatID:       msg.From.ID,
			MessageID:    msg.MessageID,
			Username:     msg.From.Username,
			FirstName:    msg.From.FirstName,
			LastName:     msg.From.LastName,
			LanguageCode: msg.From.LanguageCode,
			Text:         msg.Text,
		}
		if msg.Chat != nil {
			in.ChatID = msg.Chat.ID
		}
		if in.Text == "" {
			in.Text = msg.Caption
		}
		in.Attachment = extractAttachment(msg)
		return in, true
	}

	return conversation.Incoming{}, false
}

func extractAttachment(msg *Message) *conversation.Attachment {
	switch {
	case len(msg.Photo) > 0:
		// Telegram lists sizes ascending; keep the largest.
		return &conversation.Attachment{
			FileID: msg.Photo[len(msg.Photo)-1].FileID,
			Kind:   vo.MediaPhoto.String(),
		}
	case msg.Document != nil:
		return &conversation.Attachment{FileID: msg.Document.FileID, Kind: vo.MediaDocument.String()}
	case msg.Voice != nil:
		return &conversation.Attachment{FileID: msg.Voice.FileID, Kind: vo.MediaVoice.String()}
	default:
		return nil
	}
}
