package conversation

import (
	"context"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	"deskbot/internal/application/notification"
	ticketuc "deskbot/internal/application/ticket/usecases"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
)

func (c *Controller) startCompose(ctx context.Context, in Incoming, lang i18n.Lang) error {
	result, err := c.deps.ListTopics.Execute(ctx)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	// Quick-action topics go on top so the common urgent paths are one tap.
	var kb actions.Keyboard
	for _, t := range result.Topics {
		if t.QuickAction {
			kb = append(kb, actions.Row(actions.Button{Label: topicLabel(t.Name, t.Urgent), Payload: actions.Encode(actions.PickTopic{TopicID: t.TopicID})}))
		}
	}
	for _, t := range result.Topics {
		if !t.QuickAction {
			kb = append(kb, actions.Row(actions.Button{Label: topicLabel(t.Name, t.Urgent), Payload: actions.Encode(actions.PickTopic{TopicID: t.TopicID})}))
		}
	}
	kb = append(kb, c.cancelRow(lang))

	c.sessions.Set(in.UserID, SelectingTopic{})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgSelectTopic(lang), kb)
}

func topicLabel(name string, urgent bool) string {
	if urgent {
		return "⚡ " + name
	}
	return name
}

// pickTopic consumes the urgent quota before any ticket exists. A user over
// quota bounces straight back to the menu with nothing created.
func (c *Controller) pickTopic(ctx context.Context, in Incoming, lang i18n.Lang, topicID uint) error {
	tp, err := c.topicByID(ctx, topicID)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	if tp == nil {
		return c.replyError(ctx, in, lang, errors.NewNotFoundError("topic not found"))
	}

	if tp.Urgent {
		if err := c.deps.Quota.Consume(ctx, in.UserID); err != nil {
			if errors.IsQuotaExceededError(err) {
				c.sessions.Clear(in.UserID)
				return c.responder.SendMessageWithKeyboard(ctx, in.ChatID,
					i18n.MsgQuotaExceeded(lang, c.deps.Quota.MaxPerDay()),
					actions.Keyboard{c.backRow(lang)})
			}
			return c.replyError(ctx, in, lang, err)
		}
	}

	c.sessions.Set(in.UserID, ConfirmingAnonymity{TopicID: topicID})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgConfirmAnonymity(lang), actions.Keyboard{
		actions.Row(
			actions.Button{Label: i18n.BtnAnonymous(lang), Payload: actions.Encode(actions.ChooseAnonymity{Anonymous: true})},
			actions.Button{Label: i18n.BtnWithName(lang), Payload: actions.Encode(actions.ChooseAnonymity{Anonymous: false})},
		),
		c.cancelRow(lang),
	})
}

func (c *Controller) chooseAnonymity(ctx context.Context, in Incoming, lang i18n.Lang, anonymous bool) error {
	st, ok := c.sessions.Get(in.UserID).(ConfirmingAnonymity)
	if !ok {
		// Stale button from an abandoned flow.
		return c.startCompose(ctx, in, lang)
	}

	c.sessions.Set(in.UserID, WritingMessage{TopicID: st.TopicID, Anonymous: anonymous})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgWriteMessage(lang), actions.Keyboard{c.cancelRow(lang)})
}

// receiveComposeText is the WritingMessage sink. The same state covers the
// first message of a new ticket and every continuation of an open dialog;
// DialogTicketID is what tells the two apart.
func (c *Controller) receiveComposeText(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang, st WritingMessage) error {
	text := sanitize(in.Text)
	if text == "" {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}

	if st.DialogTicketID != 0 {
		return c.appendDialogMessage(ctx, in, lang, st, text)
	}
	return c.createTicket(ctx, in, u, lang, st, text)
}

func (c *Controller) createTicket(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang, st WritingMessage, text string) error {
	created, err := c.deps.CreateTicket.Execute(ctx, ticketuc.CreateTicketCommand{
		UserID:    in.UserID,
		TopicID:   st.TopicID,
		Body:      text,
		Anonymous: st.Anonymous,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	c.attachIfPresent(ctx, in, lang, created.TicketID)
	c.sessions.Clear(in.UserID)

	authorLine := ""
	if !st.Anonymous {
		authorLine = sanitize(u.DisplayName())
	}
	c.deps.Notifier.NotifyAdminsNewTicket(ctx, notification.NewTicketInfo{
		TicketID:   created.TicketID,
		Priority:   created.Priority,
		TopicName:  sanitize(c.topicName(ctx, st.TopicID)),
		Body:       text,
		AuthorLine: authorLine,
	})

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgTicketCreated(lang, created.TicketID), actions.Keyboard{c.backRow(lang)})
}

func (c *Controller) appendDialogMessage(ctx context.Context, in Incoming, lang i18n.Lang, st WritingMessage, text string) error {
	_, err := c.deps.AppendReply.Execute(ctx, ticketuc.AppendReplyCommand{
		TicketID: st.DialogTicketID,
		AuthorID: in.UserID,
		Text:     text,
	})
	if err != nil {
		if errors.IsConflictError(err) || errors.IsInvalidTransitionError(err) {
			c.sessions.Clear(in.UserID)
			return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgDialogAlreadyClosed(lang), actions.Keyboard{c.backRow(lang)})
		}
		return c.replyError(ctx, in, lang, err)
	}

	c.attachIfPresent(ctx, in, lang, st.DialogTicketID)
	c.deps.Notifier.NotifyAdminsUserReply(ctx, st.DialogTicketID, text)

	// Stay in WritingMessage so the user can keep talking.
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgReplyAppended(lang, st.DialogTicketID), actions.Keyboard{
		actions.Row(actions.Button{Label: i18n.BtnEndDialog(lang), Payload: actions.Encode(actions.EndDialog{TicketID: st.DialogTicketID})}),
		c.backRow(lang),
	})
}

// attachIfPresent stores a media handle alongside the text. Hitting the
// per-ticket cap is reported but never undoes the message itself.
func (c *Controller) attachIfPresent(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) {
	if in.Attachment == nil {
		return
	}
	_, err := c.deps.AddAttachment.Execute(ctx, ticketuc.AddAttachmentCommand{
		TicketID: ticketID,
		FileID:   in.Attachment.FileID,
		Kind:     in.Attachment.Kind,
	})
	if err != nil {
		c.logger.Warnw("failed to store attachment", "error", err, "ticket_id", ticketID)
		if errors.IsQuotaExceededError(err) || errors.IsValidationError(err) {
			_ = c.responder.SendMessage(ctx, in.ChatID, i18n.MsgAttachmentLimit(lang, c.deps.MaxAttachments))
		}
	}
}
