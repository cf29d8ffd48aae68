package conversation

import (
	"context"
	"strconv"
	"strings"

	adminuc "deskbot/internal/application/admin/usecases"
	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	faquc "deskbot/internal/application/faq/usecases"
	ticketuc "deskbot/internal/application/ticket/usecases"
	topicuc "deskbot/internal/application/topic/usecases"
	useruc "deskbot/internal/application/user/usecases"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/shared/errors"
)

func boolPtr(b bool) *bool { return &b }

func (c *Controller) showAdminPanel(ctx context.Context, in Incoming, lang i18n.Lang) error {
	open, err := c.deps.ListTickets.Execute(ctx, ticketuc.ListTicketsQuery{Open: boolPtr(true), PageSize: 1})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	kb := actions.Keyboard{
		actions.Row(actions.Button{Label: i18n.BtnAdminDialogs(lang), Payload: actions.Encode(actions.AdminDialogs{Page: 1})}),
		actions.Row(actions.Button{Label: i18n.BtnAdminBroadcast(lang), Payload: actions.Encode(actions.AdminBroadcast{})}),
		actions.Row(
			actions.Button{Label: i18n.BtnAdminManageTopics(lang), Payload: actions.Encode(actions.AdminManageTopics{})},
			actions.Button{Label: i18n.BtnAdminManageFAQ(lang), Payload: actions.Encode(actions.AdminManageFAQ{})},
		),
		actions.Row(actions.Button{Label: i18n.BtnAdminManageAdmins(lang), Payload: actions.Encode(actions.AdminManageAdmins{})}),
		c.backRow(lang),
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminPanel(lang, int(open.Total)), kb)
}

func (c *Controller) showAdminDialogs(ctx context.Context, in Incoming, lang i18n.Lang, page int) error {
	if page < 1 {
		page = 1
	}
	result, err := c.deps.ListTickets.Execute(ctx, ticketuc.ListTicketsQuery{
		Open:     boolPtr(true),
		Page:     page,
		PageSize: c.deps.AdminPageSize,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if result.Total == 0 {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminNoDialogs(lang), actions.Keyboard{
			actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminPanel{})}),
		})
	}

	var kb actions.Keyboard
	for _, item := range result.Items {
		label := ticketLine(lang, item)
		if !item.IsRead {
			label = "🆕 " + label
		}
		kb = append(kb, actions.Row(actions.Button{
			Label:   label,
			Payload: actions.Encode(actions.AdminViewTicket{TicketID: item.TicketID}),
		}))
	}
	if row := paginationRow(lang, result.Page, result.TotalPages, func(p int) actions.Action { return actions.AdminDialogs{Page: p} }); len(row) > 0 {
		kb = append(kb, row)
	}
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminPanel{})}))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID,
		i18n.MsgAdminDialogsHeader(lang, result.Page, result.TotalPages, result.Total), kb)
}

func (c *Controller) showAdminTicket(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	view, err := c.deps.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	kb := actions.Keyboard{}
	if view.Status != vo.StatusClosed.String() {
		kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminReply(lang), Payload: actions.Encode(actions.AdminReply{TicketID: ticketID})}))
		kb = append(kb, actions.Row(
			actions.Button{Label: i18n.BtnAdminResolve(lang), Payload: actions.Encode(actions.AdminResolve{TicketID: ticketID})},
			actions.Button{Label: i18n.BtnAdminClose(lang), Payload: actions.Encode(actions.AdminClose{TicketID: ticketID})},
		))
		kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminReassign(lang), Payload: actions.Encode(actions.AdminReassign{TicketID: ticketID})}))
	}
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminAddNote(lang), Payload: actions.Encode(actions.AdminAddNote{TicketID: ticketID})}))
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminDialogs{Page: 1})}))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, c.renderTicketView(ctx, lang, view, true), kb)
}

func (c *Controller) startAdminReply(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	c.sessions.Set(in.UserID, AdminResponding{TicketID: ticketID})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminReplyPrompt(lang, ticketID), actions.Keyboard{c.cancelRow(lang)})
}

func (c *Controller) receiveAdminReply(ctx context.Context, in Incoming, lang i18n.Lang, st AdminResponding) error {
	if ok, err := c.requireAdmin(ctx, in, lang); err != nil || !ok {
		return err
	}

	text := sanitize(in.Text)
	if text == "" {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}

	result, err := c.deps.AppendReply.Execute(ctx, ticketuc.AppendReplyCommand{
		TicketID: st.TicketID,
		AuthorID: in.UserID,
		Text:     text,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	c.sessions.Clear(in.UserID)

	confirmation := i18n.MsgAdminReplySent(lang, st.TicketID)
	if err := c.deps.Notifier.NotifyUserOfReply(ctx, result.TicketUserID, st.TicketID, text); err != nil {
		confirmation = i18n.MsgAdminReplyNotDelivered(lang, st.TicketID)
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, confirmation, actions.Keyboard{
		actions.Row(actions.Button{Label: "🔎 #" + utoa(st.TicketID), Payload: actions.Encode(actions.AdminViewTicket{TicketID: st.TicketID})}),
		c.backRow(lang),
	})
}

func (c *Controller) adminSetStatus(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint, status string) error {
	adminID := in.UserID
	result, err := c.deps.ChangeStatus.Execute(ctx, ticketuc.ChangeStatusCommand{
		TicketID:      ticketID,
		Status:        status,
		ActingAdminID: &adminID,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if status == vo.StatusResolved.String() {
		c.deps.Notifier.NotifyTicketResolved(ctx, result.TicketUserID, ticketID)
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID,
		i18n.MsgAdminStatusChanged(lang, ticketID, i18n.StatusLabel(lang, result.NewStatus)),
		actions.Keyboard{
			actions.Row(actions.Button{Label: "🔎 #" + utoa(ticketID), Payload: actions.Encode(actions.AdminViewTicket{TicketID: ticketID})}),
			actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminDialogs{Page: 1})}),
		})
}

func (c *Controller) startReassign(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	admins, err := c.deps.ListAdmins.Execute(ctx)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	var kb actions.Keyboard
	for _, a := range admins.Admins {
		kb = append(kb, actions.Row(actions.Button{
			Label:   adminLabel(a),
			Payload: actions.Encode(actions.AdminReassignTo{TicketID: ticketID, AdminID: a.UserID}),
		}))
	}
	kb = append(kb, c.cancelRow(lang))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminReassignPrompt(lang, ticketID), kb)
}

func adminLabel(a adminuc.AdminView) string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return "#" + strconv.FormatInt(a.UserID, 10)
}

func (c *Controller) reassignTo(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint, adminID int64) error {
	_, err := c.deps.AssignTicket.Execute(ctx, ticketuc.AssignTicketCommand{
		TicketID: ticketID,
		AdminID:  adminID,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	view, err := c.deps.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{TicketID: ticketID})
	topicName := ""
	if err == nil {
		topicName = sanitize(c.topicName(ctx, view.TopicID))
	}
	if adminID != in.UserID {
		c.deps.Notifier.NotifyTicketAssigned(ctx, adminID, ticketID, topicName)
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID,
		i18n.MsgAdminReassigned(lang, ticketID, "#"+strconv.FormatInt(adminID, 10)),
		actions.Keyboard{
			actions.Row(actions.Button{Label: "🔎 #" + utoa(ticketID), Payload: actions.Encode(actions.AdminViewTicket{TicketID: ticketID})}),
			c.backRow(lang),
		})
}

func (c *Controller) startAddNote(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	view, err := c.deps.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	c.sessions.Set(in.UserID, AddingNote{TicketID: ticketID, TargetUserID: view.UserID})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminNotePrompt(lang), actions.Keyboard{c.cancelRow(lang)})
}

func (c *Controller) receiveNoteText(ctx context.Context, in Incoming, lang i18n.Lang, st AddingNote) error {
	if ok, err := c.requireAdmin(ctx, in, lang); err != nil || !ok {
		return err
	}

	text := sanitize(in.Text)
	if text == "" {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}

	_, err := c.deps.AddNote.Execute(ctx, useruc.AddNoteCommand{
		UserID:  st.TargetUserID,
		AdminID: in.UserID,
		Text:    text,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	c.sessions.Clear(in.UserID)

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminNoteSaved(lang), actions.Keyboard{
		actions.Row(actions.Button{Label: "🔎 #" + utoa(st.TicketID), Payload: actions.Encode(actions.AdminViewTicket{TicketID: st.TicketID})}),
		c.backRow(lang),
	})
}

func (c *Controller) startBroadcast(ctx context.Context, in Incoming, lang i18n.Lang) error {
	c.sessions.Set(in.UserID, Broadcasting{})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgBroadcastPrompt(lang), actions.Keyboard{c.cancelRow(lang)})
}

func (c *Controller) receiveBroadcastText(ctx context.Context, in Incoming, lang i18n.Lang) error {
	if ok, err := c.requireAdmin(ctx, in, lang); err != nil || !ok {
		return err
	}

	text := sanitize(in.Text)
	if text == "" {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}
	c.sessions.Clear(in.UserID)

	result, err := c.deps.Notifier.Broadcast(ctx, text)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID,
		i18n.MsgBroadcastReport(lang, result.Sent, result.Failed),
		actions.Keyboard{actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminPanel{})})})
}

func (c *Controller) showAdminList(ctx context.Context, in Incoming, lang i18n.Lang) error {
	admins, err := c.deps.ListAdmins.Execute(ctx)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	var kb actions.Keyboard
	for _, a := range admins.Admins {
		kb = append(kb, actions.Row(actions.Button{
			Label:   "❌ " + adminLabel(a),
			Payload: actions.Encode(actions.AdminRemoveAdmin{UserID: a.UserID}),
		}))
	}
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminAddAdmin(lang), Payload: actions.Encode(actions.AdminAddAdmin{})}))
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminPanel{})}))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAdminListHeader(lang, len(admins.Admins)), kb)
}

func (c *Controller) startAddAdmin(ctx context.Context, in Incoming, lang i18n.Lang) error {
	c.sessions.Set(in.UserID, AddingAdmin{})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAddAdminPrompt(lang), actions.Keyboard{c.cancelRow(lang)})
}

func (c *Controller) receiveAdminID(ctx context.Context, in Incoming, lang i18n.Lang) error {
	if ok, err := c.requireAdmin(ctx, in, lang); err != nil || !ok {
		return err
	}

	target, err := strconv.ParseInt(strings.TrimSpace(in.Text), 10, 64)
	if err != nil || target <= 0 {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}
	c.sessions.Clear(in.UserID)

	_, err = c.deps.GrantAdmin.Execute(ctx, adminuc.GrantAdminCommand{UserID: target, GrantedBy: in.UserID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgAdminGranted(lang, target)); err != nil {
		return err
	}
	return c.showAdminList(ctx, in, lang)
}

func (c *Controller) removeAdmin(ctx context.Context, in Incoming, lang i18n.Lang, target int64) error {
	_, err := c.deps.RevokeAdmin.Execute(ctx, adminuc.RevokeAdminCommand{UserID: target, RevokedBy: in.UserID})
	if err != nil {
		if errors.IsConflictError(err) {
			return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgLastAdmin(lang), actions.Keyboard{
				actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminManageAdmins{})}),
			})
		}
		return c.replyError(ctx, in, lang, err)
	}

	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgAdminRevoked(lang, target)); err != nil {
		return err
	}
	return c.showAdminList(ctx, in, lang)
}

func (c *Controller) showTopicManagement(ctx context.Context, in Incoming, lang i18n.Lang) error {
	result, err := c.deps.ListTopics.Execute(ctx)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	var kb actions.Keyboard
	for _, t := range result.Topics {
		kb = append(kb, actions.Row(actions.Button{
			Label:   "❌ " + topicLabel(t.Name, t.Urgent),
			Payload: actions.Encode(actions.AdminRemoveTopic{TopicID: t.TopicID}),
		}))
	}
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminAddTopic(lang), Payload: actions.Encode(actions.AdminAddTopic{})}))
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminPanel{})}))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgTopicListHeader(lang, len(result.Topics)), kb)
}

func (c *Controller) startAddTopic(ctx context.Context, in Incoming, lang i18n.Lang) error {
	c.sessions.Set(in.UserID, CreatingTopic{})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAddTopicPrompt(lang), actions.Keyboard{c.cancelRow(lang)})
}

// receiveTopicName parses "name | description" with optional leading "!"
// for quick action and "!!" for urgent, as the prompt documents.
func (c *Controller) receiveTopicName(ctx context.Context, in Incoming, lang i18n.Lang) error {
	if ok, err := c.requireAdmin(ctx, in, lang); err != nil || !ok {
		return err
	}

	name, description, quick, urgent := parseTopicInput(in.Text)
	if name == "" {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}
	c.sessions.Clear(in.UserID)

	result, err := c.deps.CreateTopic.Execute(ctx, topicuc.CreateTopicCommand{
		AdminID:     in.UserID,
		Name:        name,
		Description: description,
		QuickAction: quick,
		Urgent:      urgent,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgTopicCreated(lang, sanitize(result.Name))); err != nil {
		return err
	}
	return c.showTopicManagement(ctx, in, lang)
}

func parseTopicInput(text string) (name, description string, quick, urgent bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "!!") {
		urgent, quick = true, true
		text = strings.TrimSpace(strings.TrimPrefix(text, "!!"))
	} else if strings.HasPrefix(text, "!") {
		quick = true
		text = strings.TrimSpace(strings.TrimPrefix(text, "!"))
	}

	name = text
	if idx := strings.Index(text, "|"); idx >= 0 {
		name = strings.TrimSpace(text[:idx])
		description = strings.TrimSpace(text[idx+1:])
	}
	return sanitize(name), sanitize(description), quick, urgent
}

func (c *Controller) showFAQManagement(ctx context.Context, in Incoming, lang i18n.Lang) error {
	entries, err := c.deps.ListFAQ.Execute(ctx)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	var kb actions.Keyboard
	for _, e := range entries {
		kb = append(kb, actions.Row(actions.Button{
			Label:   "❌ " + truncate(e.Question, 48),
			Payload: actions.Encode(actions.AdminRemoveFAQ{EntryID: e.EntryID}),
		}))
	}
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminAddFAQ(lang), Payload: actions.Encode(actions.AdminAddFAQ{})}))
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminPanel{})}))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgFAQManageHeader(lang, len(entries)), kb)
}

func (c *Controller) startAddFAQ(ctx context.Context, in Incoming, lang i18n.Lang) error {
	c.sessions.Set(in.UserID, AddingFAQ{})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgAddFAQPrompt(lang), actions.Keyboard{c.cancelRow(lang)})
}

// receiveFAQEntry expects the question on the first line and the answer on
// the rest, matching the prompt.
func (c *Controller) receiveFAQEntry(ctx context.Context, in Incoming, lang i18n.Lang) error {
	if ok, err := c.requireAdmin(ctx, in, lang); err != nil || !ok {
		return err
	}

	question, answer, found := strings.Cut(strings.TrimSpace(in.Text), "\n")
	question = sanitize(question)
	answer = sanitize(answer)
	if !found || question == "" || answer == "" {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgInvalidInput(lang), actions.Keyboard{c.cancelRow(lang)})
	}
	c.sessions.Clear(in.UserID)

	_, err := c.deps.AddFAQ.Execute(ctx, faquc.AddEntryCommand{
		AdminID:  in.UserID,
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgFAQCreated(lang)); err != nil {
		return err
	}
	return c.showFAQManagement(ctx, in, lang)
}

func (c *Controller) removeFAQ(ctx context.Context, in Incoming, lang i18n.Lang, entryID uint) error {
	if err := c.deps.RemoveFAQ.Execute(ctx, faquc.RemoveEntryCommand{AdminID: in.UserID, EntryID: entryID}); err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgFAQRemoved(lang)); err != nil {
		return err
	}
	return c.showFAQManagement(ctx, in, lang)
}

func (c *Controller) removeTopic(ctx context.Context, in Incoming, lang i18n.Lang, topicID uint) error {
	tp, err := c.topicByID(ctx, topicID)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	name := "#" + utoa(topicID)
	if tp != nil {
		name = tp.Name
	}

	_, err = c.deps.DeleteTopic.Execute(ctx, topicuc.DeleteTopicCommand{AdminID: in.UserID, TopicID: topicID})
	if err != nil {
		if errors.IsConflictError(err) {
			return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgTopicInUse(lang, sanitize(name)), actions.Keyboard{
				actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.AdminManageTopics{})}),
			})
		}
		return c.replyError(ctx, in, lang, err)
	}

	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgTopicRemoved(lang, sanitize(name))); err != nil {
		return err
	}
	return c.showTopicManagement(ctx, in, lang)
}

// requireAdmin guards the text sinks of admin flows. Button entry points are
// already guarded in the callback router; a session can outlive a revocation.
func (c *Controller) requireAdmin(ctx context.Context, in Incoming, lang i18n.Lang) (bool, error) {
	isAdmin, err := c.deps.Admins.IsAdmin(ctx, in.UserID)
	if err != nil {
		return false, c.responder.SendMessage(ctx, in.ChatID, i18n.MsgInternalError(lang))
	}
	if !isAdmin {
		c.sessions.Clear(in.UserID)
		return false, c.responder.SendMessage(ctx, in.ChatID, i18n.MsgUnauthorized(lang))
	}
	return true, nil
}
