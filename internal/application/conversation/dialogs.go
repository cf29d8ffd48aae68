package conversation

import (
	"context"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	ticketuc "deskbot/internal/application/ticket/usecases"
	useruc "deskbot/internal/application/user/usecases"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
)

func (c *Controller) showMyTickets(ctx context.Context, in Incoming, lang i18n.Lang, page int) error {
	if page < 1 {
		page = 1
	}
	result, err := c.deps.ListUserTickets.Execute(ctx, ticketuc.ListUserTicketsQuery{
		UserID:   in.UserID,
		Page:     page,
		PageSize: c.deps.PageSize,
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if result.Total == 0 {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgNoTickets(lang), actions.Keyboard{c.backRow(lang)})
	}

	var kb actions.Keyboard
	for _, item := range result.Items {
		kb = append(kb, actions.Row(actions.Button{
			Label:   ticketLine(lang, item),
			Payload: actions.Encode(actions.ViewTicket{TicketID: item.TicketID}),
		}))
	}
	if row := paginationRow(lang, result.Page, result.TotalPages, func(p int) actions.Action { return actions.MyTickets{Page: p} }); len(row) > 0 {
		kb = append(kb, row)
	}
	kb = append(kb, c.backRow(lang))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgMyTicketsHeader(lang, result.Page, result.TotalPages), kb)
}

func (c *Controller) showOwnTicket(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	view, err := c.deps.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	// Ticket ids are guessable; never show someone else's dialog.
	if view.UserID != in.UserID {
		return c.replyError(ctx, in, lang, errors.NewNotFoundError("ticket not found"))
	}

	kb := actions.Keyboard{}
	if view.Status != vo.StatusClosed.String() {
		kb = append(kb, actions.Row(
			actions.Button{Label: i18n.BtnContinueDialog(lang), Payload: actions.Encode(actions.ContinueDialog{TicketID: ticketID})},
			actions.Button{Label: i18n.BtnEndDialog(lang), Payload: actions.Encode(actions.EndDialog{TicketID: ticketID})},
		))
	}
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnMyTickets(lang), Payload: actions.Encode(actions.MyTickets{Page: 1})}))
	kb = append(kb, c.backRow(lang))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, c.renderTicketView(ctx, lang, view, false), kb)
}

func (c *Controller) continueDialog(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	view, err := c.deps.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	if view.UserID != in.UserID {
		return c.replyError(ctx, in, lang, errors.NewNotFoundError("ticket not found"))
	}
	if view.Status == vo.StatusClosed.String() {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgDialogAlreadyClosed(lang), actions.Keyboard{c.backRow(lang)})
	}

	c.sessions.Set(in.UserID, WritingMessage{TopicID: view.TopicID, DialogTicketID: ticketID})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgContinueDialog(lang, ticketID), actions.Keyboard{c.cancelRow(lang)})
}

// endDialog lets the owner close their own ticket. Closing hands off into
// the rating flow.
func (c *Controller) endDialog(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang, ticketID uint) error {
	view, err := c.deps.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	if view.UserID != in.UserID {
		return c.replyError(ctx, in, lang, errors.NewNotFoundError("ticket not found"))
	}

	c.sessions.Clear(in.UserID)

	if view.Status == vo.StatusClosed.String() {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgDialogAlreadyClosed(lang), actions.Keyboard{c.backRow(lang)})
	}

	_, err = c.deps.ChangeStatus.Execute(ctx, ticketuc.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   vo.StatusClosed.String(),
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgDialogClosed(lang, ticketID)); err != nil {
		return err
	}
	return c.askForRating(ctx, in, lang, ticketID)
}

func (c *Controller) askForRating(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint) error {
	var stars []actions.Button
	for score := 1; score <= 5; score++ {
		stars = append(stars, actions.Button{
			Label:   i18n.StarRow(score),
			Payload: actions.Encode(actions.RateScore{TicketID: ticketID, Score: score}),
		})
	}
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgRateRequest(lang), actions.Keyboard{
		stars,
		c.backRow(lang),
	})
}

func (c *Controller) receiveRatingScore(ctx context.Context, in Incoming, lang i18n.Lang, ticketID uint, score int) error {
	c.sessions.Set(in.UserID, ReceivingRatingComment{TicketID: ticketID, Score: score})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgRateComment(lang), actions.Keyboard{
		actions.Row(actions.Button{Label: i18n.BtnSkip(lang), Payload: actions.Encode(actions.SkipRatingComment{})}),
	})
}

func (c *Controller) receiveRatingComment(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang, st ReceivingRatingComment) error {
	return c.saveRating(ctx, in, lang, st, sanitize(in.Text))
}

func (c *Controller) skipRatingComment(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang) error {
	st, ok := c.sessions.Get(in.UserID).(ReceivingRatingComment)
	if !ok {
		return c.renderMainMenu(ctx, in, u, lang)
	}
	return c.saveRating(ctx, in, lang, st, "")
}

func (c *Controller) saveRating(ctx context.Context, in Incoming, lang i18n.Lang, st ReceivingRatingComment, comment string) error {
	c.sessions.Clear(in.UserID)

	_, err := c.deps.AddRating.Execute(ctx, useruc.AddRatingCommand{
		UserID:   in.UserID,
		TicketID: st.TicketID,
		Score:    st.Score,
		Comment:  comment,
	})
	if err != nil {
		// A rating that cannot land (no admin activity, duplicate) should
		// not trap the user; thank them and move on.
		c.logger.Warnw("failed to save rating", "error", err, "ticket_id", st.TicketID, "user_id", in.UserID)
	}
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgRateThanks(lang), actions.Keyboard{c.backRow(lang)})
}
