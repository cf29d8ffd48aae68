package conversation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	ticketuc "deskbot/internal/application/ticket/usecases"
	topicuc "deskbot/internal/application/topic/usecases"
	"deskbot/internal/domain/user"
)

func utoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func (c *Controller) renderMainMenu(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang) error {
	kb := actions.Keyboard{
		actions.Row(actions.Button{Label: i18n.BtnNewTicket(lang), Payload: actions.Encode(actions.NewTicket{})}),
		actions.Row(
			actions.Button{Label: i18n.BtnMyTickets(lang), Payload: actions.Encode(actions.MyTickets{Page: 1})},
			actions.Button{Label: i18n.BtnFAQ(lang), Payload: actions.Encode(actions.FAQList{})},
		),
		actions.Row(actions.Button{Label: i18n.BtnProfile(lang), Payload: actions.Encode(actions.Profile{})}),
	}

	isAdmin, err := c.deps.Admins.IsAdmin(ctx, in.UserID)
	if err != nil {
		c.logger.Warnw("admin check failed while rendering menu", "error", err, "user_id", in.UserID)
	} else if isAdmin {
		kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnAdminPanel(lang), Payload: actions.Encode(actions.AdminPanel{})}))
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgMainMenu(lang, sanitize(u.FirstName())), kb)
}

func (c *Controller) backRow(lang i18n.Lang) []actions.Button {
	return actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.MainMenu{})})
}

func (c *Controller) cancelRow(lang i18n.Lang) []actions.Button {
	return actions.Row(actions.Button{Label: i18n.BtnCancel(lang), Payload: actions.Encode(actions.Cancel{})})
}

// paginationRow builds prev/next buttons around the current page. Pages are
// 1-based; an edge page simply drops the button pointing off the list.
func paginationRow(lang i18n.Lang, page, totalPages int, pageAction func(page int) actions.Action) []actions.Button {
	var row []actions.Button
	if page > 1 {
		row = append(row, actions.Button{Label: i18n.BtnPrevPage(lang), Payload: actions.Encode(pageAction(page - 1))})
	}
	if page < totalPages {
		row = append(row, actions.Button{Label: i18n.BtnNextPage(lang), Payload: actions.Encode(pageAction(page + 1))})
	}
	return row
}

// topicByID resolves a topic through the list use case. Topic catalogs are a
// handful of rows, so a lookup table per update is not worth a dedicated query.
func (c *Controller) topicByID(ctx context.Context, topicID uint) (*topicuc.TopicView, error) {
	result, err := c.deps.ListTopics.Execute(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result.Topics {
		if result.Topics[i].TopicID == topicID {
			return &result.Topics[i], nil
		}
	}
	return nil, nil
}

func (c *Controller) topicName(ctx context.Context, topicID uint) string {
	tp, err := c.topicByID(ctx, topicID)
	if err != nil || tp == nil {
		return "#" + utoa(topicID)
	}
	return tp.Name
}

func ticketLine(lang i18n.Lang, item ticketuc.TicketSummary) string {
	return fmt.Sprintf("%s #%s · %s", i18n.PriorityTag(item.Priority), utoa(item.TicketID), i18n.StatusLabel(lang, item.Status))
}

// renderTicketView formats the detail screen shared by the owner and admin
// sides. The admin side additionally sees notes and the author when the
// ticket is not anonymous.
func (c *Controller) renderTicketView(ctx context.Context, lang i18n.Lang, view *ticketuc.TicketView, adminSide bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s <b>#%s</b> · %s\n", i18n.PriorityTag(view.Priority), utoa(view.TicketID), i18n.StatusLabel(lang, view.Status))
	fmt.Fprintf(&b, "📂 %s\n\n", sanitize(c.topicName(ctx, view.TopicID)))
	b.WriteString(sanitize(view.Body))
	b.WriteString("\n")

	for _, r := range view.Replies {
		marker := "↩️"
		if r.AuthorID == view.UserID {
			marker = "💬"
		}
		fmt.Fprintf(&b, "\n%s %s", marker, sanitize(r.Text))
	}

	if len(view.Attachments) > 0 {
		fmt.Fprintf(&b, "\n\n📎 ×%d", len(view.Attachments))
	}

	if adminSide {
		for _, n := range view.OwnerNotes {
			fmt.Fprintf(&b, "\n📝 %s", sanitize(n.Text))
		}
	}

	return b.String()
}
