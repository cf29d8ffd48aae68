package i18n

import "fmt"

// Messages pushed by the notification dispatcher rather than rendered
// in reply to an update.

const newTicketBodyPreview = 300

// PriorityTag renders the emoji marker shown before a ticket in lists
// and admin notifications.
func PriorityTag(priority string) string {
	switch priority {
	case "urgent":
		return "🔴"
	case "high":
		return "🟠"
	case "normal":
		return "🟢"
	default:
		return "⚪️"
	}
}

// StatusLabel is the human form of a ticket status.
func StatusLabel(lang Lang, status string) string {
	if lang == RU {
		switch status {
		case "new":
			return "новое"
		case "in_progress":
			return "в работе"
		case "resolved":
			return "решено"
		case "closed":
			return "закрыто"
		}
		return status
	}
	switch status {
	case "new":
		return "new"
	case "in_progress":
		return "in progress"
	case "resolved":
		return "resolved"
	case "closed":
		return "closed"
	}
	return status
}

// MsgNewTicketAdmin is the fan-out summary sent to every admin when a
// ticket is created. For anonymous tickets the identity line is omitted
// entirely, not replaced with a placeholder name.
func MsgNewTicketAdmin(lang Lang, ticketID uint, priority, topic, body, authorLine string) string {
	if len([]rune(body)) > newTicketBodyPreview {
		body = string([]rune(body)[:newTicketBodyPreview]) + "…"
	}
	if lang == RU {
		msg := fmt.Sprintf("%s <b>Новое обращение #%d</b>\nТема: %s\n", PriorityTag(priority), ticketID, topic)
		if authorLine != "" {
			msg += fmt.Sprintf("От: %s\n", authorLine)
		}
		return msg + "\n" + body
	}
	msg := fmt.Sprintf("%s <b>New ticket #%d</b>\nTopic: %s\n", PriorityTag(priority), ticketID, topic)
	if authorLine != "" {
		msg += fmt.Sprintf("From: %s\n", authorLine)
	}
	return msg + "\n" + body
}

// MsgReplyNotification is pushed to the ticket owner when an admin replies.
func MsgReplyNotification(lang Lang, ticketID uint, text string) string {
	if lang == RU {
		return fmt.Sprintf("💬 <b>Ответ по обращению #%d</b>\n\n%s", ticketID, text)
	}
	return fmt.Sprintf("💬 <b>Reply on ticket #%d</b>\n\n%s", ticketID, text)
}

// MsgUserReplyAdmin is fanned out to admins when the ticket owner writes
// into an open dialog.
func MsgUserReplyAdmin(lang Lang, ticketID uint, text string) string {
	if lang == RU {
		return fmt.Sprintf("💬 <b>Новое сообщение в обращении #%d</b>\n\n%s", ticketID, text)
	}
	return fmt.Sprintf("💬 <b>New message on ticket #%d</b>\n\n%s", ticketID, text)
}

// MsgTicketAssigned is pushed to an admin when a ticket lands on them.
func MsgTicketAssigned(lang Lang, ticketID uint, topic string) string {
	if lang == RU {
		return fmt.Sprintf("🔀 Вам передано обращение <b>#%d</b> (тема: %s).", ticketID, topic)
	}
	return fmt.Sprintf("🔀 Ticket <b>#%d</b> has been assigned to you (topic: %s).", ticketID, topic)
}

// MsgTicketResolvedUser is pushed to the owner when their ticket is resolved.
func MsgTicketResolvedUser(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("✅ Ваше обращение <b>#%d</b> отмечено как решённое.\n\n"+
			"Если вопрос остался, просто напишите в диалог.", ticketID)
	}
	return fmt.Sprintf("✅ Your ticket <b>#%d</b> has been marked as resolved.\n\n"+
		"If the issue persists, just write in the dialog.", ticketID)
}
