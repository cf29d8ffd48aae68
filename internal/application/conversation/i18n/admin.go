package i18n

import "fmt"

// Admin panel messages. Admin UI is English-only in the original flow,
// but every message still takes a Lang so an admin chatting in Russian
// gets a consistent interface.

func MsgAdminPanel(lang Lang, openCount int) string {
	if lang == RU {
		return fmt.Sprintf("🛠 <b>Панель администратора</b>\n\nОткрытых обращений: <b>%d</b>", openCount)
	}
	return fmt.Sprintf("🛠 <b>Admin panel</b>\n\nOpen tickets: <b>%d</b>", openCount)
}

func BtnAdminDialogs(lang Lang) string {
	if lang == RU {
		return "📥 Обращения"
	}
	return "📥 Tickets"
}

func BtnAdminBroadcast(lang Lang) string {
	if lang == RU {
		return "📣 Рассылка"
	}
	return "📣 Broadcast"
}

func BtnAdminManageAdmins(lang Lang) string {
	if lang == RU {
		return "👮 Администраторы"
	}
	return "👮 Admins"
}

func BtnAdminManageTopics(lang Lang) string {
	if lang == RU {
		return "🏷 Темы"
	}
	return "🏷 Topics"
}

func BtnAdminManageFAQ(lang Lang) string {
	if lang == RU {
		return "❓ FAQ"
	}
	return "❓ FAQ"
}

// Ticket list and card

func MsgAdminDialogsHeader(lang Lang, page, totalPages int, total int64) string {
	if lang == RU {
		return fmt.Sprintf("📥 <b>Обращения</b> (стр. %d из %d, всего %d)", page, totalPages, total)
	}
	return fmt.Sprintf("📥 <b>Tickets</b> (page %d of %d, %d total)", page, totalPages, total)
}

func MsgAdminNoDialogs(lang Lang) string {
	if lang == RU {
		return "Открытых обращений нет. 🎉"
	}
	return "No open tickets. 🎉"
}

func BtnAdminReply(lang Lang) string {
	if lang == RU {
		return "💬 Ответить"
	}
	return "💬 Reply"
}

func BtnAdminResolve(lang Lang) string {
	if lang == RU {
		return "✅ Решено"
	}
	return "✅ Resolve"
}

func BtnAdminClose(lang Lang) string {
	if lang == RU {
		return "🔒 Закрыть"
	}
	return "🔒 Close"
}

func BtnAdminReassign(lang Lang) string {
	if lang == RU {
		return "🔀 Передать"
	}
	return "🔀 Reassign"
}

func BtnAdminAddNote(lang Lang) string {
	if lang == RU {
		return "📝 Заметка"
	}
	return "📝 Note"
}

func MsgAdminReplyPrompt(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("💬 Ответ на обращение <b>#%d</b>.\n\nНапишите текст ответа:", ticketID)
	}
	return fmt.Sprintf("💬 Replying to ticket <b>#%d</b>.\n\nWrite the reply text:", ticketID)
}

func MsgAdminReplySent(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("✅ Ответ на обращение <b>#%d</b> отправлен.", ticketID)
	}
	return fmt.Sprintf("✅ Reply to ticket <b>#%d</b> sent.", ticketID)
}

func MsgAdminReplyNotDelivered(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("⚠️ Ответ на обращение <b>#%d</b> сохранён, но не доставлен пользователю.", ticketID)
	}
	return fmt.Sprintf("⚠️ Reply to ticket <b>#%d</b> was saved but could not be delivered to the user.", ticketID)
}

func MsgAdminStatusChanged(lang Lang, ticketID uint, status string) string {
	if lang == RU {
		return fmt.Sprintf("✅ Статус обращения <b>#%d</b>: <b>%s</b>.", ticketID, status)
	}
	return fmt.Sprintf("✅ Ticket <b>#%d</b> status: <b>%s</b>.", ticketID, status)
}

func MsgAdminReassignPrompt(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("🔀 Кому передать обращение <b>#%d</b>?", ticketID)
	}
	return fmt.Sprintf("🔀 Reassign ticket <b>#%d</b> to whom?", ticketID)
}

func MsgAdminReassigned(lang Lang, ticketID uint, assignee string) string {
	if lang == RU {
		return fmt.Sprintf("✅ Обращение <b>#%d</b> передано %s.", ticketID, assignee)
	}
	return fmt.Sprintf("✅ Ticket <b>#%d</b> reassigned to %s.", ticketID, assignee)
}

func MsgAdminNotePrompt(lang Lang) string {
	if lang == RU {
		return "📝 Напишите текст заметки о пользователе:"
	}
	return "📝 Write the note about the user:"
}

func MsgAdminNoteSaved(lang Lang) string {
	if lang == RU {
		return "✅ Заметка сохранена."
	}
	return "✅ Note saved."
}

// Broadcast

func MsgBroadcastPrompt(lang Lang) string {
	if lang == RU {
		return "📣 Напишите текст рассылки. Он будет отправлен всем активным пользователям."
	}
	return "📣 Write the broadcast text. It will be sent to every active user."
}

func MsgBroadcastReport(lang Lang, sent, failed int) string {
	if lang == RU {
		return fmt.Sprintf("📣 Рассылка завершена.\n\nДоставлено: <b>%d</b>\nОшибок: <b>%d</b>", sent, failed)
	}
	return fmt.Sprintf("📣 Broadcast finished.\n\nDelivered: <b>%d</b>\nFailed: <b>%d</b>", sent, failed)
}

// Admin management

func MsgAdminListHeader(lang Lang, count int) string {
	if lang == RU {
		return fmt.Sprintf("👮 <b>Администраторы</b> (%d)", count)
	}
	return fmt.Sprintf("👮 <b>Admins</b> (%d)", count)
}

func BtnAdminAddAdmin(lang Lang) string {
	if lang == RU {
		return "➕ Добавить"
	}
	return "➕ Add"
}

func MsgAddAdminPrompt(lang Lang) string {
	if lang == RU {
		return "➕ Отправьте числовой Telegram ID нового администратора:"
	}
	return "➕ Send the numeric Telegram ID of the new admin:"
}

func MsgAdminGranted(lang Lang, userID int64) string {
	if lang == RU {
		return fmt.Sprintf("✅ Пользователь <code>%d</code> теперь администратор.", userID)
	}
	return fmt.Sprintf("✅ User <code>%d</code> is now an admin.", userID)
}

func MsgAdminRevoked(lang Lang, userID int64) string {
	if lang == RU {
		return fmt.Sprintf("✅ Пользователь <code>%d</code> больше не администратор.", userID)
	}
	return fmt.Sprintf("✅ User <code>%d</code> is no longer an admin.", userID)
}

func MsgLastAdmin(lang Lang) string {
	if lang == RU {
		return "⛔️ Нельзя удалить последнего администратора."
	}
	return "⛔️ Cannot remove the last admin."
}

// Topic management

func MsgTopicListHeader(lang Lang, count int) string {
	if lang == RU {
		return fmt.Sprintf("🏷 <b>Темы</b> (%d)", count)
	}
	return fmt.Sprintf("🏷 <b>Topics</b> (%d)", count)
}

func BtnAdminAddTopic(lang Lang) string {
	if lang == RU {
		return "➕ Новая тема"
	}
	return "➕ New topic"
}

func MsgAddTopicPrompt(lang Lang) string {
	if lang == RU {
		return "➕ Отправьте название новой темы.\n\n" +
			"Добавьте <code>!</code> в начале для быстрой темы, <code>!!</code> для срочной."
	}
	return "➕ Send the name of the new topic.\n\n" +
		"Prefix with <code>!</code> for a quick-action topic, <code>!!</code> for an urgent one."
}

func MsgTopicCreated(lang Lang, name string) string {
	if lang == RU {
		return fmt.Sprintf("✅ Тема <b>%s</b> создана.", name)
	}
	return fmt.Sprintf("✅ Topic <b>%s</b> created.", name)
}

func MsgTopicRemoved(lang Lang, name string) string {
	if lang == RU {
		return fmt.Sprintf("✅ Тема <b>%s</b> удалена.", name)
	}
	return fmt.Sprintf("✅ Topic <b>%s</b> removed.", name)
}

func MsgTopicInUse(lang Lang, name string) string {
	if lang == RU {
		return fmt.Sprintf("⛔️ Тема <b>%s</b> используется в обращениях и не может быть удалена.", name)
	}
	return fmt.Sprintf("⛔️ Topic <b>%s</b> is referenced by tickets and cannot be removed.", name)
}

// FAQ management

func MsgFAQManageHeader(lang Lang, count int) string {
	if lang == RU {
		return fmt.Sprintf("❓ <b>FAQ</b> (%d записей)", count)
	}
	return fmt.Sprintf("❓ <b>FAQ</b> (%d entries)", count)
}

func BtnAdminAddFAQ(lang Lang) string {
	if lang == RU {
		return "➕ Новая запись"
	}
	return "➕ New entry"
}

func MsgAddFAQPrompt(lang Lang) string {
	if lang == RU {
		return "➕ Отправьте вопрос и ответ с новой строки:\n\n<code>Вопрос\nОтвет</code>"
	}
	return "➕ Send the question and the answer on separate lines:\n\n<code>Question\nAnswer</code>"
}

func MsgFAQCreated(lang Lang) string {
	if lang == RU {
		return "✅ Запись FAQ создана."
	}
	return "✅ FAQ entry created."
}

func MsgFAQRemoved(lang Lang) string {
	if lang == RU {
		return "✅ Запись FAQ удалена."
	}
	return "✅ FAQ entry removed."
}
