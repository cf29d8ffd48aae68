package i18n

import (
	"fmt"
	"strconv"
)

// Main menu and navigation

func MsgMainMenu(lang Lang, firstName string) string {
	if lang == RU {
		if firstName == "" {
			return "👋 <b>Служба поддержки</b>\n\nВыберите действие:"
		}
		return fmt.Sprintf("👋 Здравствуйте, <b>%s</b>!\n\nВыберите действие:", firstName)
	}
	if firstName == "" {
		return "👋 <b>Support Desk</b>\n\nChoose an action:"
	}
	return fmt.Sprintf("👋 Hello, <b>%s</b>!\n\nChoose an action:", firstName)
}

func BtnNewTicket(lang Lang) string {
	if lang == RU {
		return "✉️ Новое обращение"
	}
	return "✉️ New ticket"
}

func BtnMyTickets(lang Lang) string {
	if lang == RU {
		return "📋 Мои обращения"
	}
	return "📋 My tickets"
}

func BtnFAQ(lang Lang) string {
	if lang == RU {
		return "❓ Частые вопросы"
	}
	return "❓ FAQ"
}

func BtnProfile(lang Lang) string {
	if lang == RU {
		return "👤 Профиль"
	}
	return "👤 Profile"
}

func BtnAdminPanel(lang Lang) string {
	if lang == RU {
		return "🛠 Панель администратора"
	}
	return "🛠 Admin panel"
}

func BtnCancel(lang Lang) string {
	if lang == RU {
		return "✖️ Отмена"
	}
	return "✖️ Cancel"
}

func BtnBack(lang Lang) string {
	if lang == RU {
		return "⬅️ Назад"
	}
	return "⬅️ Back"
}

func BtnPrevPage(lang Lang) string {
	if lang == RU {
		return "⬅️ Пред."
	}
	return "⬅️ Prev"
}

func BtnNextPage(lang Lang) string {
	if lang == RU {
		return "След. ➡️"
	}
	return "Next ➡️"
}

func MsgCancelled(lang Lang) string {
	if lang == RU {
		return "Действие отменено."
	}
	return "Action cancelled."
}

// Compose flow

func MsgSelectTopic(lang Lang) string {
	if lang == RU {
		return "📝 <b>Новое обращение</b>\n\nВыберите тему:"
	}
	return "📝 <b>New ticket</b>\n\nSelect a topic:"
}

func MsgConfirmAnonymity(lang Lang) string {
	if lang == RU {
		return "Отправить обращение анонимно?"
	}
	return "Send this ticket anonymously?"
}

func BtnAnonymous(lang Lang) string {
	if lang == RU {
		return "🕶 Анонимно"
	}
	return "🕶 Anonymously"
}

func BtnWithName(lang Lang) string {
	if lang == RU {
		return "👤 От моего имени"
	}
	return "👤 With my name"
}

func MsgWriteMessage(lang Lang) string {
	if lang == RU {
		return "✍️ Напишите ваше сообщение.\n\nМожно приложить файл или фото."
	}
	return "✍️ Write your message.\n\nYou may attach a file or a photo."
}

func MsgTicketCreated(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("✅ Обращение <b>#%d</b> создано.\n\n"+
			"Мы ответим вам здесь. Пишите ещё, чтобы дополнить обращение.", ticketID)
	}
	return fmt.Sprintf("✅ Ticket <b>#%d</b> created.\n\n"+
		"We will reply to you here. Keep writing to add to the ticket.", ticketID)
}

func MsgQuotaExceeded(lang Lang, max int) string {
	if lang == RU {
		return fmt.Sprintf("⚠️ Лимит срочных обращений на сегодня исчерпан (%d в день).\n\n"+
			"Выберите другую тему или вернитесь завтра.", max)
	}
	return fmt.Sprintf("⚠️ You have reached today's urgent ticket limit (%d per day).\n\n"+
		"Pick another topic or come back tomorrow.", max)
}

func MsgAttachmentLimit(lang Lang, max int) string {
	if lang == RU {
		return fmt.Sprintf("⚠️ К обращению можно приложить не более %d файлов.", max)
	}
	return fmt.Sprintf("⚠️ A ticket can carry at most %d attachments.", max)
}

// Dialogs

func MsgMyTicketsHeader(lang Lang, page, totalPages int) string {
	if lang == RU {
		return fmt.Sprintf("📋 <b>Мои обращения</b> (стр. %d из %d)", page, totalPages)
	}
	return fmt.Sprintf("📋 <b>My tickets</b> (page %d of %d)", page, totalPages)
}

func MsgNoTickets(lang Lang) string {
	if lang == RU {
		return "У вас пока нет обращений."
	}
	return "You have no tickets yet."
}

func BtnContinueDialog(lang Lang) string {
	if lang == RU {
		return "💬 Продолжить диалог"
	}
	return "💬 Continue dialog"
}

func BtnEndDialog(lang Lang) string {
	if lang == RU {
		return "🔒 Завершить диалог"
	}
	return "🔒 End dialog"
}

func MsgContinueDialog(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("💬 Диалог по обращению <b>#%d</b>.\n\nНапишите сообщение:", ticketID)
	}
	return fmt.Sprintf("💬 Dialog on ticket <b>#%d</b>.\n\nWrite your message:", ticketID)
}

func MsgDialogClosed(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("🔒 Обращение <b>#%d</b> закрыто. Спасибо!", ticketID)
	}
	return fmt.Sprintf("🔒 Ticket <b>#%d</b> is closed. Thank you!", ticketID)
}

func MsgDialogAlreadyClosed(lang Lang) string {
	if lang == RU {
		return "⚠️ Это обращение уже закрыто. Создайте новое."
	}
	return "⚠️ This ticket is already closed. Open a new one."
}

func MsgReplyAppended(lang Lang, ticketID uint) string {
	if lang == RU {
		return fmt.Sprintf("✅ Сообщение добавлено к обращению <b>#%d</b>.", ticketID)
	}
	return fmt.Sprintf("✅ Message added to ticket <b>#%d</b>.", ticketID)
}

// Rating

func MsgRateRequest(lang Lang) string {
	if lang == RU {
		return "⭐️ Оцените, пожалуйста, качество ответа:"
	}
	return "⭐️ Please rate the quality of the response:"
}

func MsgRateComment(lang Lang) string {
	if lang == RU {
		return "Спасибо! Можете оставить комментарий или пропустить."
	}
	return "Thank you! You may leave a comment or skip."
}

func BtnSkip(lang Lang) string {
	if lang == RU {
		return "Пропустить"
	}
	return "Skip"
}

func MsgRateThanks(lang Lang) string {
	if lang == RU {
		return "🙏 Спасибо за оценку!"
	}
	return "🙏 Thank you for your feedback!"
}

// FAQ

func MsgFAQHeader(lang Lang) string {
	if lang == RU {
		return "❓ <b>Частые вопросы</b>\n\nВыберите вопрос или воспользуйтесь поиском:"
	}
	return "❓ <b>FAQ</b>\n\nPick a question or use search:"
}

func BtnFAQSearch(lang Lang) string {
	if lang == RU {
		return "🔍 Поиск"
	}
	return "🔍 Search"
}

func MsgFAQSearchPrompt(lang Lang) string {
	if lang == RU {
		return "🔍 Введите слово или фразу для поиска:"
	}
	return "🔍 Type a word or phrase to search for:"
}

func MsgFAQNoResults(lang Lang) string {
	if lang == RU {
		return "Ничего не найдено. Попробуйте другой запрос."
	}
	return "Nothing found. Try a different query."
}

func MsgFAQEmpty(lang Lang) string {
	if lang == RU {
		return "Раздел пока пуст."
	}
	return "This section is empty for now."
}

// Profile

func MsgProfile(lang Lang, displayName string, banned bool, urgentRemaining, urgentMax int) string {
	status := "active"
	if banned {
		status = "notifications off"
	}
	if lang == RU {
		status = "активен"
		if banned {
			status = "уведомления отключены"
		}
		return fmt.Sprintf("👤 <b>%s</b>\n\nСтатус: %s\nСрочные обращения сегодня: осталось %d из %d",
			displayName, status, urgentRemaining, urgentMax)
	}
	return fmt.Sprintf("👤 <b>%s</b>\n\nStatus: %s\nUrgent tickets today: %d of %d left",
		displayName, status, urgentRemaining, urgentMax)
}

func BtnToggleBanOn(lang Lang) string {
	if lang == RU {
		return "🔕 Отключить уведомления"
	}
	return "🔕 Mute notifications"
}

func BtnToggleBanOff(lang Lang) string {
	if lang == RU {
		return "🔔 Включить уведомления"
	}
	return "🔔 Unmute notifications"
}

func BtnLanguage(lang Lang) string {
	if lang == RU {
		return "🌐 Language: English"
	}
	return "🌐 Язык: Русский"
}

// Errors

func MsgNotFound(lang Lang) string {
	if lang == RU {
		return "⚠️ Запись не найдена. Возможно, она была удалена."
	}
	return "⚠️ Record not found. It may have been removed."
}

func MsgUnauthorized(lang Lang) string {
	if lang == RU {
		return "⛔️ Это действие недоступно."
	}
	return "⛔️ This action is not available."
}

func MsgInvalidInput(lang Lang) string {
	if lang == RU {
		return "⚠️ Некорректный ввод. Попробуйте ещё раз."
	}
	return "⚠️ Invalid input. Please try again."
}

func MsgInternalError(lang Lang) string {
	if lang == RU {
		return "😔 Что-то пошло не так. Попробуйте позже."
	}
	return "😔 Something went wrong. Please try again later."
}

// StarRow renders a score as stars for rating buttons.
func StarRow(score int) string {
	s := ""
	for i := 0; i < score; i++ {
		s += "⭐️"
	}
	if s == "" {
		s = strconv.Itoa(score)
	}
	return s
}
