package conversation

import (
	"context"
	"fmt"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	faquc "deskbot/internal/application/faq/usecases"
)

func (c *Controller) showFAQList(ctx context.Context, in Incoming, lang i18n.Lang) error {
	entries, err := c.deps.ListFAQ.Execute(ctx)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if len(entries) == 0 {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgFAQEmpty(lang), actions.Keyboard{c.backRow(lang)})
	}

	kb := faqKeyboard(entries)
	kb = append(kb, actions.Row(actions.Button{Label: i18n.BtnFAQSearch(lang), Payload: actions.Encode(actions.FAQSearch{})}))
	kb = append(kb, c.backRow(lang))

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgFAQHeader(lang), kb)
}

func faqKeyboard(entries []faquc.EntryView) actions.Keyboard {
	var kb actions.Keyboard
	for _, e := range entries {
		kb = append(kb, actions.Row(actions.Button{
			Label:   truncate(e.Question, 48),
			Payload: actions.Encode(actions.FAQView{EntryID: e.EntryID}),
		}))
	}
	return kb
}

func (c *Controller) startFAQSearch(ctx context.Context, in Incoming, lang i18n.Lang) error {
	c.sessions.Set(in.UserID, SearchingFAQ{})
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgFAQSearchPrompt(lang), actions.Keyboard{c.cancelRow(lang)})
}

func (c *Controller) receiveFAQQuery(ctx context.Context, in Incoming, lang i18n.Lang) error {
	c.sessions.Clear(in.UserID)

	query := sanitize(in.Text)
	entries, err := c.deps.SearchFAQ.Execute(ctx, query)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	if len(entries) == 0 {
		return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgFAQNoResults(lang), actions.Keyboard{
			actions.Row(actions.Button{Label: i18n.BtnFAQSearch(lang), Payload: actions.Encode(actions.FAQSearch{})}),
			c.backRow(lang),
		})
	}

	kb := faqKeyboard(entries)
	kb = append(kb, c.backRow(lang))
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, i18n.MsgFAQHeader(lang), kb)
}

func (c *Controller) showFAQEntry(ctx context.Context, in Incoming, lang i18n.Lang, entryID uint) error {
	entry, err := c.deps.GetFAQEntry.Execute(ctx, entryID)
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	text := fmt.Sprintf("<b>%s</b>\n\n%s", sanitize(entry.Question), sanitize(entry.Answer))
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, text, actions.Keyboard{
		actions.Row(actions.Button{Label: i18n.BtnFAQ(lang), Payload: actions.Encode(actions.FAQList{})}),
		c.backRow(lang),
	})
}
