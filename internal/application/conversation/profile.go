package conversation

import (
	"context"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	useruc "deskbot/internal/application/user/usecases"
	"deskbot/internal/domain/user"
)

func (c *Controller) showProfile(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang) error {
	profile, err := c.deps.GetProfile.Execute(ctx, useruc.GetProfileQuery{UserID: in.UserID})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}

	toggleLabel := i18n.BtnToggleBanOn(lang)
	if profile.Banned {
		toggleLabel = i18n.BtnToggleBanOff(lang)
	}

	kb := actions.Keyboard{
		actions.Row(actions.Button{Label: toggleLabel, Payload: actions.Encode(actions.ToggleBan{})}),
		actions.Row(actions.Button{Label: i18n.BtnLanguage(lang), Payload: actions.Encode(actions.SetLanguage{Lang: string(otherLang(lang))})}),
		c.backRow(lang),
	}

	text := i18n.MsgProfile(lang, sanitize(profile.DisplayName), profile.Banned, profile.UrgentRemaining, profile.UrgentMax)
	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, text, kb)
}

func otherLang(lang i18n.Lang) i18n.Lang {
	if lang == i18n.RU {
		return i18n.EN
	}
	return i18n.RU
}

// toggleBan flips the mute flag. Muted users keep full access to the bot;
// only broadcast fan-out skips them.
func (c *Controller) toggleBan(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang) error {
	_, err := c.deps.SetBanned.Execute(ctx, useruc.SetBannedCommand{
		UserID: in.UserID,
		Banned: !u.IsBanned(),
	})
	if err != nil {
		return c.replyError(ctx, in, lang, err)
	}
	return c.showProfile(ctx, in, u, lang)
}

func (c *Controller) setLanguage(ctx context.Context, in Incoming, u *user.User, langCode string) error {
	result, err := c.deps.SetLanguage.Execute(ctx, useruc.SetLanguageCommand{
		UserID:   in.UserID,
		Language: langCode,
	})
	if err != nil {
		return c.replyError(ctx, in, i18n.ParseLang(u.Language()), err)
	}
	return c.renderMainMenu(ctx, in, u, i18n.ParseLang(result.Language))
}
