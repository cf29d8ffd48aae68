// Package conversation routes Telegram updates through a per-user
// finite-state machine: menu navigation and button presses via typed
// actions, free text via the current session state.
package conversation

import (
	"context"
	"strings"

	adminuc "deskbot/internal/application/admin/usecases"
	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	faquc "deskbot/internal/application/faq/usecases"
	"deskbot/internal/application/notification"
	ticketuc "deskbot/internal/application/ticket/usecases"
	topicuc "deskbot/internal/application/topic/usecases"
	useruc "deskbot/internal/application/user/usecases"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

// Incoming is one transport-neutral update. Callback is non-nil for
// button presses; Attachment for media messages.
type Incoming struct {
	UserID       int64
	ChatID       int64
	MessageID    int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
	Text         string
	Callback     *Callback
	Attachment   *Attachment
}

type Callback struct {
	ID   string
	Data string
}

type Attachment struct {
	FileID string
	Kind   string
}

// Responder renders controller output back to the chat. Implemented by
// the Telegram bot service.
type Responder interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard actions.Keyboard) error
	EditMessage(ctx context.Context, chatID, messageID int64, text string, keyboard actions.Keyboard) error
	AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error
}

// Notifier is the dispatcher surface the controller pushes through.
type Notifier interface {
	NotifyAdminsNewTicket(ctx context.Context, info notification.NewTicketInfo)
	NotifyAdminsUserReply(ctx context.Context, ticketID uint, text string)
	NotifyUserOfReply(ctx context.Context, ownerID int64, ticketID uint, text string) error
	NotifyTicketAssigned(ctx context.Context, adminID int64, ticketID uint, topicName string)
	NotifyTicketResolved(ctx context.Context, ownerID int64, ticketID uint)
	Broadcast(ctx context.Context, text string) (notification.BroadcastResult, error)
}

// UrgentQuotaService gates urgent topic picks.
type UrgentQuotaService interface {
	Consume(ctx context.Context, userID int64) error
	MaxPerDay() int
}

// AdminChecker answers the membership question the controller re-asks
// at every admin entry point.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Deps bundles everything the controller drives.
type Deps struct {
	RegisterUser useruc.RegisterUserExecutor
	GetProfile   useruc.GetProfileExecutor
	SetLanguage  useruc.SetLanguageExecutor
	SetBanned    useruc.SetBannedExecutor
	AddNote      useruc.AddNoteExecutor
	AddRating    useruc.AddRatingExecutor

	CreateTicket    ticketuc.CreateTicketExecutor
	AppendReply     ticketuc.AppendReplyExecutor
	ChangeStatus    ticketuc.ChangeStatusExecutor
	AssignTicket    ticketuc.AssignTicketExecutor
	GetTicket       ticketuc.GetTicketExecutor
	ListTickets     ticketuc.ListTicketsExecutor
	ListUserTickets ticketuc.ListUserTicketsExecutor
	AddAttachment   ticketuc.AddAttachmentExecutor

	GrantAdmin  adminuc.GrantAdminExecutor
	RevokeAdmin adminuc.RevokeAdminExecutor
	ListAdmins  adminuc.ListAdminsExecutor

	CreateTopic topicuc.CreateTopicExecutor
	DeleteTopic topicuc.DeleteTopicExecutor
	ListTopics  topicuc.ListTopicsExecutor

	AddFAQ      faquc.AddEntryExecutor
	RemoveFAQ   faquc.RemoveEntryExecutor
	ListFAQ     faquc.ListEntriesExecutor
	SearchFAQ   faquc.SearchEntriesExecutor
	GetFAQEntry faquc.GetEntryExecutor

	Quota    UrgentQuotaService
	Notifier Notifier
	Admins   AdminChecker

	PageSize       int
	AdminPageSize  int
	MaxAttachments int
}

type Controller struct {
	deps      Deps
	sessions  *SessionStore
	responder Responder
	logger    logger.Interface
}

func NewController(deps Deps, responder Responder, log logger.Interface) *Controller {
	if deps.PageSize < 1 {
		deps.PageSize = 10
	}
	if deps.AdminPageSize < 1 {
		deps.AdminPageSize = deps.PageSize
	}
	if deps.MaxAttachments < 1 {
		deps.MaxAttachments = 5
	}
	return &Controller{
		deps:      deps,
		sessions:  NewSessionStore(),
		responder: responder,
		logger:    log,
	}
}

// Handle processes one update end to end. Errors returned here are for
// transport-level logging only; user-visible failures have already been
// rendered as messages by the time it returns.
func (c *Controller) Handle(ctx context.Context, in Incoming) error {
	if in.UserID == 0 {
		return nil
	}
	if in.ChatID == 0 {
		in.ChatID = in.UserID
	}

	reg, err := c.deps.RegisterUser.Execute(ctx, useruc.RegisterUserCommand{
		UserID:       in.UserID,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		LanguageCode: in.LanguageCode,
	})
	if err != nil {
		c.logger.Errorw("failed to register user on inbound update", "error", err, "user_id", in.UserID)
		return c.responder.SendMessage(ctx, in.ChatID, i18n.MsgInternalError(i18n.EN))
	}

	lang := i18n.ParseLang(reg.User.Language())

	if in.Callback != nil {
		return c.handleCallback(ctx, in, reg.User, lang)
	}
	return c.handleText(ctx, in, reg.User, lang)
}

func (c *Controller) handleCallback(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang) error {
	// Ack first so the client stops the spinner even if handling fails.
	if err := c.responder.AnswerCallback(ctx, in.Callback.ID, "", false); err != nil {
		c.logger.Debugw("failed to answer callback", "error", err, "user_id", in.UserID)
	}

	action, err := actions.Decode(in.Callback.Data)
	if err != nil {
		c.logger.Warnw("undecodable callback payload", "payload", in.Callback.Data, "user_id", in.UserID)
		return c.renderMainMenu(ctx, in, u, lang)
	}

	switch a := action.(type) {
	case actions.Cancel, actions.MainMenu:
		c.sessions.Clear(in.UserID)
		return c.renderMainMenu(ctx, in, u, lang)
	case actions.Profile:
		return c.showProfile(ctx, in, u, lang)
	case actions.ToggleBan:
		return c.toggleBan(ctx, in, u, lang)
	case actions.SetLanguage:
		return c.setLanguage(ctx, in, u, a.Lang)
	case actions.NewTicket:
		return c.startCompose(ctx, in, lang)
	case actions.PickTopic:
		return c.pickTopic(ctx, in, lang, a.TopicID)
	case actions.ChooseAnonymity:
		return c.chooseAnonymity(ctx, in, lang, a.Anonymous)
	case actions.MyTickets:
		return c.showMyTickets(ctx, in, lang, a.Page)
	case actions.ViewTicket:
		return c.showOwnTicket(ctx, in, lang, a.TicketID)
	case actions.ContinueDialog:
		return c.continueDialog(ctx, in, lang, a.TicketID)
	case actions.EndDialog:
		return c.endDialog(ctx, in, u, lang, a.TicketID)
	case actions.RateScore:
		return c.receiveRatingScore(ctx, in, lang, a.TicketID, a.Score)
	case actions.SkipRatingComment:
		return c.skipRatingComment(ctx, in, u, lang)
	case actions.FAQList:
		return c.showFAQList(ctx, in, lang)
	case actions.FAQSearch:
		return c.startFAQSearch(ctx, in, lang)
	case actions.FAQView:
		return c.showFAQEntry(ctx, in, lang, a.EntryID)
	default:
		return c.handleAdminAction(ctx, in, u, lang, action)
	}
}

// handleAdminAction re-checks admin membership before dispatching: a
// stale admin panel on a demoted admin's screen must not keep working.
func (c *Controller) handleAdminAction(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang, action actions.Action) error {
	isAdmin, err := c.deps.Admins.IsAdmin(ctx, in.UserID)
	if err != nil {
		c.logger.Errorw("admin membership check failed", "error", err, "user_id", in.UserID)
		return c.responder.SendMessage(ctx, in.ChatID, i18n.MsgInternalError(lang))
	}
	if !isAdmin {
		c.sessions.Clear(in.UserID)
		if err := c.responder.SendMessage(ctx, in.ChatID, i18n.MsgUnauthorized(lang)); err != nil {
			return err
		}
		return c.renderMainMenu(ctx, in, u, lang)
	}

	switch a := action.(type) {
	case actions.AdminPanel:
		return c.showAdminPanel(ctx, in, lang)
	case actions.AdminDialogs:
		return c.showAdminDialogs(ctx, in, lang, a.Page)
	case actions.AdminViewTicket:
		return c.showAdminTicket(ctx, in, lang, a.TicketID)
	case actions.AdminReply:
		return c.startAdminReply(ctx, in, lang, a.TicketID)
	case actions.AdminResolve:
		return c.adminSetStatus(ctx, in, lang, a.TicketID, "resolved")
	case actions.AdminClose:
		return c.adminSetStatus(ctx, in, lang, a.TicketID, "closed")
	case actions.AdminReassign:
		return c.startReassign(ctx, in, lang, a.TicketID)
	case actions.AdminReassignTo:
		return c.reassignTo(ctx, in, lang, a.TicketID, a.AdminID)
	case actions.AdminAddNote:
		return c.startAddNote(ctx, in, lang, a.TicketID)
	case actions.AdminBroadcast:
		return c.startBroadcast(ctx, in, lang)
	case actions.AdminManageAdmins:
		return c.showAdminList(ctx, in, lang)
	case actions.AdminAddAdmin:
		return c.startAddAdmin(ctx, in, lang)
	case actions.AdminRemoveAdmin:
		return c.removeAdmin(ctx, in, lang, a.UserID)
	case actions.AdminManageTopics:
		return c.showTopicManagement(ctx, in, lang)
	case actions.AdminAddTopic:
		return c.startAddTopic(ctx, in, lang)
	case actions.AdminRemoveTopic:
		return c.removeTopic(ctx, in, lang, a.TopicID)
	case actions.AdminManageFAQ:
		return c.showFAQManagement(ctx, in, lang)
	case actions.AdminAddFAQ:
		return c.startAddFAQ(ctx, in, lang)
	case actions.AdminRemoveFAQ:
		return c.removeFAQ(ctx, in, lang, a.EntryID)
	default:
		c.logger.Warnw("unhandled action", "user_id", in.UserID)
		return c.renderMainMenu(ctx, in, u, lang)
	}
}

// handleText classifies free text against the session state before
// deciding what it means. A text with no active state renders the menu.
func (c *Controller) handleText(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang) error {
	if cmd := strings.TrimSpace(in.Text); strings.HasPrefix(cmd, "/") {
		return c.handleCommand(ctx, in, u, lang, cmd)
	}

	switch st := c.sessions.Get(in.UserID).(type) {
	case WritingMessage:
		return c.receiveComposeText(ctx, in, u, lang, st)
	case SearchingFAQ:
		return c.receiveFAQQuery(ctx, in, lang)
	case ReceivingRatingComment:
		return c.receiveRatingComment(ctx, in, u, lang, st)
	case AdminResponding:
		return c.receiveAdminReply(ctx, in, lang, st)
	case AddingNote:
		return c.receiveNoteText(ctx, in, lang, st)
	case Broadcasting:
		return c.receiveBroadcastText(ctx, in, lang)
	case AddingAdmin:
		return c.receiveAdminID(ctx, in, lang)
	case CreatingTopic:
		return c.receiveTopicName(ctx, in, lang)
	case AddingFAQ:
		return c.receiveFAQEntry(ctx, in, lang)
	default:
		// SelectingTopic and ConfirmingAnonymity advance via buttons
		// only; stray text just re-renders the menu.
		return c.renderMainMenu(ctx, in, u, lang)
	}
}

func (c *Controller) handleCommand(ctx context.Context, in Incoming, u *user.User, lang i18n.Lang, cmd string) error {
	c.sessions.Clear(in.UserID)
	switch cmd {
	case "/admin":
		isAdmin, err := c.deps.Admins.IsAdmin(ctx, in.UserID)
		if err != nil {
			return c.responder.SendMessage(ctx, in.ChatID, i18n.MsgInternalError(lang))
		}
		if !isAdmin {
			return c.renderMainMenu(ctx, in, u, lang)
		}
		return c.showAdminPanel(ctx, in, lang)
	default: // /start, /help and anything else
		return c.renderMainMenu(ctx, in, u, lang)
	}
}

// replyError renders a usecase failure as a navigable message instead
// of leaving the user stuck in a silent state.
func (c *Controller) replyError(ctx context.Context, in Incoming, lang i18n.Lang, err error) error {
	c.sessions.Clear(in.UserID)

	var text string
	switch {
	case errors.IsNotFoundError(err):
		text = i18n.MsgNotFound(lang)
	case errors.IsValidationError(err):
		text = i18n.MsgInvalidInput(lang)
	case errors.IsForbiddenError(err) || errors.IsUnauthorizedError(err):
		text = i18n.MsgUnauthorized(lang)
	default:
		c.logger.Errorw("operation failed", "error", err, "user_id", in.UserID)
		text = i18n.MsgInternalError(lang)
	}

	return c.responder.SendMessageWithKeyboard(ctx, in.ChatID, text, actions.Keyboard{
		actions.Row(actions.Button{Label: i18n.BtnBack(lang), Payload: actions.Encode(actions.MainMenu{})}),
	})
}
