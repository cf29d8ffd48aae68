// Package notification pushes messages that are not direct replies to
// an incoming update: admin fan-out on new tickets, reply delivery to
// ticket owners, assignment notices and broadcasts.
package notification

import (
	"context"
	"strconv"
	"sync"
	"time"

	"deskbot/internal/application/conversation/actions"
	"deskbot/internal/application/conversation/i18n"
	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/goroutine"
	"deskbot/internal/shared/logger"
)

// MessageSender delivers rendered text to a chat. Implemented by the
// Telegram bot service; tests substitute a func-field mock.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard actions.Keyboard) error
}

const defaultSendTimeout = 10 * time.Second

// Dispatcher fans messages out to admins and users. Delivery failures
// are logged and counted but never abort the surrounding operation.
type Dispatcher struct {
	sender           MessageSender
	userRepo         user.UserRepository
	adminRepo        admin.AdminRepository
	broadcastWorkers int
	sendTimeout      time.Duration
	logger           logger.Interface
}

func NewDispatcher(
	sender MessageSender,
	userRepo user.UserRepository,
	adminRepo admin.AdminRepository,
	broadcastWorkers int,
	log logger.Interface,
) *Dispatcher {
	if broadcastWorkers < 1 {
		broadcastWorkers = 1
	}
	return &Dispatcher{
		sender:           sender,
		userRepo:         userRepo,
		adminRepo:        adminRepo,
		broadcastWorkers: broadcastWorkers,
		sendTimeout:      defaultSendTimeout,
		logger:           log,
	}
}

// SetSendTimeout overrides the per-message delivery timeout.
func (d *Dispatcher) SetSendTimeout(timeout time.Duration) {
	if timeout > 0 {
		d.sendTimeout = timeout
	}
}

// NewTicketInfo carries everything the admin summary needs. AuthorLine
// is empty for anonymous tickets.
type NewTicketInfo struct {
	TicketID   uint
	Priority   string
	TopicName  string
	Body       string
	AuthorLine string
}

// NotifyAdminsNewTicket sends the new-ticket summary to every admin.
// A failed delivery to one admin does not stop delivery to the others.
func (d *Dispatcher) NotifyAdminsNewTicket(ctx context.Context, info NewTicketInfo) {
	admins, err := d.adminRepo.ListAll(ctx)
	if err != nil {
		d.logger.Errorw("failed to list admins for new ticket fan-out", "error", err, "ticket_id", info.TicketID)
		return
	}

	kb := actions.Keyboard{actions.Row(actions.Button{
		Label:   "🔎 #" + strconv.FormatUint(uint64(info.TicketID), 10),
		Payload: actions.Encode(actions.AdminViewTicket{TicketID: info.TicketID}),
	})}

	for _, a := range admins {
		lang := d.langOf(ctx, a.UserID())
		text := i18n.MsgNewTicketAdmin(lang, info.TicketID, info.Priority, info.TopicName, info.Body, info.AuthorLine)
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		if err := d.sender.SendMessageWithKeyboard(sendCtx, a.UserID(), text, kb); err != nil {
			d.logger.Warnw("failed to notify admin of new ticket",
				"admin_id", a.UserID(), "ticket_id", info.TicketID, "error", err)
		}
		cancel()
	}
}

// NotifyAdminsUserReply fans a dialog continuation from the ticket owner
// out to every admin.
func (d *Dispatcher) NotifyAdminsUserReply(ctx context.Context, ticketID uint, text string) {
	admins, err := d.adminRepo.ListAll(ctx)
	if err != nil {
		d.logger.Errorw("failed to list admins for reply fan-out", "error", err, "ticket_id", ticketID)
		return
	}

	kb := actions.Keyboard{actions.Row(actions.Button{
		Label:   "🔎 #" + strconv.FormatUint(uint64(ticketID), 10),
		Payload: actions.Encode(actions.AdminViewTicket{TicketID: ticketID}),
	})}

	for _, a := range admins {
		lang := d.langOf(ctx, a.UserID())
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		if err := d.sender.SendMessageWithKeyboard(sendCtx, a.UserID(), i18n.MsgUserReplyAdmin(lang, ticketID, text), kb); err != nil {
			d.logger.Warnw("failed to notify admin of user reply",
				"admin_id", a.UserID(), "ticket_id", ticketID, "error", err)
		}
		cancel()
	}
}

// NotifyUserOfReply delivers an admin reply to the ticket owner together
// with the continue/end dialog keyboard. The returned error tells the
// caller delivery failed so the acting admin can be warned; the reply
// itself is already persisted at this point.
func (d *Dispatcher) NotifyUserOfReply(ctx context.Context, ownerID int64, ticketID uint, text string) error {
	lang := d.langOf(ctx, ownerID)
	kb := actions.Keyboard{
		actions.Row(
			actions.Button{Label: i18n.BtnContinueDialog(lang), Payload: actions.Encode(actions.ContinueDialog{TicketID: ticketID})},
			actions.Button{Label: i18n.BtnEndDialog(lang), Payload: actions.Encode(actions.EndDialog{TicketID: ticketID})},
		),
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	if err := d.sender.SendMessageWithKeyboard(sendCtx, ownerID, i18n.MsgReplyNotification(lang, ticketID, text), kb); err != nil {
		d.logger.Warnw("failed to deliver reply to user", "user_id", ownerID, "ticket_id", ticketID, "error", err)
		return err
	}
	return nil
}

// NotifyTicketAssigned tells an admin a ticket has landed on them.
func (d *Dispatcher) NotifyTicketAssigned(ctx context.Context, adminID int64, ticketID uint, topicName string) {
	lang := d.langOf(ctx, adminID)
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	if err := d.sender.SendMessage(sendCtx, adminID, i18n.MsgTicketAssigned(lang, ticketID, topicName)); err != nil {
		d.logger.Warnw("failed to notify admin of assignment",
			"admin_id", adminID, "ticket_id", ticketID, "error", err)
	}
}

// NotifyTicketResolved tells the owner their ticket was resolved.
func (d *Dispatcher) NotifyTicketResolved(ctx context.Context, ownerID int64, ticketID uint) {
	lang := d.langOf(ctx, ownerID)
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	if err := d.sender.SendMessage(sendCtx, ownerID, i18n.MsgTicketResolvedUser(lang, ticketID)); err != nil {
		d.logger.Warnw("failed to notify user of resolution",
			"user_id", ownerID, "ticket_id", ticketID, "error", err)
	}
}

// BroadcastResult tallies a finished broadcast.
type BroadcastResult struct {
	Sent   int
	Failed int
}

// Broadcast sends text to every user who has not muted the bot, using a
// bounded worker pool. It blocks until all sends finish.
func (d *Dispatcher) Broadcast(ctx context.Context, text string) (BroadcastResult, error) {
	users, err := d.userRepo.ListNotBanned(ctx)
	if err != nil {
		return BroadcastResult{}, err
	}

	var (
		mu     sync.Mutex
		result BroadcastResult
		wg     sync.WaitGroup
	)
	jobs := make(chan *user.User)

	for i := 0; i < d.broadcastWorkers; i++ {
		wg.Add(1)
		goroutine.SafeGo(d.logger, "broadcast-worker", func() {
			defer wg.Done()
			for u := range jobs {
				sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
				err := d.sender.SendMessage(sendCtx, u.ID(), text)
				cancel()

				mu.Lock()
				if err != nil {
					result.Failed++
				} else {
					result.Sent++
				}
				mu.Unlock()

				if err != nil {
					d.logger.Warnw("broadcast delivery failed", "user_id", u.ID(), "error", err)
				}
			}
		})
	}

	for _, u := range users {
		jobs <- u
	}
	close(jobs)
	wg.Wait()

	d.logger.Infow("broadcast finished", "sent", result.Sent, "failed", result.Failed, "total", len(users))
	return result, nil
}

// langOf resolves a chat's preferred language, defaulting to English
// when the user row is missing or unreadable.
func (d *Dispatcher) langOf(ctx context.Context, userID int64) i18n.Lang {
	u, err := d.userRepo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return i18n.EN
	}
	return i18n.ParseLang(u.Language())
}
