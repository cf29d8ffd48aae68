// Package actions defines the button-press vocabulary: every inline-keyboard
// payload is encoded from and decoded into a typed Action. The controller
// switches exhaustively on the decoded type instead of matching string
// prefixes, so similarly named payloads cannot collide.
package actions

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is the decoded form of a callback payload.
type Action interface {
	isAction()
}

// Button is one labeled action on an inline keyboard.
type Button struct {
	Label   string
	Payload string
}

// Keyboard is rows of buttons, the transport-neutral render shape.
type Keyboard [][]Button

func Row(buttons ...Button) []Button {
	return buttons
}

// --- navigation ---

type Cancel struct{}
type MainMenu struct{}
type Profile struct{}
type ToggleBan struct{}
type SetLanguage struct{ Lang string }

// --- compose flow ---

type NewTicket struct{}
type PickTopic struct{ TopicID uint }
type ChooseAnonymity struct{ Anonymous bool }

// --- user dialogs ---

type MyTickets struct{ Page int }
type ViewTicket struct{ TicketID uint }
type ContinueDialog struct{ TicketID uint }
type EndDialog struct{ TicketID uint }
type RateScore struct {
	TicketID uint
	Score    int
}
type SkipRatingComment struct{}

// --- faq ---

type FAQList struct{}
type FAQSearch struct{}
type FAQView struct{ EntryID uint }

// --- admin panel ---

type AdminPanel struct{}
type AdminDialogs struct{ Page int }
type AdminViewTicket struct{ TicketID uint }
type AdminReply struct{ TicketID uint }
type AdminResolve struct{ TicketID uint }
type AdminClose struct{ TicketID uint }
type AdminReassign struct{ TicketID uint }
type AdminReassignTo struct {
	TicketID uint
	AdminID  int64
}
type AdminAddNote struct{ TicketID uint }
type AdminBroadcast struct{}
type AdminManageAdmins struct{}
type AdminAddAdmin struct{}
type AdminRemoveAdmin struct{ UserID int64 }
type AdminManageTopics struct{}
type AdminAddTopic struct{}
type AdminRemoveTopic struct{ TopicID uint }
type AdminManageFAQ struct{}
type AdminAddFAQ struct{}
type AdminRemoveFAQ struct{ EntryID uint }

func (Cancel) isAction()            {}
func (MainMenu) isAction()          {}
func (Profile) isAction()           {}
func (ToggleBan) isAction()         {}
func (SetLanguage) isAction()       {}
func (NewTicket) isAction()         {}
func (PickTopic) isAction()         {}
func (ChooseAnonymity) isAction()   {}
func (MyTickets) isAction()         {}
func (ViewTicket) isAction()        {}
func (ContinueDialog) isAction()    {}
func (EndDialog) isAction()         {}
func (RateScore) isAction()         {}
func (SkipRatingComment) isAction() {}
func (FAQList) isAction()           {}
func (FAQSearch) isAction()         {}
func (FAQView) isAction()           {}
func (AdminPanel) isAction()        {}
func (AdminDialogs) isAction()      {}
func (AdminViewTicket) isAction()   {}
func (AdminReply) isAction()        {}
func (AdminResolve) isAction()      {}
func (AdminClose) isAction()        {}
func (AdminReassign) isAction()     {}
func (AdminReassignTo) isAction()   {}
func (AdminAddNote) isAction()      {}
func (AdminBroadcast) isAction()    {}
func (AdminManageAdmins) isAction() {}
func (AdminAddAdmin) isAction()     {}
func (AdminRemoveAdmin) isAction()  {}
func (AdminManageTopics) isAction() {}
func (AdminAddTopic) isAction()     {}
func (AdminRemoveTopic) isAction()  {}
func (AdminManageFAQ) isAction()    {}
func (AdminAddFAQ) isAction()       {}
func (AdminRemoveFAQ) isAction()    {}

// Payload kinds. The wire form is "kind" or "kind:arg[:arg]".
const (
	kindCancel            = "cancel"
	kindMainMenu          = "menu"
	kindProfile           = "profile"
	kindToggleBan         = "toggle_ban"
	kindSetLanguage       = "lang"
	kindNewTicket         = "new_ticket"
	kindPickTopic         = "topic"
	kindAnonYes           = "anon_yes"
	kindAnonNo            = "anon_no"
	kindMyTickets         = "my_tickets"
	kindViewTicket        = "view"
	kindContinueDialog    = "continue"
	kindEndDialog         = "end"
	kindRateScore         = "rate"
	kindSkipRatingComment = "rate_skip"
	kindFAQList           = "faq"
	kindFAQSearch         = "faq_search"
	kindFAQView           = "faq_view"
	kindAdminPanel        = "adm"
	kindAdminDialogs      = "adm_page"
	kindAdminViewTicket   = "adm_view"
	kindAdminReply        = "adm_reply"
	kindAdminResolve      = "adm_resolve"
	kindAdminClose        = "adm_close"
	kindAdminReassign     = "adm_reassign"
	kindAdminReassignTo   = "adm_reassign_to"
	kindAdminAddNote      = "adm_note"
	kindAdminBroadcast    = "adm_broadcast"
	kindAdminManageAdmins = "adm_admins"
	kindAdminAddAdmin     = "adm_admin_add"
	kindAdminRemoveAdmin  = "adm_admin_rm"
	kindAdminManageTopics = "adm_topics"
	kindAdminAddTopic     = "adm_topic_add"
	kindAdminRemoveTopic  = "adm_topic_rm"
	kindAdminManageFAQ    = "adm_faq"
	kindAdminAddFAQ       = "adm_faq_add"
	kindAdminRemoveFAQ    = "adm_faq_rm"
)

// Encode produces the callback payload for an action.
func Encode(a Action) string {
	switch v := a.(type) {
	case Cancel:
		return kindCancel
	case MainMenu:
		return kindMainMenu
	case Profile:
		return kindProfile
	case ToggleBan:
		return kindToggleBan
	case SetLanguage:
		return join(kindSetLanguage, v.Lang)
	case NewTicket:
		return kindNewTicket
	case PickTopic:
		return join(kindPickTopic, utoa(v.TopicID))
	case ChooseAnonymity:
		if v.Anonymous {
			return kindAnonYes
		}
		return kindAnonNo
	case MyTickets:
		return join(kindMyTickets, itoa(v.Page))
	case ViewTicket:
		return join(kindViewTicket, utoa(v.TicketID))
	case ContinueDialog:
		return join(kindContinueDialog, utoa(v.TicketID))
	case EndDialog:
		return join(kindEndDialog, utoa(v.TicketID))
	case RateScore:
		return join(kindRateScore, utoa(v.TicketID), itoa(v.Score))
	case SkipRatingComment:
		return kindSkipRatingComment
	case FAQList:
		return kindFAQList
	case FAQSearch:
		return kindFAQSearch
	case FAQView:
		return join(kindFAQView, utoa(v.EntryID))
	case AdminPanel:
		return kindAdminPanel
	case AdminDialogs:
		return join(kindAdminDialogs, itoa(v.Page))
	case AdminViewTicket:
		return join(kindAdminViewTicket, utoa(v.TicketID))
	case AdminReply:
		return join(kindAdminReply, utoa(v.TicketID))
	case AdminResolve:
		return join(kindAdminResolve, utoa(v.TicketID))
	case AdminClose:
		return join(kindAdminClose, utoa(v.TicketID))
	case AdminReassign:
		return join(kindAdminReassign, utoa(v.TicketID))
	case AdminReassignTo:
		return join(kindAdminReassignTo, utoa(v.TicketID), i64toa(v.AdminID))
	case AdminAddNote:
		return join(kindAdminAddNote, utoa(v.TicketID))
	case AdminBroadcast:
		return kindAdminBroadcast
	case AdminManageAdmins:
		return kindAdminManageAdmins
	case AdminAddAdmin:
		return kindAdminAddAdmin
	case AdminRemoveAdmin:
		return join(kindAdminRemoveAdmin, i64toa(v.UserID))
	case AdminManageTopics:
		return kindAdminManageTopics
	case AdminAddTopic:
		return kindAdminAddTopic
	case AdminRemoveTopic:
		return join(kindAdminRemoveTopic, utoa(v.TopicID))
	case AdminManageFAQ:
		return kindAdminManageFAQ
	case AdminAddFAQ:
		return kindAdminAddFAQ
	case AdminRemoveFAQ:
		return join(kindAdminRemoveFAQ, utoa(v.EntryID))
	default:
		return kindMainMenu
	}
}

// Decode parses a callback payload. Unknown or malformed payloads return an
// error; replayed stale payloads decode fine and fail later at authorization
// or lookup.
func Decode(payload string) (Action, error) {
	parts := strings.Split(payload, ":")
	kind, args := parts[0], parts[1:]

	switch kind {
	case kindCancel:
		return Cancel{}, nil
	case kindMainMenu:
		return MainMenu{}, nil
	case kindProfile:
		return Profile{}, nil
	case kindToggleBan:
		return ToggleBan{}, nil
	case kindSetLanguage:
		if len(args) != 1 || args[0] == "" {
			return nil, fmt.Errorf("malformed payload: %s", payload)
		}
		return SetLanguage{Lang: args[0]}, nil
	case kindNewTicket:
		return NewTicket{}, nil
	case kindPickTopic:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return PickTopic{TopicID: id}, nil
	case kindAnonYes:
		return ChooseAnonymity{Anonymous: true}, nil
	case kindAnonNo:
		return ChooseAnonymity{Anonymous: false}, nil
	case kindMyTickets:
		page, err := oneInt(args, payload)
		if err != nil {
			return nil, err
		}
		return MyTickets{Page: page}, nil
	case kindViewTicket:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return ViewTicket{TicketID: id}, nil
	case kindContinueDialog:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return ContinueDialog{TicketID: id}, nil
	case kindEndDialog:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return EndDialog{TicketID: id}, nil
	case kindRateScore:
		if len(args) != 2 {
			return nil, fmt.Errorf("malformed payload: %s", payload)
		}
		id, err := parseUint(args[0], payload)
		if err != nil {
			return nil, err
		}
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("malformed payload: %s", payload)
		}
		return RateScore{TicketID: id, Score: score}, nil
	case kindSkipRatingComment:
		return SkipRatingComment{}, nil
	case kindFAQList:
		return FAQList{}, nil
	case kindFAQSearch:
		return FAQSearch{}, nil
	case kindFAQView:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return FAQView{EntryID: id}, nil
	case kindAdminPanel:
		return AdminPanel{}, nil
	case kindAdminDialogs:
		page, err := oneInt(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminDialogs{Page: page}, nil
	case kindAdminViewTicket:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminViewTicket{TicketID: id}, nil
	case kindAdminReply:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminReply{TicketID: id}, nil
	case kindAdminResolve:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminResolve{TicketID: id}, nil
	case kindAdminClose:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminClose{TicketID: id}, nil
	case kindAdminReassign:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminReassign{TicketID: id}, nil
	case kindAdminReassignTo:
		if len(args) != 2 {
			return nil, fmt.Errorf("malformed payload: %s", payload)
		}
		id, err := parseUint(args[0], payload)
		if err != nil {
			return nil, err
		}
		adminID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed payload: %s", payload)
		}
		return AdminReassignTo{TicketID: id, AdminID: adminID}, nil
	case kindAdminAddNote:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminAddNote{TicketID: id}, nil
	case kindAdminBroadcast:
		return AdminBroadcast{}, nil
	case kindAdminManageAdmins:
		return AdminManageAdmins{}, nil
	case kindAdminAddAdmin:
		return AdminAddAdmin{}, nil
	case kindAdminRemoveAdmin:
		userID, err := oneInt64(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminRemoveAdmin{UserID: userID}, nil
	case kindAdminManageTopics:
		return AdminManageTopics{}, nil
	case kindAdminAddTopic:
		return AdminAddTopic{}, nil
	case kindAdminRemoveTopic:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminRemoveTopic{TopicID: id}, nil
	case kindAdminManageFAQ:
		return AdminManageFAQ{}, nil
	case kindAdminAddFAQ:
		return AdminAddFAQ{}, nil
	case kindAdminRemoveFAQ:
		id, err := oneUint(args, payload)
		if err != nil {
			return nil, err
		}
		return AdminRemoveFAQ{EntryID: id}, nil
	default:
		return nil, fmt.Errorf("unknown payload: %s", payload)
	}
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}

func utoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func i64toa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func parseUint(s, payload string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed payload: %s", payload)
	}
	return uint(v), nil
}

func oneUint(args []string, payload string) (uint, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("malformed payload: %s", payload)
	}
	return parseUint(args[0], payload)
}

func oneInt(args []string, payload string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("malformed payload: %s", payload)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("malformed payload: %s", payload)
	}
	return v, nil
}

func oneInt64(args []string, payload string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("malformed payload: %s", payload)
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed payload: %s", payload)
	}
	return v, nil
}
