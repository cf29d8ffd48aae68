package conversation

import "sync"

// State is the typed per-user conversation state. Exactly one variant
// is active at a time; absence from the store means idle. Keeping the
// variants as distinct types makes a dangling dialog id or a half-built
// compose flow unrepresentable.
type State interface {
	isState()
}

// SelectingTopic: the topic list is on screen.
type SelectingTopic struct{}

// ConfirmingAnonymity: topic picked, priority pre-computed (urgent
// quota already consumed when applicable).
type ConfirmingAnonymity struct {
	TopicID uint
}

// WritingMessage: the next text input creates a ticket. DialogTicketID
// non-zero means the input continues that ticket instead.
type WritingMessage struct {
	TopicID        uint
	Anonymous      bool
	DialogTicketID uint
}

// SearchingFAQ: the next text input is a search query.
type SearchingFAQ struct{}

// ReceivingRatingComment: score picked, optional comment pending.
type ReceivingRatingComment struct {
	TicketID uint
	Score    int
}

// AdminResponding: the next text input is an admin reply to TicketID.
type AdminResponding struct {
	TicketID uint
}

// AddingNote: the next text input is an internal note about the owner
// of TicketID.
type AddingNote struct {
	TicketID     uint
	TargetUserID int64
}

// Broadcasting: the next text input goes to every active user.
type Broadcasting struct{}

// AddingAdmin: the next text input is a numeric Telegram id to promote.
type AddingAdmin struct{}

// CreatingTopic: the next text input is a topic name, with optional
// "!" / "!!" prefix for quick-action / urgent.
type CreatingTopic struct{}

// AddingFAQ: the next text input is "question\nanswer".
type AddingFAQ struct{}

func (SelectingTopic) isState()         {}
func (ConfirmingAnonymity) isState()    {}
func (WritingMessage) isState()         {}
func (SearchingFAQ) isState()           {}
func (ReceivingRatingComment) isState() {}
func (AdminResponding) isState()        {}
func (AddingNote) isState()             {}
func (Broadcasting) isState()           {}
func (AddingAdmin) isState()            {}
func (CreatingTopic) isState()          {}
func (AddingFAQ) isState()              {}

// SessionStore holds conversation state per user. Process-memory only:
// a restart drops everyone back to the main menu, which the original
// bot also accepted.
type SessionStore struct {
	mu     sync.RWMutex
	states map[int64]State
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		states: make(map[int64]State),
	}
}

// Get returns the current state, or nil when the user is idle.
func (s *SessionStore) Get(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[userID]
}

func (s *SessionStore) Set(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

// Clear returns the user to idle and drops every session key, so no
// dangling dialog id can misroute the next unrelated message.
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
