package user

import (
	"fmt"
	"strings"
	"time"
)

// User is keyed by the Telegram user ID, which is the natural primary key for
// everything in this system.
type User struct {
	id             int64
	username       string
	firstName      string
	lastName       string
	isBanned       bool
	language       string
	urgentToday    int
	lastUrgentDate string
	registeredAt   time.Time
	updatedAt      time.Time
}

func NewUser(id int64, username, firstName, lastName, language string) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(language) == 0 {
		return nil, fmt.Errorf("language is required")
	}

	now := time.Now()
	return &User{
		id:           id,
		username:     username,
		firstName:    firstName,
		lastName:     lastName,
		language:     language,
		registeredAt: now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id int64,
	username, firstName, lastName string,
	isBanned bool,
	language string,
	urgentToday int,
	lastUrgentDate string,
	registeredAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &User{
		id:             id,
		username:       username,
		firstName:      firstName,
		lastName:       lastName,
		isBanned:       isBanned,
		language:       language,
		urgentToday:    urgentToday,
		lastUrgentDate: lastUrgentDate,
		registeredAt:   registeredAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) IsBanned() bool {
	return u.isBanned
}

func (u *User) Language() string {
	return u.language
}

func (u *User) UrgentToday() int {
	return u.urgentToday
}

func (u *User) LastUrgentDate() string {
	return u.lastUrgentDate
}

func (u *User) RegisteredAt() time.Time {
	return u.registeredAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// DisplayName prefers the human name, falls back to @username, then raw ID.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.firstName + " " + u.lastName)
	if len(name) > 0 {
		return name
	}
	if len(u.username) > 0 {
		return "@" + u.username
	}
	return fmt.Sprintf("%d", u.id)
}

// SyncProfile updates display metadata from the transport. It reports whether
// anything actually changed so callers can skip redundant writes.
func (u *User) SyncProfile(username, firstName, lastName string) bool {
	if u.username == username && u.firstName == firstName && u.lastName == lastName {
		return false
	}
	u.username = username
	u.firstName = firstName
	u.lastName = lastName
	u.updatedAt = time.Now()
	return true
}

func (u *User) SetBanned(banned bool) {
	if u.isBanned == banned {
		return
	}
	u.isBanned = banned
	u.updatedAt = time.Now()
}

func (u *User) SetLanguage(language string) error {
	if len(language) == 0 {
		return fmt.Errorf("language is required")
	}
	u.language = language
	u.updatedAt = time.Now()
	return nil
}
