package admin

import (
	"fmt"
	"time"
)

// Admin grants a user the admin capability. GrantedBy records which admin
// issued the grant; the bootstrap admin is self-granted.
type Admin struct {
	userID    int64
	grantedBy int64
	grantedAt time.Time
}

func NewAdmin(userID, grantedBy int64) (*Admin, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if grantedBy == 0 {
		return nil, fmt.Errorf("granted-by ID is required")
	}

	return &Admin{
		userID:    userID,
		grantedBy: grantedBy,
		grantedAt: time.Now(),
	}, nil
}

func ReconstructAdmin(userID, grantedBy int64, grantedAt time.Time) (*Admin, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Admin{
		userID:    userID,
		grantedBy: grantedBy,
		grantedAt: grantedAt,
	}, nil
}

func (a *Admin) UserID() int64 {
	return a.userID
}

func (a *Admin) GrantedBy() int64 {
	return a.grantedBy
}

func (a *Admin) GrantedAt() time.Time {
	return a.grantedAt
}

func (a *Admin) IsSelfGranted() bool {
	return a.userID == a.grantedBy
}
