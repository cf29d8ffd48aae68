package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID int64) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
	ListNotBanned(ctx context.Context) ([]*User, error)
	ListAll(ctx context.Context) ([]*User, error)

	// ConsumeUrgentQuota atomically resets the counter when the stored date
	// differs from today, checks it against max, and increments. Returns a
	// quota error when the cap is reached and a not-found error for an
	// unknown user (fail closed).
	ConsumeUrgentQuota(ctx context.Context, userID int64, max int, today string) error

	// UrgentQuotaUsed reports the counter as of today without mutating it.
	UrgentQuotaUsed(ctx context.Context, userID int64, today string) (int, error)
}

type NoteRepository interface {
	Save(ctx context.Context, note *Note) error
	GetByUserID(ctx context.Context, userID int64) ([]*Note, error)
}

type RatingRepository interface {
	Save(ctx context.Context, rating *Rating) error
	GetByAdminID(ctx context.Context, adminID int64) ([]*Rating, error)
}
