package admin

import "context"

type AdminRepository interface {
	Save(ctx context.Context, admin *Admin) error
	Delete(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*Admin, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	ListAll(ctx context.Context) ([]*Admin, error)
	Count(ctx context.Context) (int64, error)
}
