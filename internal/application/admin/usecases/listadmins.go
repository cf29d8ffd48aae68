package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/logger"
)

type AdminView struct {
	UserID      int64
	DisplayName string
	GrantedBy   int64
	GrantedAt   time.Time
}

type ListAdminsResult struct {
	Admins []AdminView
}

type ListAdminsUseCase struct {
	adminRepo admin.AdminRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewListAdminsUseCase(
	adminRepo admin.AdminRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListAdminsUseCase {
	return &ListAdminsUseCase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListAdminsUseCase) Execute(ctx context.Context) (*ListAdminsResult, error) {
	admins, err := uc.adminRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AdminView, 0, len(admins))
	for _, a := range admins {
		view := AdminView{
			UserID:    a.UserID(),
			GrantedBy: a.GrantedBy(),
			GrantedAt: a.GrantedAt(),
		}
		// Display name is best effort; an admin row can predate any
		// profile data if the user never wrote to the bot as a user.
		if u, err := uc.userRepo.GetByID(ctx, a.UserID()); err == nil && u != nil {
			view.DisplayName = u.DisplayName()
		}
		views = append(views, view)
	}

	return &ListAdminsResult{Admins: views}, nil
}
