package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/biztime"
	"deskbot/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID int64
}

type ProfileView struct {
	UserID          int64
	DisplayName     string
	Username        string
	Language        string
	Banned          bool
	UrgentUsed      int
	UrgentMax       int
	UrgentRemaining int
	RegisteredAt    time.Time
}

type GetProfileUseCase struct {
	userRepo  user.UserRepository
	urgentMax int
	logger    logger.Interface
}

func NewGetProfileUseCase(userRepo user.UserRepository, urgentMax int, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:  userRepo,
		urgentMax: urgentMax,
		logger:    logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileView, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	used, err := uc.userRepo.UrgentQuotaUsed(ctx, query.UserID, biztime.Today())
	if err != nil {
		return nil, err
	}

	remaining := uc.urgentMax - used
	if remaining < 0 {
		remaining = 0
	}

	return &ProfileView{
		UserID:          u.ID(),
		DisplayName:     u.DisplayName(),
		Username:        u.Username(),
		Language:        u.Language(),
		Banned:          u.IsBanned(),
		UrgentUsed:      used,
		UrgentMax:       uc.urgentMax,
		UrgentRemaining: remaining,
		RegisteredAt:    u.RegisteredAt(),
	}, nil
}
