package usecases

import (
	"context"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type SetBannedCommand struct {
	UserID int64
	Banned bool
}

type SetBannedResult struct {
	UserID int64
	Banned bool
}

// SetBannedUseCase toggles the user's mute flag. Muted users are
// excluded from broadcasts and proactive notifications but can still
// open and continue tickets.
type SetBannedUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewSetBannedUseCase(userRepo user.UserRepository, logger logger.Interface) *SetBannedUseCase {
	return &SetBannedUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetBannedUseCase) Execute(ctx context.Context, cmd SetBannedCommand) (*SetBannedResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if u.IsBanned() != cmd.Banned {
		u.SetBanned(cmd.Banned)
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to update ban flag", "error", err, "user_id", cmd.UserID)
			return nil, err
		}
	}

	uc.logger.Infow("ban flag set", "user_id", cmd.UserID, "banned", cmd.Banned)
	return &SetBannedResult{UserID: u.ID(), Banned: u.IsBanned()}, nil
}
