package usecases

import (
	"context"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type SetLanguageCommand struct {
	UserID   int64
	Language string
}

type SetLanguageResult struct {
	UserID   int64
	Language string
}

// SetLanguageUseCase stores an explicit language choice, overriding whatever
// was detected from the Telegram client locale.
type SetLanguageUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewSetLanguageUseCase(userRepo user.UserRepository, logger logger.Interface) *SetLanguageUseCase {
	return &SetLanguageUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetLanguageUseCase) Execute(ctx context.Context, cmd SetLanguageCommand) (*SetLanguageResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if u.Language() != cmd.Language {
		if err := u.SetLanguage(cmd.Language); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to persist language change", "error", err, "user_id", cmd.UserID)
			return nil, err
		}
	}

	return &SetLanguageResult{UserID: u.ID(), Language: u.Language()}, nil
}
