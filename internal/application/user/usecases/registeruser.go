package usecases

import (
	"context"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/lang"
	"deskbot/internal/shared/logger"
)

type RegisterUserCommand struct {
	UserID       int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
}

type RegisterUserResult struct {
	User  *user.User
	IsNew bool
}

// RegisterUserUseCase runs on every inbound update. It creates the user
// row on first contact and keeps the stored profile in sync with what
// the transport reports afterwards.
type RegisterUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.UserRepository, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	if existing == nil || errors.IsNotFoundError(err) {
		language := string(lang.Detect(cmd.LanguageCode))
		newUser, err := user.NewUser(cmd.UserID, cmd.Username, cmd.FirstName, cmd.LastName, language)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(ctx, newUser); err != nil {
			uc.logger.Errorw("failed to save new user", "error", err, "user_id", cmd.UserID)
			return nil, err
		}
		uc.logger.Infow("registered new user", "user_id", cmd.UserID, "language", language)
		return &RegisterUserResult{User: newUser, IsNew: true}, nil
	}

	if existing.SyncProfile(cmd.Username, cmd.FirstName, cmd.LastName) {
		if err := uc.userRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to sync user profile", "error", err, "user_id", cmd.UserID)
			return nil, err
		}
		uc.logger.Debugw("synced user profile", "user_id", cmd.UserID)
	}

	return &RegisterUserResult{User: existing, IsNew: false}, nil
}
