package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

// EnsureBootstrapAdminUseCase runs at startup with the configured owner
// id. It creates a self-granted admin row, and a minimal user row when
// the owner has never messaged the bot, so the panel is reachable from
// the first launch.
type EnsureBootstrapAdminUseCase struct {
	adminRepo admin.AdminRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewEnsureBootstrapAdminUseCase(
	adminRepo admin.AdminRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *EnsureBootstrapAdminUseCase {
	return &EnsureBootstrapAdminUseCase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *EnsureBootstrapAdminUseCase) Execute(ctx context.Context, userID int64) error {
	if userID == 0 {
		return errors.NewValidationError("bootstrap admin id is required")
	}

	isAdmin, err := uc.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if !errors.IsNotFoundError(err) {
			return err
		}
		placeholder, err := user.NewUser(userID, "", "", "", "en")
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(ctx, placeholder); err != nil {
			return err
		}
		uc.logger.Infow("created placeholder user row for bootstrap admin", "user_id", userID)
	}

	a, err := admin.NewAdmin(userID, userID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.adminRepo.Save(ctx, a); err != nil {
		return err
	}

	uc.logger.Infow("bootstrap admin ensured", "user_id", userID)
	return nil
}
