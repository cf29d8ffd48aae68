package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type GrantAdminCommand struct {
	UserID    int64
	GrantedBy int64
}

type GrantAdminResult struct {
	UserID    int64
	GrantedAt time.Time
}

// GrantAdminUseCase promotes a user. The grantor must already be an
// admin and the target must have talked to the bot at least once, so a
// user row exists to notify.
type GrantAdminUseCase struct {
	adminRepo admin.AdminRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewGrantAdminUseCase(
	adminRepo admin.AdminRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GrantAdminUseCase {
	return &GrantAdminUseCase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *GrantAdminUseCase) Execute(ctx context.Context, cmd GrantAdminCommand) (*GrantAdminResult, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.GrantedBy)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewForbiddenError("only admins can grant admin rights")
	}

	alreadyAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if alreadyAdmin {
		return nil, errors.NewConflictError("user is already an admin")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user has never contacted the bot")
		}
		return nil, err
	}

	a, err := admin.NewAdmin(cmd.UserID, cmd.GrantedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.adminRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save admin", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("admin granted", "user_id", cmd.UserID, "granted_by", cmd.GrantedBy)
	return &GrantAdminResult{UserID: a.UserID(), GrantedAt: a.GrantedAt()}, nil
}
