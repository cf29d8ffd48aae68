package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type RevokeAdminCommand struct {
	UserID    int64
	RevokedBy int64
}

type RevokeAdminResult struct {
	UserID int64
}

// RevokeAdminUseCase demotes an admin. Removing the last remaining
// admin is refused so the panel can never become unreachable.
type RevokeAdminUseCase struct {
	adminRepo admin.AdminRepository
	logger    logger.Interface
}

func NewRevokeAdminUseCase(adminRepo admin.AdminRepository, logger logger.Interface) *RevokeAdminUseCase {
	return &RevokeAdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *RevokeAdminUseCase) Execute(ctx context.Context, cmd RevokeAdminCommand) (*RevokeAdminResult, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.RevokedBy)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewForbiddenError("only admins can revoke admin rights")
	}

	targetIsAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if !targetIsAdmin {
		return nil, errors.NewNotFoundError("user is not an admin")
	}

	count, err := uc.adminRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count <= 1 {
		return nil, errors.NewConflictError("cannot revoke the last admin")
	}

	if err := uc.adminRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete admin", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("admin revoked", "user_id", cmd.UserID, "revoked_by", cmd.RevokedBy)
	return &RevokeAdminResult{UserID: cmd.UserID}, nil
}
