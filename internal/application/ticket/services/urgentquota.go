// Package services holds ticket-adjacent application services that are not
// single-shot usecases.
package services

import (
	"context"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/biztime"
	"deskbot/internal/shared/logger"
)

// UrgentQuota guards the per-user daily cap on urgent tickets. Consume is a
// single atomic reset-check-increment on the user row, so it is called only
// once per ticket that is actually being created.
type UrgentQuota struct {
	userRepo  user.UserRepository
	maxPerDay int
	logger    logger.Interface
}

func NewUrgentQuota(userRepo user.UserRepository, maxPerDay int, logger logger.Interface) *UrgentQuota {
	return &UrgentQuota{
		userRepo:  userRepo,
		maxPerDay: maxPerDay,
		logger:    logger,
	}
}

// Consume spends one unit of today's quota. It returns a quota error when the
// cap is reached and a not-found error for unknown users (fail closed). Either
// way nothing is consumed on failure, so retry is side-effect-free.
func (q *UrgentQuota) Consume(ctx context.Context, userID int64) error {
	today := biztime.Today()
	if err := q.userRepo.ConsumeUrgentQuota(ctx, userID, q.maxPerDay, today); err != nil {
		q.logger.Warnw("urgent quota consume rejected", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// Remaining reports how many urgent tickets the user may still open today
// without consuming anything. Display only; Consume is the gate.
func (q *UrgentQuota) Remaining(ctx context.Context, userID int64) (int, error) {
	used, err := q.userRepo.UrgentQuotaUsed(ctx, userID, biztime.Today())
	if err != nil {
		return 0, err
	}
	remaining := q.maxPerDay - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// MaxPerDay exposes the configured cap for rendering.
func (q *UrgentQuota) MaxPerDay() int {
	return q.maxPerDay
}
