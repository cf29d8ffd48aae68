package usecases

import (
	"context"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/logger"
)

type SyncProfilesResult struct {
	Scanned int
	Updated int
	Failed  int
}

// SyncProfilesUseCase is the scheduled sweep that refreshes stored
// usernames and display names against the transport. Users whose chat
// can no longer be read are skipped, not deleted.
type SyncProfilesUseCase struct {
	userRepo user.UserRepository
	profiles ProfileSource
	logger   logger.Interface
}

func NewSyncProfilesUseCase(
	userRepo user.UserRepository,
	profiles ProfileSource,
	logger logger.Interface,
) *SyncProfilesUseCase {
	return &SyncProfilesUseCase{
		userRepo: userRepo,
		profiles: profiles,
		logger:   logger,
	}
}

func (uc *SyncProfilesUseCase) Execute(ctx context.Context) (*SyncProfilesResult, error) {
	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users for profile sync", "error", err)
		return nil, err
	}

	result := &SyncProfilesResult{Scanned: len(users)}
	for _, u := range users {
		username, firstName, lastName, err := uc.profiles.GetChatProfile(ctx, u.ID())
		if err != nil {
			result.Failed++
			uc.logger.Debugw("profile unreadable, skipping", "user_id", u.ID(), "error", err)
			continue
		}
		if !u.SyncProfile(username, firstName, lastName) {
			continue
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			result.Failed++
			uc.logger.Warnw("failed to persist synced profile", "user_id", u.ID(), "error", err)
			continue
		}
		result.Updated++
	}

	uc.logger.Infow("profile sync finished",
		"scanned", result.Scanned, "updated", result.Updated, "failed", result.Failed)
	return result, nil
}
