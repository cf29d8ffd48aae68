package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProfileSource exposes the live chat profile of a user as known to the
// transport. The scheduler's profile sweep polls it.
type ProfileSource interface {
	GetChatProfile(ctx context.Context, userID int64) (username, firstName, lastName string, err error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type SyncProfilesExecutor interface {
	Execute(ctx context.Context) (*SyncProfilesResult, error)
}

type SetLanguageExecutor interface {
	Execute(ctx context.Context, cmd SetLanguageCommand) (*SetLanguageResult, error)
}

type SetBannedExecutor interface {
	Execute(ctx context.Context, cmd SetBannedCommand) (*SetBannedResult, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error)
}

type AddRatingExecutor interface {
	Execute(ctx context.Context, cmd AddRatingCommand) (*AddRatingResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*ProfileView, error)
}
