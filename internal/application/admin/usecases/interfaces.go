package usecases

import "context"

type GrantAdminExecutor interface {
	Execute(ctx context.Context, cmd GrantAdminCommand) (*GrantAdminResult, error)
}

type RevokeAdminExecutor interface {
	Execute(ctx context.Context, cmd RevokeAdminCommand) (*RevokeAdminResult, error)
}

type ListAdminsExecutor interface {
	Execute(ctx context.Context) (*ListAdminsResult, error)
}

type EnsureBootstrapAdminExecutor interface {
	Execute(ctx context.Context, userID int64) error
}
