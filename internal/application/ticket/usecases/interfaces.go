package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type AppendReplyExecutor interface {
	Execute(ctx context.Context, cmd AppendReplyCommand) (*AppendReplyResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketView, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListUserTicketsExecutor interface {
	Execute(ctx context.Context, query ListUserTicketsQuery) (*ListTicketsResult, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}
