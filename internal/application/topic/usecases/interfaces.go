package usecases

import "context"

type CreateTopicExecutor interface {
	Execute(ctx context.Context, cmd CreateTopicCommand) (*CreateTopicResult, error)
}

type DeleteTopicExecutor interface {
	Execute(ctx context.Context, cmd DeleteTopicCommand) (*DeleteTopicResult, error)
}

type ListTopicsExecutor interface {
	Execute(ctx context.Context) (*ListTopicsResult, error)
}

type SeedTopicsExecutor interface {
	Execute(ctx context.Context) error
}
