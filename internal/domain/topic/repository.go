package topic

import "context"

type TopicRepository interface {
	Save(ctx context.Context, topic *Topic) error
	Delete(ctx context.Context, topicID uint) error
	GetByID(ctx context.Context, topicID uint) (*Topic, error)
	GetByName(ctx context.Context, name string) (*Topic, error)
	ListAll(ctx context.Context) ([]*Topic, error)
	Count(ctx context.Context) (int64, error)
}
