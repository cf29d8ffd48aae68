package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const updateOffsetKey = "deskbot:telegram:update_offset"

// PollingOffsetStore keeps the last confirmed Telegram update ID in Redis so
// a restarted bot resumes polling where the previous process stopped instead
// of replaying the whole backlog.
type PollingOffsetStore struct {
	client *redis.Client
}

// NewPollingOffsetStore creates a new PollingOffsetStore instance.
func NewPollingOffsetStore(client *redis.Client) *PollingOffsetStore {
	return &PollingOffsetStore{client: client}
}

// GetOffset returns the last saved update ID, or 0 when nothing was saved yet.
func (s *PollingOffsetStore) GetOffset(ctx context.Context) (int64, error) {
	val, err := s.client.Get(ctx, updateOffsetKey).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get update offset: %w", err)
	}

	offset, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse update offset: %w", err)
	}

	return offset, nil
}

// SaveOffset persists the given update ID.
func (s *PollingOffsetStore) SaveOffset(ctx context.Context, offset int64) error {
	val := strconv.FormatInt(offset, 10)
	if err := s.client.Set(ctx, updateOffsetKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save update offset: %w", err)
	}
	return nil
}
