package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/biztime"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

// quotaStore emulates the repository's atomic consume against an in-memory
// row, including the date-keyed reset.
type quotaStore struct {
	mu       sync.Mutex
	known    bool
	count    int
	lastDate string
}

func (s *quotaStore) consume(max int, today string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.known {
		return errors.NewNotFoundError("user not found")
	}
	if s.lastDate != today {
		s.count = 0
	}
	if s.count >= max {
		return errors.NewQuotaExceededError("daily urgent limit reached")
	}
	s.count++
	s.lastDate = today
	return nil
}

type mockQuotaUserRepo struct {
	user.UserRepository

	store *quotaStore
	used  func(today string) (int, error)
}

func (m *mockQuotaUserRepo) ConsumeUrgentQuota(ctx context.Context, userID int64, max int, today string) error {
	return m.store.consume(max, today)
}

func (m *mockQuotaUserRepo) UrgentQuotaUsed(ctx context.Context, userID int64, today string) (int, error) {
	if m.used != nil {
		return m.used(today)
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.lastDate != today {
		return 0, nil
	}
	return m.store.count, nil
}

func TestUrgentQuota_CapReached(t *testing.T) {
	store := &quotaStore{known: true}
	q := NewUrgentQuota(&mockQuotaUserRepo{store: store}, 3, logger.NewLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Consume(ctx, 100), "consume %d within cap must succeed", i+1)
	}

	err := q.Consume(ctx, 100)
	require.Error(t, err)
	assert.True(t, errors.IsQuotaExceededError(err))
	assert.Equal(t, 3, store.count, "rejected consume must not increment")

	remaining, err := q.Remaining(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestUrgentQuota_ResetsOnNewDay(t *testing.T) {
	store := &quotaStore{known: true, count: 3, lastDate: "2026-08-28"}
	q := NewUrgentQuota(&mockQuotaUserRepo{store: store}, 3, logger.NewLogger())

	// stored date differs from today, so the counter resets on check
	require.NotEqual(t, "2026-08-28", biztime.Today())
	require.NoError(t, q.Consume(context.Background(), 100))
	assert.Equal(t, 1, store.count)
}

func TestUrgentQuota_UnknownUserFailsClosed(t *testing.T) {
	q := NewUrgentQuota(&mockQuotaUserRepo{store: &quotaStore{known: false}}, 3, logger.NewLogger())
	err := q.Consume(context.Background(), 100)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUrgentQuota_ConcurrentConsumeNoDoubleSpend(t *testing.T) {
	store := &quotaStore{known: true}
	q := NewUrgentQuota(&mockQuotaUserRepo{store: store}, 3, logger.NewLogger())

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- q.Consume(context.Background(), 100)
		}()
	}
	wg.Wait()
	close(results)

	var ok, rejected int
	for err := range results {
		if err == nil {
			ok++
		} else {
			rejected++
		}
	}
	assert.Equal(t, 3, ok)
	assert.Equal(t, 7, rejected)
	assert.Equal(t, 3, store.count)
}
