package telegram

import (
	"context"
	"fmt"
	"sync"
	"time"

	"deskbot/internal/shared/goroutine"
	"deskbot/internal/shared/logger"
)

// defaultWorkerCount is the number of concurrent update workers. Updates
// are dispatched by user affinity (userID % workerCount) so one user's
// updates stay ordered while different users proceed in parallel.
const defaultWorkerCount = 4

// OffsetStore persists the polling offset across restarts.
type OffsetStore interface {
	GetOffset(ctx context.Context) (int64, error)
	SaveOffset(ctx context.Context, offset int64) error
}

// UpdateHandler consumes one Telegram update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *Update) error
}

// PollingService drives long polling for Telegram updates.
type PollingService struct {
	botService         *BotService
	handler            UpdateHandler
	logger             logger.Interface
	offsetStore        OffsetStore // nil = in-memory only
	pollTimeout        int
	stopChan           chan struct{}
	cancelFunc         context.CancelFunc
	wg                 sync.WaitGroup
	lastUpdateID       int64
	processedWatermark int64 // highest update_id processed in this session
	workerCount        int
	isRunning          bool
	runningMu          sync.Mutex
}

// NewPollingService creates a polling service. offsetStore may be nil,
// in which case offsets do not survive a restart.
func NewPollingService(
	botService *BotService,
	handler UpdateHandler,
	log logger.Interface,
	offsetStore OffsetStore,
	pollTimeout int,
) *PollingService {
	if pollTimeout <= 0 {
		pollTimeout = 30
	}
	return &PollingService{
		botService:  botService,
		handler:     handler,
		logger:      log,
		offsetStore: offsetStore,
		pollTimeout: pollTimeout,
		stopChan:    make(chan struct{}),
		workerCount: defaultWorkerCount,
	}
}

// Start begins polling for updates.
func (s *PollingService) Start(ctx context.Context) error {
	s.runningMu.Lock()
	if s.isRunning {
		s.runningMu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	pollCtx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel
	s.runningMu.Unlock()

	if s.offsetStore != nil {
		saved, err := s.offsetStore.GetOffset(ctx)
		if err != nil {
			s.logger.Warnw("failed to load polling offset, starting from 0", "error", err)
		} else if saved > 0 {
			s.lastUpdateID = saved
			s.processedWatermark = saved
			s.logger.Infow("loaded polling offset from store", "offset", saved)
		}
	}

	// Polling and webhooks are mutually exclusive on the Telegram side.
	if err := s.botService.DeleteWebhook(); err != nil {
		s.logger.Warnw("failed to delete webhook before polling", "error", err)
	}

	s.logger.Infow("starting telegram polling service",
		"timeout", s.pollTimeout,
		"workers", s.workerCount,
	)

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "telegram-poll-loop", func() {
		s.pollLoop(pollCtx)
	})

	return nil
}

// Stop stops the polling service and waits for in-flight updates.
func (s *PollingService) Stop() {
	s.runningMu.Lock()
	if !s.isRunning {
		s.runningMu.Unlock()
		return
	}
	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.runningMu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
	s.logger.Infow("telegram polling service stopped")
}

func (s *PollingService) pollLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("polling stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("polling stopped by stop signal")
			return
		default:
			s.poll(ctx)
		}
	}
}

func (s *PollingService) poll(ctx context.Context) {
	offset := int64(0)
	if s.lastUpdateID > 0 {
		offset = s.lastUpdateID + 1
	}

	updates, err := s.botService.GetUpdatesWithContext(ctx, offset, s.pollTimeout)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Errorw("failed to get updates", "error", err)
		// Back off before retrying so API errors don't turn into a hot loop.
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-time.After(5 * time.Second):
			return
		}
	}

	if len(updates) == 0 {
		return
	}

	// Watermark dedup guards against restart overlap resending updates.
	filtered := updates[:0]
	for _, u := range updates {
		if u.UpdateID > s.processedWatermark {
			filtered = append(filtered, u)
		}
	}
	if len(filtered) == 0 {
		for _, u := range updates {
			if u.UpdateID > s.lastUpdateID {
				s.lastUpdateID = u.UpdateID
			}
		}
		return
	}

	buckets := make([][]Update, s.workerCount)
	var maxUpdateID int64
	for _, u := range filtered {
		idx := s.userAffinity(&u)
		buckets[idx] = append(buckets[idx], u)
		if u.UpdateID > maxUpdateID {
			maxUpdateID = u.UpdateID
		}
	}

	var batchWg sync.WaitGroup
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		batchWg.Add(1)
		workerIdx := i
		workerBucket := bucket
		goroutine.SafeGo(s.logger, "telegram-worker-batch", func() {
			s.processWorkerBatch(ctx, &batchWg, workerIdx, workerBucket)
		})
	}
	batchWg.Wait()

	// Advance the offset only after every worker finished, so a crash mid
	// batch cannot skip unprocessed updates.
	s.lastUpdateID = maxUpdateID
	s.processedWatermark = maxUpdateID

	if s.offsetStore != nil && s.lastUpdateID > 0 {
		// Fresh context: the poll context may already be cancelled during
		// shutdown and the offset still has to land.
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer saveCancel()
		if err := s.offsetStore.SaveOffset(saveCtx, s.lastUpdateID); err != nil {
			s.logger.Warnw("failed to save polling offset", "error", err)
		}
	}
}

// processWorkerBatch handles one worker's updates sequentially, with
// per-update panic recovery so a poisoned update cannot take the service
// down.
func (s *PollingService) processWorkerBatch(ctx context.Context, wg *sync.WaitGroup, workerIdx int, updates []Update) {
	defer wg.Done()

	for i := range updates {
		if ctx.Err() != nil {
			return
		}

		func(u *Update) {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Errorw("panic recovered in update handler",
						"worker", workerIdx,
						"update_id", u.UpdateID,
						"panic", fmt.Sprintf("%v", r),
					)
				}
			}()

			if err := s.handler.HandleUpdate(ctx, u); err != nil {
				s.logger.Errorw("failed to handle update",
					"worker", workerIdx,
					"update_id", u.UpdateID,
					"error", err,
				)
			}
		}(&updates[i])
	}
}

// userAffinity maps an update to a worker index by user ID so a single
// user's updates never interleave.
func (s *PollingService) userAffinity(u *Update) int {
	var userID int64
	switch {
	case u.CallbackQuery != nil && u.CallbackQuery.From != nil:
		userID = u.CallbackQuery.From.ID
	case u.Message != nil && u.Message.From != nil:
		userID = u.Message.From.ID
	default:
		userID = u.UpdateID
	}
	idx := int(userID % int64(s.workerCount))
	if idx < 0 {
		idx += s.workerCount
	}
	return idx
}
