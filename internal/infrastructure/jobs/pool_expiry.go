package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"medseal.backend/internal/domain/repositories"
	"medseal.backend/pkg/logger"
)

// PoolExpiryJob periodically deactivates pools whose deadline has passed.
// The deadline check at contribution time is authoritative; this sweep only
// keeps listings tidy, so a missed tick is harmless.
type PoolExpiryJob struct {
	poolRepo repositories.PoolRepository
	interval time.Duration
	stop     chan struct{}
}

func NewPoolExpiryJob(poolRepo repositories.PoolRepository, interval time.Duration) *PoolExpiryJob {
	return &PoolExpiryJob{
		poolRepo: poolRepo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *PoolExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting pool expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "pool expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "pool expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *PoolExpiryJob) Stop() {
	close(j.stop)
}

func (j *PoolExpiryJob) sweep(ctx context.Context) {
	expired, err := j.poolRepo.ListExpiredActive(ctx, 100)
	if err != nil {
		logger.Error(ctx, "fetching expired pools", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, pool := range expired {
		ids = append(ids, pool.ID)
	}

	if err := j.poolRepo.Deactivate(ctx, ids); err != nil {
		logger.Error(ctx, "deactivating expired pools", zap.Error(err))
		return
	}

	logger.Info(ctx, "deactivated expired pools", zap.Int("count", len(ids)))
}
