package workers

import (
	"context"
	"time"

	"tailorspace/internal/ports/feedcache"

	"go.uber.org/zap"
)

// CacheRebuilder recomputes one user's followed-actor set from the store and
// rewrites the cache entry.
type CacheRebuilder interface {
	RebuildCache(ctx context.Context, userID uint) error
}

// FeedCacheWorker drains the dirty-user queue in batches and rebuilds each
// user's cached followed-actor set. Follow/unfollow and actor changes only
// mark users dirty; this worker does the recomputation off the request path.
type FeedCacheWorker struct {
	cache     feedcache.FeedCache
	rebuilder CacheRebuilder
	batchSize int
	interval  time.Duration
	logger    *zap.Logger
}

func NewFeedCacheWorker(cache feedcache.FeedCache, rebuilder CacheRebuilder, batchSize int, interval time.Duration, logger *zap.Logger) *FeedCacheWorker {
	if batchSize <= 0 {
		batchSize = 100
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &FeedCacheWorker{
		cache:     cache,
		rebuilder: rebuilder,
		batchSize: batchSize,
		interval:  interval,
		logger:    logger,
	}
}

func (w *FeedCacheWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("feed cache worker started", zap.Int("batchSize", w.batchSize))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("feed cache worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *FeedCacheWorker) drain(ctx context.Context) {
	for {
		userIDs, err := w.cache.PopDirty(ctx, w.batchSize)
		if err != nil {
			w.logger.Error("failed to pop dirty users", zap.Error(err))
			return
		}
		if len(userIDs) == 0 {
			return
		}

		for _, userID := range userIDs {
			if err := w.rebuilder.RebuildCache(ctx, userID); err != nil {
				w.logger.Error("failed to rebuild feed cache", zap.Uint("userID", userID), zap.Error(err))
				continue
			}
		}
		w.logger.Debug("rebuilt feed caches", zap.Int("count", len(userIDs)))

		if len(userIDs) < w.batchSize {
			return
		}
	}
}
