package feedcache

import "context"

// FeedCache caches the per-user set of followed actor ids and tracks which
// users need their set rebuilt. Implementations must treat cache failures as
// recoverable; callers fall back to the store.
type FeedCache interface {
	// GetActorSet returns the cached set and whether it was present.
	GetActorSet(ctx context.Context, userID uint) ([]uint, bool, error)
	SetActorSet(ctx context.Context, userID uint, actorIDs []uint) error
	// MarkDirty invalidates the user's cached set and queues the user for a
	// background rebuild.
	MarkDirty(ctx context.Context, userID uint) error
	// PopDirty removes and returns up to limit queued users.
	PopDirty(ctx context.Context, limit int) ([]uint, error)
}
