package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	actorSetKeyPrefix = "feed:actors:"
	dirtySetKey       = "feed:dirty"
	actorSetTTL       = 30 * time.Minute
)

// FeedCacheRedis caches followed-actor sets as Redis sets, one per user,
// and keeps the rebuild queue as a set of user ids.
type FeedCacheRedis struct {
	Client *redis.Client
}

func NewFeedCacheRedis(client *redis.Client) *FeedCacheRedis {
	return &FeedCacheRedis{Client: client}
}

func actorSetKey(userID uint) string {
	return actorSetKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (r *FeedCacheRedis) GetActorSet(ctx context.Context, userID uint) ([]uint, bool, error) {
	key := actorSetKey(userID)

	exists, err := r.Client.Exists(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}
	if exists == 0 {
		return nil, false, nil
	}

	members, err := r.Client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		// The zero sentinel keeps empty sets representable in Redis.
		if id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, true, nil
}

func (r *FeedCacheRedis) SetActorSet(ctx context.Context, userID uint, actorIDs []uint) error {
	key := actorSetKey(userID)

	// Actor ids start at 1, so "0" can stand in for the empty set without
	// ever colliding with a real member.
	members := make([]interface{}, 0, len(actorIDs)+1)
	members = append(members, "0")
	for _, id := range actorIDs {
		members = append(members, strconv.FormatUint(uint64(id), 10))
	}

	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, actorSetTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *FeedCacheRedis) MarkDirty(ctx context.Context, userID uint) error {
	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, actorSetKey(userID))
	pipe.SAdd(ctx, dirtySetKey, strconv.FormatUint(uint64(userID), 10))
	_, err := pipe.Exec(ctx)
	return err
}

func (r *FeedCacheRedis) PopDirty(ctx context.Context, limit int) ([]uint, error) {
	members, err := r.Client.SPopN(ctx, dirtySetKey, int64(limit)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
