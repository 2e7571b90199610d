package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

// CountCacheStore keeps reaction counts in redis.
type CountCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IReactionCountCache = (*CountCacheStore)(nil)

func NewCountCacheStore(rdb *redis.Client, ttl time.Duration) *CountCacheStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CountCacheStore{rdb: rdb, ttl: ttl}
}

func countsKey(kind entity.TargetKind, targetID string) string {
	return fmt.Sprintf("reactions:counts:%s:%s", kind, targetID)
}

func (c *CountCacheStore) GetCounts(ctx context.Context, kind entity.TargetKind, targetID string) (*entity.ReactionCounts, bool, error) {
	b, err := c.rdb.Get(ctx, countsKey(kind, targetID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var counts entity.ReactionCounts
	if err := json.Unmarshal(b, &counts); err != nil {
		return nil, false, nil
	}
	return &counts, true, nil
}

func (c *CountCacheStore) SetCounts(ctx context.Context, kind entity.TargetKind, targetID string, counts *entity.ReactionCounts) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, countsKey(kind, targetID), data, c.ttl).Err()
}

func (c *CountCacheStore) InvalidateCounts(ctx context.Context, kind entity.TargetKind, targetID string) error {
	return c.rdb.Del(ctx, countsKey(kind, targetID)).Err()
}
