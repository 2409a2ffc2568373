package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tripwise/internal/planner"
)

const draftKeyPrefix = "draft:"

// RedisDraftStore persists wizard drafts in redis, one JSON document per
// session. Merge is read-modify-write and durable before it returns;
// concurrent writers on the same session are not synchronized, the last
// write wins.
type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

func (s *RedisDraftStore) Load(ctx context.Context, id string) (planner.Draft, error) {
	raw, err := s.rdb.Get(ctx, draftKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return planner.Draft{}, nil
		}
		return nil, err
	}

	var d planner.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		// Malformed persisted state is treated as absent, not fatal.
		return planner.Draft{}, nil
	}
	return d, nil
}

func (s *RedisDraftStore) Merge(ctx context.Context, id string, partial planner.Draft) error {
	cur, err := s.Load(ctx, id)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cur.Apply(partial))
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKeyPrefix+id, raw, s.ttl).Err()
}

func (s *RedisDraftStore) Clear(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, draftKeyPrefix+id).Err()
}
