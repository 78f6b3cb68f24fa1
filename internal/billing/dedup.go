package billing

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper remembers processed webhook event ids.
type Deduper interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

// RedisDeduper keeps event ids in Redis so every function instance sees them.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (r *RedisDeduper) key(eventID string) string {
	return "goaltrack:stripe-event:" + eventID
}

// Claim records the id and returns true when it was not seen before.
func (r *RedisDeduper) Claim(ctx context.Context, eventID string) (bool, error) {
	return r.client.SetNX(ctx, r.key(eventID), 1, r.ttl).Result()
}

// Release forgets the id so a redelivery is processed again.
func (r *RedisDeduper) Release(ctx context.Context, eventID string) error {
	return r.client.Del(ctx, r.key(eventID)).Err()
}
