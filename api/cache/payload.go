package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"riftstats/api/dto"
	"riftstats/pkg/redis"
	"time"
)

// Default key and duration for the assembled payloads.
const (
	payloadCacheDuration = 10 * time.Minute
	payloadKey           = "player:payload:%s"
)

// PayloadCache is the public interface for the redis payload tier.
type PayloadCache interface {
	GetPayload(ctx context.Context, key string) (*dto.AggregatedPlayerPayload, error)
	SetPayload(ctx context.Context, key string, payload *dto.AggregatedPlayerPayload) error
}

// Create a redis cache client.
type payloadCache struct {
	redis *redis.RedisClient
}

// NewPayloadCache creates a new instance of the payload redis client.
func NewPayloadCache(redis *redis.RedisClient) PayloadCache {
	return &payloadCache{
		redis: redis,
	}
}

// GetPayload retrieves a assembled payload by it's composite key.
func (pc *payloadCache) GetPayload(ctx context.Context, key string) (*dto.AggregatedPlayerPayload, error) {
	cached, err := pc.redis.Get(ctx, fmt.Sprintf(payloadKey, key))
	if err != nil || cached == "" {
		return nil, err
	}

	var payload dto.AggregatedPlayerPayload
	if err := json.Unmarshal([]byte(cached), &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

// SetPayload saves a assembled payload in cache.
func (pc *payloadCache) SetPayload(ctx context.Context, key string, payload *dto.AggregatedPlayerPayload) error {
	j, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return pc.redis.Set(ctx, fmt.Sprintf(payloadKey, key), string(j), payloadCacheDuration)
}
