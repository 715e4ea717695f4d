package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// InitRedis connects the shared client. When it is never called the
// cache helpers silently miss and callers fall through to upstream.
func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// SetJSON stores a JSON-encoded value with a TTL. Failures are logged
// and swallowed; caching is best-effort.
func SetJSON(ctx context.Context, key string, value any, expiration time.Duration) {
	if Rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode cache value")
		return
	}
	if err := Rdb.Set(ctx, key, raw, expiration).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write cache")
	}
}

// GetJSON loads and decodes a cached value. Returns false on miss,
// redis outage, or decode failure.
func GetJSON(ctx context.Context, key string, dest any) bool {
	if Rdb == nil {
		return false
	}
	raw, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return false
	}
	return true
}
