package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set redis key")
	}
}

// Get returns the cached value and whether it was present.
func Get(ctx context.Context, key string) (string, bool) {
	if Rdb == nil {
		return "", false
	}
	val, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("failed to get redis key")
		}
		return "", false
	}
	return val, true
}

func Del(ctx context.Context, keys ...string) {
	if Rdb == nil || len(keys) == 0 {
		return
	}
	if err := Rdb.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to delete redis keys")
	}
}
