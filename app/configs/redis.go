package configs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// OpenRedis returns a client for the rating cache. A nil client is returned
// when REDIS_ADDR is unset or the server is unreachable; callers fall back
// to recomputing averages from the database.
func OpenRedis() *redis.Client {
	if LoadENV.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set, rating cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: LoadENV.RedisAddr,
		DB:   LoadENV.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: redis ping failed (%v), rating cache disabled", err)
		return nil
	}

	return rdb
}
