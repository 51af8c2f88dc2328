package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"murmur/pkg/cache"
)

// InitCache returns a Redis-backed store when REDIS_URL is set, otherwise an
// in-process map. Local development works without a Redis instance.
func InitCache() cache.Store {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set, using in-memory cache")
		return cache.NewMemoryStore()
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Invalid REDIS_URL, using in-memory cache: %v", err)
		return cache.NewMemoryStore()
	}

	return cache.NewRedisStore(redis.NewClient(opts))
}
