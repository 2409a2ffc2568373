package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the cache/draft backend. Returns nil when no
// REDIS_URL is configured; callers fall back to the in-memory stores.
func InitRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set, falling back to in-memory stores")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Error parsing REDIS_URL: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}
