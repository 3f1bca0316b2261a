// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"roomi/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AgentContextClient is the dedicated client for conversation context storage.
	AgentContextClient *redis.Client
)

// InitRedis initializes the Redis clients used by the service.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	AgentContextClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAgentDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
	if _, err := AgentContextClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (AgentContext): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAgentContextClient returns the conversation context client.
func GetAgentContextClient() *redis.Client {
	return AgentContextClient
}
