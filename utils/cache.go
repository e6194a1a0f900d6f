package utils

import (
	"context"
	"log"
	"time"

	"vedicjivan/config"

	"github.com/go-redis/redis/v8"
)

// LockClient is the dedicated Redis client for short-lived slot locks.
var LockClient *redis.Client

// InitLockClient initializes the Redis client used for booking slot locks.
// A missing Redis is logged, not fatal: booking creation degrades to
// validate-then-insert without a lock.
func InitLockClient() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis (slot lock) unavailable: %v", err)
	}
}

// GetLockClient returns the Redis client for booking slot locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockClient()
	}
	return LockClient
}
