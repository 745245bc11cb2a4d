// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-flight booking sessions between quote and confirm.
	SessionCacheClient *redis.Client
	// CatalogCacheClient is the dedicated client for catalog read caching.
	CatalogCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the booking session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitCatalogCache initializes the Redis client for catalog caching.
func InitCatalogCache() {
	CatalogCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CatalogCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Catalog Cache): %v", err)
	}
}

// GetCatalogCacheClient returns the Redis client for catalog caching.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		InitCatalogCache()
	}
	return CatalogCacheClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitSessionCache()
	InitCatalogCache()
}
