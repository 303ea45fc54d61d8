package utils

import (
	"context"
	"log"
	"time"

	"tourbook/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// ListingCacheClient holds read-through copies of public catalog data,
// kept in its own DB so flushing it never touches sessions.
var ListingCacheClient *redis.Client

func InitListingCache() {
	ListingCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := ListingCacheClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (Listing Cache): %v", err)
	}
}

func GetListingCacheClient() *redis.Client {
	if ListingCacheClient == nil {
		InitListingCache()
	}
	return ListingCacheClient
}

// AuthCache stores the hash of each user's active token.
type AuthCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAuthCache(client *redis.Client) *AuthCache {
	return &AuthCache{client: client, ttl: AuthCacheTTL}
}

func authKey(userID string) string {
	return AuthCachePrefix + userID
}

// Lookup returns the cached token hash for userID and refreshes its TTL.
// A miss is reported as ("", false, nil).
func (a *AuthCache) Lookup(ctx context.Context, userID string) (string, bool, error) {
	if a == nil || a.client == nil {
		return "", false, nil
	}
	hash, err := a.client.Get(ctx, authKey(userID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if err := a.client.Expire(ctx, authKey(userID), a.ttl).Err(); err != nil {
		GetLogger().Warn("Failed to refresh auth cache TTL", zap.String("userID", userID), zap.Error(err))
	}
	return hash, true, nil
}

func (a *AuthCache) Store(ctx context.Context, userID, tokenHash string) error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Set(ctx, authKey(userID), tokenHash, a.ttl).Err()
}

func (a *AuthCache) Forget(ctx context.Context, userID string) error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Del(ctx, authKey(userID)).Err()
}
