package catalog

import (
	"context"
	"encoding/json"
	"time"

	"tourbook/models"

	"github.com/go-redis/redis/v8"
)

// ListingCache holds the public package listing.
type ListingCache interface {
	GetPackages(ctx context.Context) ([]models.Package, bool, error)
	SetPackages(ctx context.Context, pkgs []models.Package) error
	Invalidate(ctx context.Context) error
}

const (
	listingKey = "catalog:packages"
	listingTTL = 5 * time.Minute
)

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListingCache(client *redis.Client) *RedisListingCache {
	return &RedisListingCache{client: client, ttl: listingTTL}
}

func (c *RedisListingCache) GetPackages(ctx context.Context) ([]models.Package, bool, error) {
	val, err := c.client.Get(ctx, listingKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var pkgs []models.Package
	if err := json.Unmarshal(val, &pkgs); err != nil {
		// corrupt entry, treat as a miss
		return nil, false, nil
	}
	return pkgs, true, nil
}

func (c *RedisListingCache) SetPackages(ctx context.Context, pkgs []models.Package) error {
	data, err := json.Marshal(pkgs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingKey, data, c.ttl).Err()
}

func (c *RedisListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingKey).Err()
}
