package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Pinger is anything whose liveness can be probed.
type Pinger func(ctx context.Context) error

var (
	currentHealth = HealthStatus{Status: "starting"}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth probes every dependency once and stores the snapshot.
func CheckHealth(ctx context.Context, mongoPing Pinger, redisPings []Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	redisHealth := make([]bool, 0, len(redisPings))
	healthy := true
	for _, ping := range redisPings {
		ok := ping(ctx) == nil
		healthy = healthy && ok
		redisHealth = append(redisHealth, ok)
	}

	mongoHealthy := mongoPing != nil && mongoPing(ctx) == nil
	healthy = healthy && mongoHealthy

	status := "ok"
	if !healthy {
		status = "degraded"
	}

	snapshot := HealthStatus{
		Status:    status,
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}

	mu.Lock()
	currentHealth = snapshot
	mu.Unlock()
	return snapshot
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, redisClients []*redis.Client, mongoClient *mongo.Client) {
	mongoPing := func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }
	redisPings := make([]Pinger, 0, len(redisClients))
	for _, client := range redisClients {
		client := client
		redisPings = append(redisPings, func(ctx context.Context) error { return client.Ping(ctx).Err() })
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		CheckHealth(ctx, mongoPing, redisPings)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if snap := CheckHealth(ctx, mongoPing, redisPings); snap.Status != "ok" {
					GetLogger().Warn("Dependency health degraded", zap.Bool("mongo", snap.Mongo), zap.Bools("redis", snap.Redis))
				}
			}
		}
	}()
}
