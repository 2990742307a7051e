package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"suapa/model"

	"github.com/redis/go-redis/v9"
)

// StatsCache is a read-through redis cache for computed dashboard stats.
// A nil *StatsCache is valid and disables caching entirely.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

func statsKey(userID string) string {
	return fmt.Sprintf("stats:%s", userID)
}

func (sc *StatsCache) Get(ctx context.Context, userID string) (*model.DashboardStats, bool) {
	if sc == nil {
		return nil, false
	}

	data, err := sc.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Stats cache read failed for %s: %v", userID, err)
		}
		return nil, false
	}

	var stats model.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Stats cache entry for %s is corrupt, dropping: %v", userID, err)
		sc.client.Del(ctx, statsKey(userID))
		return nil, false
	}
	return &stats, true
}

func (sc *StatsCache) Set(ctx context.Context, userID string, stats *model.DashboardStats) {
	if sc == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Failed to marshal stats for cache: %v", err)
		return
	}
	if err := sc.client.Set(ctx, statsKey(userID), data, sc.ttl).Err(); err != nil {
		log.Printf("Stats cache write failed for %s: %v", userID, err)
	}
}

// Invalidate drops the cached stats after any write that changes them
// (new chat, task mutation, recorded activity).
func (sc *StatsCache) Invalidate(ctx context.Context, userID string) {
	if sc == nil {
		return
	}
	if err := sc.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		log.Printf("Stats cache invalidation failed for %s: %v", userID, err)
	}
}
