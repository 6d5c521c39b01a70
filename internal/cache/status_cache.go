package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/EverGlassServices/rdv-tracker/internal/config"
	"github.com/EverGlassServices/rdv-tracker/internal/dto"
)

// The public viewer polls every 5 seconds; a longer TTL would only add
// staleness without saving reads.
const statusTTL = 5 * time.Second

// StatusCache is a read-through cache for the public status projection.
// The store stays authoritative: every successful mutation invalidates
// the entry, and a nil or unconfigured cache degrades to plain misses.
type StatusCache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *StatusCache {
	if cfg.RedisURL == "" {
		log.Println("status cache disabled (REDIS_URL not set)")
		return &StatusCache{}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	return &StatusCache{rdb: redis.NewClient(opts)}
}

func key(token string) string {
	return "rdv:status:" + token
}

func (c *StatusCache) Get(ctx context.Context, token string) (*dto.RepairStatusDTO, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(token)).Bytes()
	if err != nil {
		return nil, false
	}

	var d dto.RepairStatusDTO
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false
	}
	return &d, true
}

func (c *StatusCache) Set(ctx context.Context, d *dto.RepairStatusDTO) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return
	}

	// Cache failures never break a request.
	if err := c.rdb.Set(ctx, key(d.Token), raw, statusTTL).Err(); err != nil {
		log.Println("status cache set error:", err)
	}
}

func (c *StatusCache) Invalidate(ctx context.Context, token string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(token)).Err(); err != nil {
		log.Println("status cache invalidate error:", err)
	}
}
