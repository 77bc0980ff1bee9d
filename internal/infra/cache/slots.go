package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SlotCache caches computed availability in Redis for a short TTL. Every
// failure path degrades to a miss; availability reads never depend on
// Redis being up. Staleness is bounded by the TTL and is safe because the
// booking transaction re-checks conflicts authoritatively.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, cfg config.Config) *SlotCache {
	return &SlotCache{
		client: client,
		ttl:    cfg.Redis.SlotTTL,
	}
}

func slotKey(hostID uuid.UUID, date, viewerTimezone string, duration time.Duration) string {
	return fmt.Sprintf("slots:%s:%s:%s:%d", hostID, date, viewerTimezone, int(duration.Minutes()))
}

func (c *SlotCache) Get(ctx context.Context, hostID uuid.UUID, date, viewerTimezone string, duration time.Duration) ([]queries.SlotView, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, slotKey(hostID, date, viewerTimezone, duration)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("slot cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var slots []queries.SlotView
	if err := json.Unmarshal(data, &slots); err != nil {
		slog.Warn("slot cache entry corrupt", "error", err.Error())
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, hostID uuid.UUID, date, viewerTimezone string, duration time.Duration, slots []queries.SlotView) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		slog.Warn("slot cache encode failed", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, slotKey(hostID, date, viewerTimezone, duration), data, c.ttl).Err(); err != nil {
		slog.Warn("slot cache write failed", "error", err.Error())
	}
}
