package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/domain/availability"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/logger"
)

const versionKey = "availability:version"

// AvailabilityCache stores computed day availability under a namespace
// version. Invalidation bumps the version, orphaning every old key at once;
// orphans expire via TTL.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) key(ctx context.Context, date string, durationMin int, professionalID *uint) string {
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		ver = 0
	}

	prof := uint(0)
	if professionalID != nil {
		prof = *professionalID
	}
	return fmt.Sprintf("availability:v%d:%s:%d:%d", ver, date, durationMin, prof)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	date string,
	durationMin int,
	professionalID *uint,
) (*availability.DayAvailability, bool) {

	raw, err := c.client.Get(ctx, c.key(ctx, date, durationMin, professionalID)).Bytes()
	if err != nil {
		return nil, false
	}

	var day availability.DayAvailability
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, false
	}
	return &day, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	date string,
	durationMin int,
	professionalID *uint,
	day availability.DayAvailability,
) {
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.key(ctx, date, durationMin, professionalID), raw, c.ttl).Err(); err != nil {
		logger.L().Debug("availability cache set failed", zap.Error(err))
	}
}

// Invalidate drops every cached day. Called after any schedule or
// appointment mutation; a stale free slot must never be served.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		logger.L().Warn("availability cache invalidation failed", zap.Error(err))
	}
}
