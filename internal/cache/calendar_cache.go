package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/salonworks/salon-scheduler/internal/models"
)

// CalendarSnapshot bundles the rows the scheduling engine builds its
// business calendar from. Cached as one unit so hours and exceptions
// can never be served from different generations.
type CalendarSnapshot struct {
	Hours      []models.BusinessHour     `json:"hours"`
	Exceptions []models.HolidayException `json:"exceptions"`
}

// CalendarCache keeps per-salon calendar snapshots in redis. Every
// method degrades to a miss on redis errors: the cache must never be
// the reason a booking fails.
type CalendarCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewCalendarCache(rdb *redis.Client, log zerolog.Logger) *CalendarCache {
	return &CalendarCache{
		rdb: rdb,
		ttl: 5 * time.Minute,
		log: log.With().Str("component", "calendar_cache").Logger(),
	}
}

func calendarKey(salonID uint) string {
	return fmt.Sprintf("salon:%d:calendar", salonID)
}

func (c *CalendarCache) Get(ctx context.Context, salonID uint) (*CalendarSnapshot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, calendarKey(salonID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Uint("salon_id", salonID).Msg("calendar cache read failed")
		}
		return nil, false
	}

	var snap CalendarSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.log.Warn().Err(err).Uint("salon_id", salonID).Msg("calendar cache entry corrupt")
		return nil, false
	}

	return &snap, true
}

func (c *CalendarCache) Set(ctx context.Context, salonID uint, snap *CalendarSnapshot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, calendarKey(salonID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Uint("salon_id", salonID).Msg("calendar cache write failed")
	}
}

// Invalidate drops the snapshot after an admin edits business hours or
// holiday exceptions.
func (c *CalendarCache) Invalidate(ctx context.Context, salonID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, calendarKey(salonID)).Err(); err != nil {
		c.log.Warn().Err(err).Uint("salon_id", salonID).Msg("calendar cache invalidation failed")
	}
}
