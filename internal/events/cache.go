package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"ticketeiro/internal/models"
)

const organizerEventsKeyPrefix = "organizer_events:"

// Cache keeps per-organizer event listings in Redis so the dashboard
// list does not hit Postgres on every request. Creation invalidates the
// owning organizer's entry.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{Client: client, TTL: ttl}
}

func (c *Cache) GetOrganizerEvents(ctx context.Context, organizerID string) ([]models.Event, bool, error) {
	val, err := c.Client.Get(ctx, organizerEventsKeyPrefix+organizerID).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var events []models.Event
	if err := json.Unmarshal([]byte(val), &events); err != nil {
		return nil, false, err
	}
	return events, true, nil
}

func (c *Cache) SetOrganizerEvents(ctx context.Context, organizerID string, events []models.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, organizerEventsKeyPrefix+organizerID, data, c.TTL).Err()
}

func (c *Cache) InvalidateOrganizerEvents(ctx context.Context, organizerID string) error {
	return c.Client.Del(ctx, organizerEventsKeyPrefix+organizerID).Err()
}
