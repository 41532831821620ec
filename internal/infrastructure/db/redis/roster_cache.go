package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitclub/club-api/internal/api/metrics"
	"github.com/fitclub/club-api/internal/core/ports"
)

const rosterTTL = 15 * time.Minute

// RosterCache caches fully resolved session details in Redis.
// Key format: roster:<session_id>
type RosterCache struct {
	client *redis.Client
}

// NewRosterCache creates a RosterCache wrapping the given Redis client.
func NewRosterCache(client *redis.Client) *RosterCache {
	return &RosterCache{client: client}
}

// Get returns the cached detail for the session, reporting whether the key
// was present.
func (c *RosterCache) Get(ctx context.Context, sessionID string) (*ports.SessionDetail, bool, error) {
	raw, err := c.client.Get(ctx, c.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RosterCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("roster cache get: %w", err)
	}

	var detail ports.SessionDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, false, fmt.Errorf("roster cache decode: %w", err)
	}
	metrics.RosterCacheTotal.WithLabelValues("hit").Inc()
	return &detail, true, nil
}

// Set stores the detail (expires after rosterTTL).
func (c *RosterCache) Set(ctx context.Context, sessionID string, detail *ports.SessionDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("roster cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(sessionID), raw, rosterTTL).Err()
}

// Invalidate drops the cached detail for the session.
func (c *RosterCache) Invalidate(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}

func (c *RosterCache) key(sessionID string) string {
	return "roster:" + sessionID
}
