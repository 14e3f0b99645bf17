package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	preferencesKeyPrefix = "booking:recovery:preferences:"
	selectionKeyPrefix   = "booking:recovery:provider:"
)

// RecoveryRedisCache keeps the crash-recovery copy of a session in Redis.
//
// Selections also carry a Redis TTL; the timestamp inside the entry is still
// what decides freshness.
type RecoveryRedisCache struct {
	client       *redis.Client
	ttl          time.Duration
	selectionTTL time.Duration
}

var _ interfaces.IRecoveryCache = (*RecoveryRedisCache)(nil)

// NewRecoveryRedisCache stores preferences for ttl (0 keeps them until cleared)
// and selections for selectionTTL.
func NewRecoveryRedisCache(client *redis.Client, ttl, selectionTTL time.Duration) *RecoveryRedisCache {
	return &RecoveryRedisCache{client: client, ttl: ttl, selectionTTL: selectionTTL}
}

func preferencesKey(sessionID string) string { return preferencesKeyPrefix + sessionID }

func selectionKey(sessionID string) string { return selectionKeyPrefix + sessionID }

func (c *RecoveryRedisCache) SavePreferences(ctx context.Context, sessionID string, p entities.UserPreferences) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, preferencesKey(sessionID), b, c.ttl).Err()
}

func (c *RecoveryRedisCache) LoadPreferences(ctx context.Context, sessionID string) (entities.UserPreferences, bool, error) {
	data, err := c.client.Get(ctx, preferencesKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.UserPreferences{}, false, nil
	}
	if err != nil {
		return entities.UserPreferences{}, false, err
	}
	var p entities.UserPreferences
	if err := json.Unmarshal(data, &p); err != nil {
		return entities.UserPreferences{}, false, err
	}
	return p, true, nil
}

func (c *RecoveryRedisCache) SaveSelection(ctx context.Context, sessionID string, sel entities.CachedSelection) error {
	b, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, selectionKey(sessionID), b, c.selectionTTL).Err()
}

func (c *RecoveryRedisCache) LoadSelection(ctx context.Context, sessionID string) (entities.CachedSelection, bool, error) {
	data, err := c.client.Get(ctx, selectionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.CachedSelection{}, false, nil
	}
	if err != nil {
		return entities.CachedSelection{}, false, err
	}
	var sel entities.CachedSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return entities.CachedSelection{}, false, err
	}
	return sel, true, nil
}

func (c *RecoveryRedisCache) ClearSelection(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, selectionKey(sessionID)).Err()
}

func (c *RecoveryRedisCache) Clear(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, preferencesKey(sessionID), selectionKey(sessionID)).Err()
}
