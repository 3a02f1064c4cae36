package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	roomListAllKey    = "rooms:list:all"
	roomListKeyPrefix = "rooms:list:property:"
)

// RoomListCache caches serialized room listings in Redis. Every failure is
// logged and swallowed so a broken cache degrades to plain reads.
type RoomListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomListCache(client *redis.Client, ttl time.Duration) *RoomListCache {
	return &RoomListCache{client: client, ttl: ttl}
}

func listKey(propertyID *uuid.UUID) string {
	if propertyID == nil {
		return roomListAllKey
	}
	return roomListKeyPrefix + propertyID.String()
}

func (c *RoomListCache) Get(ctx context.Context, propertyID *uuid.UUID) ([]*queries.RoomView, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	key := listKey(propertyID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("room list cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var rooms []*queries.RoomView
	if err := json.Unmarshal(raw, &rooms); err != nil {
		slog.Warn("room list cache entry corrupt, dropping", "key", key, "error", err.Error())
		if delErr := c.client.Del(ctx, key).Err(); delErr != nil {
			slog.Warn("failed to drop corrupt cache entry", "key", key, "error", delErr.Error())
		}
		return nil, false
	}
	return rooms, true
}

func (c *RoomListCache) Set(ctx context.Context, propertyID *uuid.UUID, rooms []*queries.RoomView) {
	if c == nil || c.client == nil {
		return
	}
	key := listKey(propertyID)

	raw, err := json.Marshal(rooms)
	if err != nil {
		slog.Warn("failed to encode room list for cache", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("room list cache write failed", "key", key, "error", err.Error())
	}
}

// Invalidate drops both the per-property entry and the all-properties entry;
// the latter also contains rooms of the changed property.
func (c *RoomListCache) Invalidate(ctx context.Context, propertyID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	keys := []string{listKey(&propertyID), roomListAllKey}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("room list cache invalidation failed", "keys", keys, "error", err.Error())
	}
}
