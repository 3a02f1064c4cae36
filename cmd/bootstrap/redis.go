package bootstrap

import (
	"log/slog"

	"hotelier/internal/infra/cache"
	"hotelier/internal/pkg/config"
	"hotelier/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRoomListCache,
	),
)

// NewRoomListCache returns a nil-client cache when Redis is not configured;
// the cache type degrades to a no-op in that case.
func NewRoomListCache(cfg config.Config) queries.RoomListCache {
	if cfg.Redis.Addr == "" {
		slog.Info("Redis not configured, room list cache disabled")
		return cache.NewRoomListCache(nil, 0)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return cache.NewRoomListCache(client, cfg.Redis.TTL)
}
