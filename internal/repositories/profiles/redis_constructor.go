package profiles

import (
	"github.com/Kkzin999/sun/internal/clock"
	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed profile repository
func NewRedis(client redis.UniversalClient, baseStats character.Stats) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:       client,
		BaseStats:    baseStats,
		TimeProvider: clock.NewRealTimeProvider(),
	})
}
