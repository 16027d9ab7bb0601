package spellslots

import "github.com/redis/go-redis/v9"

// NewRedis creates a new Redis-backed spell slot repository
func NewRedis(client redis.UniversalClient, defaults Defaults) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:   client,
		Defaults: defaults,
	})
}
