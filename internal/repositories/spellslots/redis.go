package spellslots

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client   redis.UniversalClient
	Defaults Defaults
}

type redisRepo struct {
	client   redis.UniversalClient
	defaults Defaults
}

// NewRedisRepository creates a new Redis-backed spell slot repository. Each
// character's slots live in one hash keyed by slot index.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.Defaults == nil {
		panic("Defaults cannot be nil")
	}

	return &redisRepo{client: cfg.Client, defaults: cfg.Defaults}
}

func (r *redisRepo) key(ref character.Ref) string {
	return fmt.Sprintf("spellslots:%s:%s", ref.CommunityID, ref.CharacterID)
}

// GetSlots returns the character's slots, materializing defaults on first read
func (r *redisRepo) GetSlots(ctx context.Context, ref character.Ref) ([]spell.Slot, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	fields, err := r.client.HGetAll(ctx, r.key(ref)).Result()
	if err != nil {
		return nil, dnderr.Storage(err, "failed to get spell slots").
			WithMeta("character_id", ref.CharacterID)
	}

	if len(fields) == 0 {
		defaults := r.defaults.DefaultSlots(ref)
		if err := r.save(ctx, ref, defaults...); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	stored := make(map[int]spell.Slot, len(fields))
	for field, raw := range fields {
		var slot spell.Slot
		if err := json.Unmarshal([]byte(raw), &slot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spell slot %s: %w", field, err)
		}
		stored[slot.Index] = slot
	}

	return complete(ref, stored, r.defaults), nil
}

// SaveSlot stores the slot in the character's hash
func (r *redisRepo) SaveSlot(ctx context.Context, slot spell.Slot) error {
	if err := validateSlot(slot); err != nil {
		return err
	}
	return r.save(ctx, slot.Ref(), slot)
}

func (r *redisRepo) save(ctx context.Context, ref character.Ref, slots ...spell.Slot) error {
	values := make([]any, 0, len(slots)*2)
	for _, s := range slots {
		jsonData, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal spell slot: %w", err)
		}
		values = append(values, strconv.Itoa(s.Index), string(jsonData))
	}

	if err := r.client.HSet(ctx, r.key(ref), values...).Err(); err != nil {
		return dnderr.Storage(err, "failed to save spell slot").
			WithMeta("character_id", ref.CharacterID)
	}
	return nil
}
