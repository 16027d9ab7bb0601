package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	"github.com/Kkzin999/sun/internal/domain/character"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/redis/go-redis/v9"
)

// Data is the serialized form of a profile in Redis
type Data struct {
	CommunityID string    `json:"community_id"`
	CharacterID string    `json:"character_id"`
	Experience  int       `json:"experience"`
	Level       int       `json:"level"`
	Tokens      int       `json:"tokens"`
	Currency    int       `json:"currency"`
	Class       string    `json:"class,omitempty"`
	CurrentHP   int       `json:"current_hp"`
	MaxHP       int       `json:"max_hp"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	Mana        int       `json:"mana"`
	MaxMana     int       `json:"max_mana"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	BaseStats    character.Stats
	TimeProvider clock.TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	baseStats    character.Stats
	timeProvider clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed profile repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = clock.NewRealTimeProvider()
	}

	return &redisRepo{
		client:       cfg.Client,
		baseStats:    cfg.BaseStats,
		timeProvider: cfg.TimeProvider,
	}
}

func (r *redisRepo) key(ref character.Ref) string {
	return fmt.Sprintf("profile:%s:%s", ref.CommunityID, ref.CharacterID)
}

// Get retrieves a profile, defaulting when the key is absent
func (r *redisRepo) Get(ctx context.Context, ref character.Ref) (*character.Profile, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	jsonData, err := r.client.Get(ctx, r.key(ref)).Bytes()
	if errors.Is(err, redis.Nil) {
		return character.NewProfile(ref, r.baseStats), nil
	}
	if err != nil {
		return nil, dnderr.Storage(err, "failed to get profile").
			WithMeta("character_id", ref.CharacterID)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return fromData(&data), nil
}

// Upsert stores the profile
func (r *redisRepo) Upsert(ctx context.Context, profile *character.Profile) error {
	if profile == nil {
		return dnderr.InvalidArgument("profile cannot be nil")
	}
	if err := validateRef(profile.Ref()); err != nil {
		return err
	}

	stamp(profile, r.timeProvider)
	jsonData, err := json.Marshal(toData(profile))
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := r.client.Set(ctx, r.key(profile.Ref()), string(jsonData), 0).Err(); err != nil {
		return dnderr.Storage(err, "failed to save profile").
			WithMeta("character_id", profile.CharacterID)
	}

	return nil
}

func toData(p *character.Profile) *Data {
	return &Data{
		CommunityID: p.CommunityID,
		CharacterID: p.CharacterID,
		Experience:  p.Experience,
		Level:       p.Level,
		Tokens:      p.Tokens,
		Currency:    p.Currency,
		Class:       string(p.Class),
		CurrentHP:   p.CurrentHP,
		MaxHP:       p.MaxHP,
		Attack:      p.Attack,
		Defense:     p.Defense,
		Mana:        p.Mana,
		MaxMana:     p.MaxMana,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromData(d *Data) *character.Profile {
	return &character.Profile{
		CommunityID: d.CommunityID,
		CharacterID: d.CharacterID,
		Experience:  d.Experience,
		Level:       d.Level,
		Tokens:      d.Tokens,
		Currency:    d.Currency,
		Class:       character.ClassID(d.Class),
		CurrentHP:   d.CurrentHP,
		MaxHP:       d.MaxHP,
		Attack:      d.Attack,
		Defense:     d.Defense,
		Mana:        d.Mana,
		MaxMana:     d.MaxMana,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
