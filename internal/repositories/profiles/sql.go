package profiles

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	"github.com/Kkzin999/sun/internal/database"
	"github.com/Kkzin999/sun/internal/domain/character"
	dnderr "github.com/Kkzin999/sun/internal/errors"
)

const profileColumns = `community_id, character_id, experience, level, tokens, currency, class,
	current_hp, max_hp, attack, defense, mana, max_mana, created_at, updated_at`

// SQLRepoConfig holds configuration for the SQL repository
type SQLRepoConfig struct {
	DB           *database.DB
	BaseStats    character.Stats
	TimeProvider clock.TimeProvider
}

type sqlRepo struct {
	db           *database.DB
	baseStats    character.Stats
	timeProvider clock.TimeProvider
}

// NewSQLRepository creates a profile repository on SQLite or PostgreSQL
func NewSQLRepository(cfg *SQLRepoConfig) Repository {
	if cfg == nil {
		panic("SQLRepoConfig cannot be nil")
	}
	if cfg.DB == nil {
		panic("database cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = clock.NewRealTimeProvider()
	}

	return &sqlRepo{
		db:           cfg.DB,
		baseStats:    cfg.BaseStats,
		timeProvider: cfg.TimeProvider,
	}
}

// Get retrieves a profile, defaulting when no row exists
func (r *sqlRepo) Get(ctx context.Context, ref character.Ref) (*character.Profile, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	query := r.db.Build(`SELECT ` + profileColumns + ` FROM profiles WHERE community_id = ? AND character_id = ?`)

	var (
		p                    character.Profile
		class                string
		createdAt, updatedAt int64
	)
	err := r.db.SQL().QueryRowContext(ctx, query, ref.CommunityID, ref.CharacterID).Scan(
		&p.CommunityID, &p.CharacterID, &p.Experience, &p.Level, &p.Tokens, &p.Currency, &class,
		&p.CurrentHP, &p.MaxHP, &p.Attack, &p.Defense, &p.Mana, &p.MaxMana, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return character.NewProfile(ref, r.baseStats), nil
	}
	if err != nil {
		return nil, dnderr.Storage(err, "failed to query profile").
			WithMeta("character_id", ref.CharacterID)
	}

	p.Class = character.ClassID(class)
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &p, nil
}

// Upsert inserts or replaces the profile row
func (r *sqlRepo) Upsert(ctx context.Context, profile *character.Profile) error {
	if profile == nil {
		return dnderr.InvalidArgument("profile cannot be nil")
	}
	if err := validateRef(profile.Ref()); err != nil {
		return err
	}

	stamp(profile, r.timeProvider)

	query := r.db.Build(`INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (community_id, character_id) DO UPDATE SET
			experience = excluded.experience,
			level = excluded.level,
			tokens = excluded.tokens,
			currency = excluded.currency,
			class = excluded.class,
			current_hp = excluded.current_hp,
			max_hp = excluded.max_hp,
			attack = excluded.attack,
			defense = excluded.defense,
			mana = excluded.mana,
			max_mana = excluded.max_mana,
			updated_at = excluded.updated_at`)

	_, err := r.db.SQL().ExecContext(ctx, query,
		profile.CommunityID, profile.CharacterID, profile.Experience, profile.Level, profile.Tokens,
		profile.Currency, string(profile.Class), profile.CurrentHP, profile.MaxHP, profile.Attack,
		profile.Defense, profile.Mana, profile.MaxMana,
		profile.CreatedAt.UnixMilli(), profile.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return dnderr.Storage(err, "failed to save profile").
			WithMeta("character_id", profile.CharacterID)
	}

	return nil
}
