package spellslots

import (
	"context"
	"fmt"

	"github.com/Kkzin999/sun/internal/database"
	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
)

const upsertSlot = `INSERT INTO spell_slots (community_id, character_id, slot_index, spell_id, level, xp, rarity, locked)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (community_id, character_id, slot_index) DO UPDATE SET
		spell_id = excluded.spell_id,
		level = excluded.level,
		xp = excluded.xp,
		rarity = excluded.rarity,
		locked = excluded.locked`

// SQLRepoConfig holds configuration for the SQL repository
type SQLRepoConfig struct {
	DB       *database.DB
	Defaults Defaults
}

type sqlRepo struct {
	db       *database.DB
	defaults Defaults
}

// NewSQLRepository creates a spell slot repository on SQLite or PostgreSQL
func NewSQLRepository(cfg *SQLRepoConfig) Repository {
	if cfg == nil {
		panic("SQLRepoConfig cannot be nil")
	}
	if cfg.DB == nil {
		panic("database cannot be nil")
	}
	if cfg.Defaults == nil {
		panic("Defaults cannot be nil")
	}
	return &sqlRepo{db: cfg.DB, defaults: cfg.Defaults}
}

// GetSlots returns the character's slots, materializing defaults on first read
func (r *sqlRepo) GetSlots(ctx context.Context, ref character.Ref) ([]spell.Slot, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	query := r.db.Build(`SELECT slot_index, spell_id, level, xp, rarity, locked
		FROM spell_slots WHERE community_id = ? AND character_id = ? ORDER BY slot_index`)

	rows, err := r.db.SQL().QueryContext(ctx, query, ref.CommunityID, ref.CharacterID)
	if err != nil {
		return nil, dnderr.Storage(err, "failed to query spell slots").
			WithMeta("character_id", ref.CharacterID)
	}
	defer rows.Close()

	stored := make(map[int]spell.Slot, spell.MaxSlots)
	for rows.Next() {
		s := spell.Slot{CommunityID: ref.CommunityID, CharacterID: ref.CharacterID}
		var rarity string
		if err := rows.Scan(&s.Index, &s.SpellID, &s.Level, &s.XP, &rarity, &s.Locked); err != nil {
			return nil, fmt.Errorf("failed to scan spell slot: %w", err)
		}
		s.Rarity = spell.Rarity(rarity)
		stored[s.Index] = s
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.Storage(err, "failed to read spell slots")
	}

	if len(stored) == 0 {
		defaults := r.defaults.DefaultSlots(ref)
		if err := r.materialize(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	return complete(ref, stored, r.defaults), nil
}

func (r *sqlRepo) materialize(ctx context.Context, slots []spell.Slot) error {
	tx, err := r.db.SQL().BeginTx(ctx, nil)
	if err != nil {
		return dnderr.Storage(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	query := r.db.Build(upsertSlot)
	for _, s := range slots {
		if _, err := tx.ExecContext(ctx, query, slotArgs(s)...); err != nil {
			return dnderr.Storage(err, "failed to write default spell slots")
		}
	}

	if err := tx.Commit(); err != nil {
		return dnderr.Storage(err, "failed to commit default spell slots")
	}
	return nil
}

// SaveSlot inserts or replaces one slot
func (r *sqlRepo) SaveSlot(ctx context.Context, slot spell.Slot) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	if _, err := r.db.SQL().ExecContext(ctx, r.db.Build(upsertSlot), slotArgs(slot)...); err != nil {
		return dnderr.Storage(err, "failed to save spell slot").
			WithMeta("character_id", slot.CharacterID).
			WithMeta("slot", slot.Index)
	}
	return nil
}

func slotArgs(s spell.Slot) []any {
	return []any{s.CommunityID, s.CharacterID, s.Index, s.SpellID, s.Level, s.XP, string(s.Rarity), s.Locked}
}
