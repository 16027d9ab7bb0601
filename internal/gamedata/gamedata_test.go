package gamedata_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	"github.com/Kkzin999/sun/internal/gamedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data, err := gamedata.Default()
	require.NoError(t, err)

	assert.Equal(t, character.Stats{MaxHP: 100, Attack: 10, Defense: 5, Mana: 0}, data.BaseStats)
	assert.Equal(t, map[int]int{1: 100, 2: 250, 3: 500}, data.LevelBonuses)

	mage, ok := data.Classes.Get(character.ClassMage)
	require.True(t, ok)
	assert.True(t, mage.Caster)
	assert.Equal(t, 100, mage.Mana)

	soldier, ok := data.Classes.Get(character.ClassSoldier)
	require.True(t, ok)
	require.NotNil(t, soldier.DefenseOverride)
	assert.Equal(t, 15, *soldier.DefenseOverride)

	wall, ok := data.Spells.Get("muralha")
	require.True(t, ok)
	assert.Equal(t, spell.EffectShield, wall.Effect.Kind())
	assert.Equal(t, 100, wall.BasePower)

	slots := data.Spells.DefaultSlots(character.Ref{CommunityID: "g", CharacterID: "u"})
	assert.Equal(t, "bola_de_fogo", slots[0].SpellID)
	assert.Equal(t, "muralha", slots[1].SpellID)
	assert.Equal(t, "drenar_vida", slots[2].SpellID)

	slime := data.Bestiary.Select(5)
	assert.Equal(t, "Slime", slime.Name)
	assert.Equal(t, 5*time.Second, slime.AttackInterval)
	assert.Equal(t, "Dragão Jovem", data.Bestiary.Select(9999).Name)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	data, err := gamedata.Load("")
	require.NoError(t, err)
	assert.Len(t, data.Classes.All(), 4)
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_stats: {max_hp: 50, attack: 4, defense: 1, mana: 0}
classes:
  - {id: mage, hp_multiplier: 1, attack_multiplier: 1, defense_multiplier: 1, mana: 10, caster: true}
spells:
  - {id: zap, base_cost: 1, base_power: 2, rarity: common, effect: damage}
default_loadout: [zap]
opponents:
  - {name: Rat, min_power: 0, max_power: 1, hit_points: 5, attack: 1, defense: 0, loot: 1, attack_interval: 2s}
`), 0o600))

	data, err := gamedata.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, data.BaseStats.MaxHP)
	assert.Empty(t, data.LevelBonuses)
	assert.Equal(t, "Rat", data.Bestiary.Select(100).Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "classes: [",
		"no base hp":     "base_stats: {max_hp: 0}",
		"unknown effect": "base_stats: {max_hp: 1}\nspells: [{id: x, rarity: common, effect: teleport}]",
		"unknown rarity": "base_stats: {max_hp: 1}\nspells: [{id: x, rarity: shiny, effect: damage}]",
		"bad interval": `base_stats: {max_hp: 1}
opponents: [{name: Rat, max_power: 1, hit_points: 5, attack_interval: soon}]`,
		"no opponents": "base_stats: {max_hp: 1}",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := gamedata.Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := gamedata.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
