// Package gamedata loads the balance file: base stats, class archetypes, the
// spell catalog, level bonuses and the opponent bestiary.
package gamedata

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	"gopkg.in/yaml.v3"
)

//go:embed balance.yaml
var defaultBalance []byte

// SpellDefinition is a spell entry as written in YAML
type SpellDefinition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	BaseCost    int    `yaml:"base_cost"`
	BasePower   int    `yaml:"base_power"`
	Rarity      string `yaml:"rarity"`
	Effect      string `yaml:"effect"`
}

// OpponentDefinition is a bestiary entry as written in YAML
type OpponentDefinition struct {
	Name           string  `yaml:"name"`
	MinPower       float64 `yaml:"min_power"`
	MaxPower       float64 `yaml:"max_power"`
	HitPoints      int     `yaml:"hit_points"`
	Attack         int     `yaml:"attack"`
	Defense        int     `yaml:"defense"`
	Loot           int     `yaml:"loot"`
	AttackInterval string  `yaml:"attack_interval"` // Go duration, e.g. "5s"
}

// File is the structure of balance.yaml
type File struct {
	BaseStats      character.Stats        `yaml:"base_stats"`
	LevelBonuses   map[int]int            `yaml:"level_bonuses"`
	Classes        []*character.Archetype `yaml:"classes"`
	Spells         []SpellDefinition      `yaml:"spells"`
	DefaultLoadout []string               `yaml:"default_loadout"`
	Opponents      []OpponentDefinition   `yaml:"opponents"`
}

// Data is the validated, ready-to-use form of a balance file
type Data struct {
	BaseStats    character.Stats
	LevelBonuses map[int]int
	Classes      *character.Classes
	Spells       *spell.Catalog
	Bestiary     *battle.Bestiary
}

// Default returns the balance data compiled into the binary
func Default() (*Data, error) {
	return Parse(defaultBalance)
}

// Load reads balance data from path, or the compiled-in default when path is empty
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a balance file
func Parse(raw []byte) (*Data, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse game data YAML: %w", err)
	}
	return f.build()
}

func (f *File) build() (*Data, error) {
	if f.BaseStats.MaxHP <= 0 {
		return nil, fmt.Errorf("base_stats.max_hp must be positive")
	}

	classes, err := character.NewClasses(f.Classes)
	if err != nil {
		return nil, err
	}

	archetypes := make([]*spell.Archetype, 0, len(f.Spells))
	for _, def := range f.Spells {
		effect, err := spell.ParseEffect(def.Effect)
		if err != nil {
			return nil, fmt.Errorf("spell %q: %w", def.ID, err)
		}
		rarity, err := spell.ParseRarity(def.Rarity)
		if err != nil {
			return nil, fmt.Errorf("spell %q: %w", def.ID, err)
		}
		archetypes = append(archetypes, &spell.Archetype{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			BaseCost:    def.BaseCost,
			BasePower:   def.BasePower,
			Rarity:      rarity,
			Effect:      effect,
		})
	}
	catalog, err := spell.NewCatalog(archetypes, f.DefaultLoadout)
	if err != nil {
		return nil, err
	}

	templates := make([]battle.Template, 0, len(f.Opponents))
	for _, def := range f.Opponents {
		interval, err := time.ParseDuration(def.AttackInterval)
		if err != nil {
			return nil, fmt.Errorf("opponent %q: invalid attack_interval: %w", def.Name, err)
		}
		templates = append(templates, battle.Template{
			Opponent: battle.Opponent{
				Name:           def.Name,
				Attack:         def.Attack,
				Defense:        def.Defense,
				HitPoints:      def.HitPoints,
				Loot:           def.Loot,
				AttackInterval: interval,
			},
			MinPower: def.MinPower,
			MaxPower: def.MaxPower,
		})
	}
	bestiary, err := battle.NewBestiary(templates)
	if err != nil {
		return nil, err
	}

	bonuses := f.LevelBonuses
	if bonuses == nil {
		bonuses = map[int]int{}
	}

	return &Data{
		BaseStats:    f.BaseStats,
		LevelBonuses: bonuses,
		Classes:      classes,
		Spells:       catalog,
		Bestiary:     bestiary,
	}, nil
}
