// Package battle models hunts: the opponent bestiary, the live session state
// machine and the table of sessions currently running.
package battle

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/Kkzin999/sun/internal/domain/character"
)

// Opponent is the monster a session fights
type Opponent struct {
	Name           string        `json:"name"`
	Attack         int           `json:"attack"`
	Defense        int           `json:"defense"`
	HitPoints      int           `json:"hit_points"`
	Loot           int           `json:"loot"`
	AttackInterval time.Duration `json:"attack_interval"`
}

// Template is an opponent plus the inclusive power range it is picked for
type Template struct {
	Opponent
	MinPower float64
	MaxPower float64
}

// Bestiary selects opponents by power score
type Bestiary struct {
	templates []Template
	weakest   int
	strongest int
}

// NewBestiary validates templates. Order matters: the first matching range
// wins. Together the ranges must cover one unbroken span of scores.
func NewBestiary(templates []Template) (*Bestiary, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("bestiary needs at least one opponent")
	}

	b := &Bestiary{templates: append([]Template(nil), templates...)}
	for i, t := range b.templates {
		if t.Name == "" {
			return nil, fmt.Errorf("opponent %d has no name", i)
		}
		if t.MinPower > t.MaxPower {
			return nil, fmt.Errorf("opponent %q: min power %.2f above max %.2f", t.Name, t.MinPower, t.MaxPower)
		}
		if t.AttackInterval <= 0 {
			return nil, fmt.Errorf("opponent %q: attack interval must be positive", t.Name)
		}
		if t.HitPoints <= 0 {
			return nil, fmt.Errorf("opponent %q: hit points must be positive", t.Name)
		}
		if t.MaxPower > b.templates[b.strongest].MaxPower {
			b.strongest = i
		}
		if t.MinPower < b.templates[b.weakest].MinPower {
			b.weakest = i
		}
	}

	if err := checkCoverage(b.templates); err != nil {
		return nil, err
	}
	return b, nil
}

func checkCoverage(templates []Template) error {
	byMin := append([]Template(nil), templates...)
	slices.SortStableFunc(byMin, func(a, b Template) int {
		return cmp.Compare(a.MinPower, b.MinPower)
	})

	reach := byMin[0].MaxPower
	for _, t := range byMin[1:] {
		if t.MinPower > reach {
			return fmt.Errorf("no opponent covers power scores between %.2f and %.2f", reach, t.MinPower)
		}
		reach = max(reach, t.MaxPower)
	}
	return nil
}

// Select returns the first opponent whose range contains score. Scores above
// every range get the opponent with the highest range, scores below every
// range the one with the lowest.
func (b *Bestiary) Select(score float64) Opponent {
	for _, t := range b.templates {
		if score >= t.MinPower && score <= t.MaxPower {
			return t.Opponent
		}
	}
	if score > b.templates[b.strongest].MaxPower {
		return b.templates[b.strongest].Opponent
	}
	return b.templates[b.weakest].Opponent
}

// Templates returns the configured templates in order
func (b *Bestiary) Templates() []Template {
	return append([]Template(nil), b.templates...)
}

// EquippedSpell is the scaled cost and power of one equipped spell
type EquippedSpell struct {
	Cost  int
	Power int
}

// PowerScore weighs a character for opponent selection
func PowerScore(p *character.Profile, spells []EquippedSpell) float64 {
	score := 0.05*float64(p.MaxHP) +
		1.5*float64(p.Attack) +
		1.0*float64(p.Defense) +
		0.01*float64(p.Mana)
	for _, s := range spells {
		score += 0.10*float64(s.Power) + 0.05*float64(s.Cost)
	}
	return score
}
