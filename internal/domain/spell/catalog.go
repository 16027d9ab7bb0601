// Package spell holds the spell catalog, level scaling and the rarity ladder
// that spell experience climbs.
package spell

import (
	"fmt"
	"math"

	"github.com/Kkzin999/sun/internal/domain/character"
)

// MaxSlots is how many spells a caster can have equipped
const MaxSlots = 3

// Archetype is a catalog entry
type Archetype struct {
	ID          string
	Name        string
	Description string
	BaseCost    int
	BasePower   int
	Rarity      Rarity
	Effect      Effect
}

// Scale returns mana cost and power of the archetype at level. Cost grows by
// 1.5x per level and power by 1.25x.
func Scale(a *Archetype, level int) (cost, power int) {
	if level < 1 {
		level = 1
	}
	steps := float64(level - 1)
	cost = int(math.Round(float64(a.BaseCost) * math.Pow(1.5, steps)))
	power = int(math.Round(float64(a.BasePower) * math.Pow(1.25, steps)))
	return cost, power
}

// Catalog is the static spell library plus the loadout new casters get
type Catalog struct {
	byID    map[string]*Archetype
	order   []string
	loadout []string
}

// NewCatalog validates and indexes archetypes. loadout lists the spell id for
// slots 1..n; an empty id leaves that slot empty.
func NewCatalog(archetypes []*Archetype, loadout []string) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Archetype, len(archetypes))}
	for _, a := range archetypes {
		if a == nil || a.ID == "" {
			return nil, fmt.Errorf("spell archetype without id")
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate spell archetype %q", a.ID)
		}
		if a.Effect == nil {
			return nil, fmt.Errorf("spell %q has no effect", a.ID)
		}
		if _, err := ParseRarity(string(a.Rarity)); err != nil {
			return nil, fmt.Errorf("spell %q: %w", a.ID, err)
		}
		c.byID[a.ID] = a
		c.order = append(c.order, a.ID)
	}

	if len(loadout) > MaxSlots {
		return nil, fmt.Errorf("default loadout has %d spells, at most %d slots exist", len(loadout), MaxSlots)
	}
	for _, id := range loadout {
		if id == "" {
			continue
		}
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("default loadout references unknown spell %q", id)
		}
	}
	c.loadout = append([]string(nil), loadout...)

	return c, nil
}

// Get looks up an archetype by id
func (c *Catalog) Get(id string) (*Archetype, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns archetypes in definition order
func (c *Catalog) All() []*Archetype {
	out := make([]*Archetype, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// DefaultSlots materializes the starting loadout for a character
func (c *Catalog) DefaultSlots(ref character.Ref) []Slot {
	slots := make([]Slot, 0, MaxSlots)
	for i := 1; i <= MaxSlots; i++ {
		var a *Archetype
		if i <= len(c.loadout) {
			a = c.byID[c.loadout[i-1]]
		}
		slots = append(slots, NewSlot(ref, i, a))
	}
	return slots
}
