package character

import (
	"fmt"
	"math"
)

// ClassID names a class archetype
type ClassID string

const (
	ClassArcher   ClassID = "archer"
	ClassAssassin ClassID = "assassin"
	ClassSoldier  ClassID = "soldier"
	ClassMage     ClassID = "mage"
)

// Archetype is the multiplier bundle a class applies to base stats
type Archetype struct {
	ID                ClassID `yaml:"id"`
	Name              string  `yaml:"name"`
	HPMultiplier      float64 `yaml:"hp_multiplier"`
	AttackMultiplier  float64 `yaml:"attack_multiplier"`
	DefenseMultiplier float64 `yaml:"defense_multiplier"`
	// DefenseOverride replaces the multiplied defense when set
	DefenseOverride *int `yaml:"defense_override,omitempty"`
	Mana            int  `yaml:"mana"`
	// Caster classes can equip and cast spells
	Caster bool `yaml:"caster"`
}

// Derive computes the stats a character gets on choosing this class. Hit points
// never drop below 1 and attack/defense never below 0.
func (a *Archetype) Derive(base Stats) Stats {
	defense := max(0, round(float64(base.Defense)*a.DefenseMultiplier))
	if a.DefenseOverride != nil {
		defense = *a.DefenseOverride
	}

	return Stats{
		MaxHP:   max(1, round(float64(base.MaxHP)*a.HPMultiplier)),
		Attack:  max(0, round(float64(base.Attack)*a.AttackMultiplier)),
		Defense: defense,
		Mana:    a.Mana,
	}
}

// Classes is the set of selectable archetypes
type Classes struct {
	byID  map[ClassID]*Archetype
	order []ClassID
}

// NewClasses indexes archetypes, keeping their order for listings
func NewClasses(archetypes []*Archetype) (*Classes, error) {
	c := &Classes{byID: make(map[ClassID]*Archetype, len(archetypes))}
	for _, a := range archetypes {
		if a == nil || a.ID == "" {
			return nil, fmt.Errorf("class archetype without id")
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate class archetype %q", a.ID)
		}
		c.byID[a.ID] = a
		c.order = append(c.order, a.ID)
	}
	return c, nil
}

// Get looks up an archetype by id
func (c *Classes) Get(id ClassID) (*Archetype, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns archetypes in definition order
func (c *Classes) All() []*Archetype {
	out := make([]*Archetype, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// round is half away from zero
func round(v float64) int {
	return int(math.Round(v))
}
