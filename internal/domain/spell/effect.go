package spell

import "fmt"

// EffectKind names an effect variant as written in game data
type EffectKind string

const (
	EffectShield    EffectKind = "shield"
	EffectLifesteal EffectKind = "lifesteal"
	EffectDamage    EffectKind = "damage"
)

// Target is what a spell resolves against. A battle session implements it.
type Target interface {
	OpponentDefense() int
	// HitOpponent lowers opponent hp, never below 0, and returns the amount removed
	HitOpponent(damage int) int
	// HealPlayer raises player hp up to its max and returns the amount healed
	HealPlayer(amount int) int
	RaiseShield(amount int)
}

// Outcome reports what a resolved effect did
type Outcome struct {
	Kind     EffectKind
	Damage   int
	Healed   int
	Shielded int
}

// Effect is one spell behaviour. Variants are parsed from game data once.
type Effect interface {
	Kind() EffectKind
	Resolve(t Target, power int) Outcome
}

// Shield adds power to the absorption pool
type Shield struct{}

func (Shield) Kind() EffectKind { return EffectShield }

func (Shield) Resolve(t Target, power int) Outcome {
	t.RaiseShield(power)
	return Outcome{Kind: EffectShield, Shielded: power}
}

// Lifesteal damages the opponent and heals the caster for half the damage
type Lifesteal struct{}

func (Lifesteal) Kind() EffectKind { return EffectLifesteal }

func (Lifesteal) Resolve(t Target, power int) Outcome {
	damage := max(0, power-t.OpponentDefense())
	t.HitOpponent(damage)
	healed := t.HealPlayer(damage / 2)
	return Outcome{Kind: EffectLifesteal, Damage: damage, Healed: healed}
}

// Damage only damages the opponent
type Damage struct{}

func (Damage) Kind() EffectKind { return EffectDamage }

func (Damage) Resolve(t Target, power int) Outcome {
	damage := max(0, power-t.OpponentDefense())
	t.HitOpponent(damage)
	return Outcome{Kind: EffectDamage, Damage: damage}
}

// ParseEffect turns a game-data effect name into its variant
func ParseEffect(kind string) (Effect, error) {
	switch EffectKind(kind) {
	case EffectShield:
		return Shield{}, nil
	case EffectLifesteal:
		return Lifesteal{}, nil
	case EffectDamage:
		return Damage{}, nil
	default:
		return nil, fmt.Errorf("unknown spell effect %q", kind)
	}
}
