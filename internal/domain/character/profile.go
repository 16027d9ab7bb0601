package character

import (
	"time"

	"github.com/Kkzin999/sun/internal/domain/progression"
)

// Ref identifies a character within a community. Characters in different
// communities are independent even when the chat user is the same.
type Ref struct {
	CommunityID string `json:"community_id"`
	CharacterID string `json:"character_id"`
}

// Key is the string form used for locks and storage keys
func (r Ref) Key() string {
	return r.CommunityID + ":" + r.CharacterID
}

func (r Ref) String() string {
	return r.Key()
}

// Stats is the combat-relevant part of a profile
type Stats struct {
	MaxHP   int `json:"max_hp" yaml:"max_hp"`
	Attack  int `json:"attack" yaml:"attack"`
	Defense int `json:"defense" yaml:"defense"`
	Mana    int `json:"mana" yaml:"mana"`
}

// Profile is the durable per-character record
type Profile struct {
	CommunityID string  `json:"community_id"`
	CharacterID string  `json:"character_id"`
	Experience  int     `json:"experience"`
	Level       int     `json:"level"`
	Tokens      int     `json:"tokens"`
	Currency    int     `json:"currency"`
	Class       ClassID `json:"class,omitempty"`

	CurrentHP int `json:"current_hp"`
	MaxHP     int `json:"max_hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Mana      int `json:"mana"`
	MaxMana   int `json:"max_mana"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile builds the record a character starts with before any command
func NewProfile(ref Ref, base Stats) *Profile {
	p := &Profile{
		CommunityID: ref.CommunityID,
		CharacterID: ref.CharacterID,
	}
	p.ApplyStats(base)
	return p
}

// Ref returns the key this profile is stored under
func (p *Profile) Ref() Ref {
	return Ref{CommunityID: p.CommunityID, CharacterID: p.CharacterID}
}

// HasClass reports whether the one-time class choice was made
func (p *Profile) HasClass() bool {
	return p.Class != ""
}

// Stats returns the maxima currently on the profile
func (p *Profile) Stats() Stats {
	return Stats{MaxHP: p.MaxHP, Attack: p.Attack, Defense: p.Defense, Mana: p.MaxMana}
}

// ApplyStats overwrites combat stats and refills hp and mana
func (p *Profile) ApplyStats(s Stats) {
	p.MaxHP = s.MaxHP
	p.CurrentHP = s.MaxHP
	p.Attack = s.Attack
	p.Defense = s.Defense
	p.Mana = s.Mana
	p.MaxMana = s.Mana
}

// SetVitals stores hp and mana coming back from a battle, clamped to valid ranges.
func (p *Profile) SetVitals(hp, mana int) {
	p.CurrentHP = clamp(hp, 0, p.MaxHP)
	if mana < 0 {
		mana = 0
	}
	p.Mana = mana
}

// Restore refills hp and mana
func (p *Profile) Restore() {
	p.CurrentHP = p.MaxHP
	p.Mana = p.MaxMana
}

// Exhausted reports whether the character has no hp left to fight with
func (p *Profile) Exhausted() bool {
	return p.CurrentHP <= 0
}

// ApplyGain stores the outcome of a progression calculation
func (p *Profile) ApplyGain(g progression.Gain) {
	p.Experience = g.Experience
	p.Level = g.Level
	p.Tokens += g.Reward.Tokens
	p.Currency += g.Reward.Currency
}

// Clone returns a copy that shares nothing with p
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
