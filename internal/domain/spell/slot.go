package spell

import "github.com/Kkzin999/sun/internal/domain/character"

// Slot is one equipped spell and its progress
type Slot struct {
	CommunityID string `json:"community_id"`
	CharacterID string `json:"character_id"`
	Index       int    `json:"index"`
	SpellID     string `json:"spell_id,omitempty"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	Rarity      Rarity `json:"rarity,omitempty"`
	Locked      bool   `json:"locked"`
}

// ValidIndex reports whether i names a slot
func ValidIndex(i int) bool {
	return i >= 1 && i <= MaxSlots
}

// NewSlot returns a freshly equipped slot. A nil archetype yields an empty slot.
func NewSlot(ref character.Ref, index int, a *Archetype) Slot {
	s := Slot{
		CommunityID: ref.CommunityID,
		CharacterID: ref.CharacterID,
		Index:       index,
		Level:       1,
	}
	if a != nil {
		s.SpellID = a.ID
		s.Rarity = a.Rarity
	}
	return s
}

// Ref returns the owning character
func (s Slot) Ref() character.Ref {
	return character.Ref{CommunityID: s.CommunityID, CharacterID: s.CharacterID}
}

// Empty reports whether no spell is equipped
func (s Slot) Empty() bool {
	return s.SpellID == ""
}

// XPToNextLevel is the spell xp still needed to level. Zero when locked or mythic.
func (s Slot) XPToNextLevel() int {
	if s.Locked || s.Rarity.Terminal() {
		return 0
	}
	return s.Rarity.Threshold() - s.XP
}

// ApplyExperience adds spell xp and resolves level-ups and promotion. Promotion
// moves to the next rarity, keeps the level, zeroes xp and locks the slot;
// leftover xp is discarded.
func ApplyExperience(s Slot, amount int) Slot {
	if s.Locked || s.Empty() || amount <= 0 {
		return s
	}

	s.XP += amount
	for {
		if s.Rarity.Terminal() {
			break
		}
		if s.Rarity == RarityLegendary && s.XP >= MythicThreshold {
			s.promote(RarityMythic)
			break
		}
		if s.Level >= s.Rarity.MaxLevel() {
			next, _ := s.Rarity.Next()
			s.promote(next)
			break
		}
		if s.XP < s.Rarity.Threshold() {
			break
		}
		s.XP -= s.Rarity.Threshold()
		s.Level++
	}

	return s
}

func (s *Slot) promote(to Rarity) {
	s.Rarity = to
	s.XP = 0
	s.Locked = true
}

// AscendCost is the token price to unlock a promoted slot. ok is false when the
// slot cannot ascend: it is unlocked, empty, or already mythic.
func AscendCost(s Slot) (cost int, ok bool) {
	if !s.Locked || s.Empty() || s.Rarity.Terminal() {
		return 0, false
	}
	return s.Rarity.Rank(), true
}

// Ascend unlocks a promoted slot so it restarts progress at its current rarity
func Ascend(s Slot) Slot {
	s.Locked = false
	s.Level = 1
	s.XP = 0
	return s
}
