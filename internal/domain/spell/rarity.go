package spell

import (
	"fmt"
	"math"
)

// Rarity is the quality band of a spell instance
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// MythicThreshold is the legendary xp total that promotes straight to mythic
const MythicThreshold = 1000

type tier struct {
	rank       int
	xpPerLevel int
	maxLevel   int
	next       Rarity
}

var ladder = map[Rarity]tier{
	RarityCommon:    {rank: 0, xpPerLevel: 10, maxLevel: 5, next: RarityRare},
	RarityRare:      {rank: 1, xpPerLevel: 25, maxLevel: 5, next: RarityEpic},
	RarityEpic:      {rank: 2, xpPerLevel: 50, maxLevel: 5, next: RarityLegendary},
	RarityLegendary: {rank: 3, xpPerLevel: 400, maxLevel: 3, next: RarityMythic},
	RarityMythic:    {rank: 4, xpPerLevel: math.MaxInt, maxLevel: math.MaxInt},
}

// ParseRarity validates a rarity name
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if _, ok := ladder[r]; !ok {
		return "", fmt.Errorf("unknown rarity %q", s)
	}
	return r, nil
}

// Rank is the position on the ladder, common being 0
func (r Rarity) Rank() int {
	return ladder[r].rank
}

// Threshold is the spell xp needed per level at this rarity. Mythic never levels.
func (r Rarity) Threshold() int {
	return ladder[r].xpPerLevel
}

// MaxLevel is the level at which the spell is promoted
func (r Rarity) MaxLevel() int {
	return ladder[r].maxLevel
}

// Next is the rarity a promotion lands on; mythic is terminal
func (r Rarity) Next() (Rarity, bool) {
	t := ladder[r]
	return t.next, t.next != ""
}

// Terminal reports whether the rarity has no further promotion
func (r Rarity) Terminal() bool {
	_, ok := r.Next()
	return !ok
}
