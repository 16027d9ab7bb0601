// Package progression maps accumulated experience to levels and level gains to
// rewards. Everything here is pure; callers decide what to do with a level-up.
package progression

// FirstLevelBonus is added once, the first time a character reaches level 1.
const FirstLevelBonus = 100

// ExperienceThreshold is the total experience needed to reach level:
// the triangular number of level, times 100.
func ExperienceThreshold(level int) int {
	if level <= 0 {
		return 0
	}
	return level * (level + 1) / 2 * 100
}

// LevelForExperience returns the greatest level whose threshold is <= xp.
// Gains per event are small, so the upward scan stays short in practice.
func LevelForExperience(xp int) int {
	level := 0
	for ExperienceThreshold(level+1) <= xp {
		level++
	}
	return level
}

// ExperienceToNextLevel is how much more experience reaches the next level.
func ExperienceToNextLevel(xp int) int {
	return ExperienceThreshold(LevelForExperience(xp)+1) - xp
}

// Reward is what a level gain pays out
type Reward struct {
	Tokens   int
	Currency int
}

// Add returns the sum of two rewards
func (r Reward) Add(o Reward) Reward {
	return Reward{Tokens: r.Tokens + o.Tokens, Currency: r.Currency + o.Currency}
}

// IsZero reports whether the reward pays nothing
func (r Reward) IsZero() bool {
	return r.Tokens == 0 && r.Currency == 0
}

// LevelUpEvent is returned when an experience grant raises the level. The caller
// forwards it to whatever grants tier unlocks.
type LevelUpEvent struct {
	From int
	To   int
}

// Gain is the result of applying experience to a character
type Gain struct {
	Amount       int
	Experience   int
	Level        int
	BonusApplied bool
	Reward       Reward
	LevelUp      *LevelUpEvent
}

// Calculator applies the level curve with a per-level currency bonus table.
type Calculator struct {
	levelBonuses map[int]int
}

// NewCalculator creates a Calculator. levelBonuses maps a level to the currency
// paid on reaching it; levels not in the map pay none.
func NewCalculator(levelBonuses map[int]int) *Calculator {
	bonuses := make(map[int]int, len(levelBonuses))
	for level, amount := range levelBonuses {
		bonuses[level] = amount
	}
	return &Calculator{levelBonuses: bonuses}
}

// RewardsForLevelGain pays one token per level crossed plus the currency bonus
// of every level in (prevLevel, newLevel]. Every crossed level counts, not only
// the endpoints, since one event can cross several.
func (c *Calculator) RewardsForLevelGain(prevLevel, newLevel int) Reward {
	if newLevel <= prevLevel {
		return Reward{}
	}

	reward := Reward{Tokens: newLevel - prevLevel}
	for level := prevLevel + 1; level <= newLevel; level++ {
		reward.Currency += c.levelBonuses[level]
	}
	return reward
}

// Apply adds amount to xp for a character currently at prevLevel. Crossing into
// level 1 from below adds FirstLevelBonus before the level is recomputed, which
// can push the character further.
func (c *Calculator) Apply(xp, prevLevel, amount int) Gain {
	if amount < 0 {
		amount = 0
	}

	total := xp + amount
	level := LevelForExperience(total)

	gain := Gain{Amount: amount}
	if prevLevel < 1 && level >= 1 {
		total += FirstLevelBonus
		level = LevelForExperience(total)
		gain.Amount += FirstLevelBonus
		gain.BonusApplied = true
	}

	gain.Experience = total
	gain.Level = level
	if level > prevLevel {
		gain.LevelUp = &LevelUpEvent{From: prevLevel, To: level}
		gain.Reward = c.RewardsForLevelGain(prevLevel, level)
	}

	return gain
}
