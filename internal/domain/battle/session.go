package battle

import (
	"time"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
)

var _ spell.Target = (*Session)(nil)

// Session is one live hunt. Player vitals are a snapshot taken at start and
// written back to the profile as they change.
type Session struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	CharacterID string `json:"character_id"`
	ChannelID   string `json:"channel_id"`

	Opponent   Opponent `json:"opponent"`
	OpponentHP int      `json:"opponent_hp"`

	PlayerHP      int               `json:"player_hp"`
	PlayerMaxHP   int               `json:"player_max_hp"`
	PlayerMana    int               `json:"player_mana"`
	PlayerAttack  int               `json:"player_attack"`
	PlayerDefense int               `json:"player_defense"`
	Class         character.ClassID `json:"class,omitempty"`

	Shield       int       `json:"shield"`
	NextAttackAt time.Time `json:"next_attack_at"`
	StartedAt    time.Time `json:"started_at"`
}

// NewSession snapshots the profile and schedules the first opponent attack
func NewSession(id, channelID string, p *character.Profile, opp Opponent, now time.Time) *Session {
	return &Session{
		ID:            id,
		CommunityID:   p.CommunityID,
		CharacterID:   p.CharacterID,
		ChannelID:     channelID,
		Opponent:      opp,
		OpponentHP:    opp.HitPoints,
		PlayerHP:      p.CurrentHP,
		PlayerMaxHP:   p.MaxHP,
		PlayerMana:    p.Mana,
		PlayerAttack:  p.Attack,
		PlayerDefense: p.Defense,
		Class:         p.Class,
		NextAttackAt:  now.Add(opp.AttackInterval),
		StartedAt:     now,
	}
}

// Ref returns the owning character
func (s *Session) Ref() character.Ref {
	return character.Ref{CommunityID: s.CommunityID, CharacterID: s.CharacterID}
}

func (s *Session) OpponentDefense() int {
	return s.Opponent.Defense
}

func (s *Session) HitOpponent(damage int) int {
	applied := min(max(0, damage), s.OpponentHP)
	s.OpponentHP -= applied
	return applied
}

func (s *Session) HealPlayer(amount int) int {
	healed := min(max(0, amount), s.PlayerMaxHP-s.PlayerHP)
	s.PlayerHP += healed
	return healed
}

func (s *Session) RaiseShield(amount int) {
	if amount > 0 {
		s.Shield += amount
	}
}

// BasicAttack hits the opponent with the player's attack and returns the damage
func (s *Session) BasicAttack() int {
	damage := max(0, s.PlayerAttack-s.Opponent.Defense)
	s.HitOpponent(damage)
	return damage
}

// SpendMana deducts cost, reporting false without touching state if short
func (s *Session) SpendMana(cost int) bool {
	if cost > s.PlayerMana {
		return false
	}
	s.PlayerMana -= cost
	return true
}

// OpponentDefeated reports a victory
func (s *Session) OpponentDefeated() bool {
	return s.OpponentHP <= 0
}

// PlayerDefeated reports a defeat
func (s *Session) PlayerDefeated() bool {
	return s.PlayerHP <= 0
}

// Due reports whether the opponent attacks at now
func (s *Session) Due(now time.Time) bool {
	return !now.Before(s.NextAttackAt)
}

// StrikeResult describes one opponent attack
type StrikeResult struct {
	Absorbed int
	Damage   int
}

// Strike resolves the opponent's attack if it is due. The shield soaks first,
// defense reduces what is left, and the next attack is scheduled from now.
func (s *Session) Strike(now time.Time) (StrikeResult, bool) {
	if !s.Due(now) {
		return StrikeResult{}, false
	}

	incoming := s.Opponent.Attack
	absorbed := min(s.Shield, incoming)
	s.Shield -= absorbed
	incoming -= absorbed

	damage := min(max(0, incoming-s.PlayerDefense), s.PlayerHP)
	s.PlayerHP -= damage
	s.NextAttackAt = now.Add(s.Opponent.AttackInterval)

	return StrikeResult{Absorbed: absorbed, Damage: damage}, true
}

// Clone returns a copy safe to hand outside the lock
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
