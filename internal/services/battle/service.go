package battle

//go:generate mockgen -destination=mock/mock.go -package=mockbattle -source=service.go

import (
	"context"
	"errors"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	battleDomain "github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/Kkzin999/sun/internal/logger"
	"github.com/Kkzin999/sun/internal/repositories/profiles"
	"github.com/Kkzin999/sun/internal/repositories/spellslots"
	"github.com/Kkzin999/sun/internal/telemetry"
	"github.com/Kkzin999/sun/internal/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrChannelUnreachable is returned by a Notifier when the battle channel was
// deleted or the bot lost access to it. The session is torn down.
var ErrChannelUnreachable = errors.New("battle channel unreachable")

var tracer = telemetry.Tracer("github.com/Kkzin999/sun/internal/services/battle")

// Spell experience per cast, and the extra granted when the cast kills
const (
	CastSpellXP = 1
	KillSpellXP = 2
)

// TeardownReason says why a session is removed outside of victory or defeat
type TeardownReason string

const (
	// ReasonAdmin writes the final vitals back before removing the session
	ReasonAdmin TeardownReason = "admin"
	// ReasonChannelUnreachable removes the session and writes nothing beyond
	// the last persisted strike
	ReasonChannelUnreachable TeardownReason = "channel_unreachable"
)

// Service defines the battle service interface
type Service interface {
	// StartHunt picks an opponent by power score and opens a session
	StartHunt(ctx context.Context, ref character.Ref, channelID string) (*battleDomain.Session, error)

	// BasicAttack hits the opponent with the snapshotted attack stat
	BasicAttack(ctx context.Context, ref character.Ref) (*AttackResult, error)

	// CastSpell casts the spell in slot index
	CastSpell(ctx context.Context, ref character.Ref, index int) (*CastResult, error)

	// OpponentStrike resolves the opponent's attack if it is due at now.
	// Returns nil without error when the character has no session.
	OpponentStrike(ctx context.Context, ref character.Ref, now time.Time) (*StrikeResult, error)

	// Teardown removes a session without settling it
	Teardown(ctx context.Context, ref character.Ref, reason TeardownReason) (*battleDomain.Session, error)

	// Status returns a copy of the live session
	Status(ref character.Ref) (*battleDomain.Session, error)
}

// Notifier posts battle events that happen outside a command, such as
// opponent strikes, to the hunt's channel.
type Notifier interface {
	Announce(ctx context.Context, channelID, message string) error
}

// Locker serialises work per character. *keylock.Locker satisfies it.
type Locker interface {
	Lock(key string) (unlock func())
}

// Settlement is the end of a hunt
type Settlement struct {
	Victory bool
	Loot    int
	Profile *character.Profile
}

// AttackResult is returned by BasicAttack
type AttackResult struct {
	Session    *battleDomain.Session
	Damage     int
	Settlement *Settlement
}

// CastResult is returned by CastSpell
type CastResult struct {
	Session    *battleDomain.Session
	Spell      *spell.Archetype
	Slot       spell.Slot
	Cost       int
	Outcome    spell.Outcome
	Settlement *Settlement
}

// StrikeResult is returned by OpponentStrike. Struck is false when the attack
// was not due yet.
type StrikeResult struct {
	Session    *battleDomain.Session
	Struck     bool
	Absorbed   int
	Damage     int
	Settlement *Settlement
}

type service struct {
	table        *battleDomain.Table
	profiles     profiles.Repository
	spellSlots   spellslots.Repository
	classes      *character.Classes
	spells       *spell.Catalog
	bestiary     *battleDomain.Bestiary
	locker       Locker
	notifier     Notifier
	uuid         uuid.Generator
	timeProvider clock.TimeProvider
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Table        *battleDomain.Table    // Required, shared with the character service and scheduler
	Profiles     profiles.Repository    // Required
	SpellSlots   spellslots.Repository  // Required
	Classes      *character.Classes     // Required
	Spells       *spell.Catalog         // Required
	Bestiary     *battleDomain.Bestiary // Required
	Locker       Locker                 // Required
	Notifier     Notifier               // Optional, strikes are not announced without it
	UUID         uuid.Generator         // Optional
	TimeProvider clock.TimeProvider     // Optional
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Table == nil {
		panic("session table is required")
	}
	if cfg.Profiles == nil || cfg.SpellSlots == nil {
		panic("profile and spell slot repositories are required")
	}
	if cfg.Classes == nil || cfg.Spells == nil || cfg.Bestiary == nil {
		panic("game data is required")
	}
	if cfg.Locker == nil {
		panic("locker is required")
	}

	svc := &service{
		table:        cfg.Table,
		profiles:     cfg.Profiles,
		spellSlots:   cfg.SpellSlots,
		classes:      cfg.Classes,
		spells:       cfg.Spells,
		bestiary:     cfg.Bestiary,
		locker:       cfg.Locker,
		notifier:     cfg.Notifier,
		uuid:         cfg.UUID,
		timeProvider: cfg.TimeProvider,
	}

	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = clock.NewRealTimeProvider()
	}

	return svc
}

func (s *service) StartHunt(ctx context.Context, ref character.Ref, channelID string) (_ *battleDomain.Session, err error) {
	ctx, span := startSpan(ctx, "battle.StartHunt", ref)
	defer func() { endSpan(span, err) }()

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	if s.table.InBattle(ref) {
		return nil, dnderr.AlreadyInBattle(ref.CharacterID)
	}

	p, err := s.profiles.Get(ctx, ref)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load profile").
			WithMeta("ref", ref.Key())
	}
	if p.Exhausted() {
		return nil, dnderr.Exhausted(ref.CharacterID)
	}

	equipped, err := s.equippedSpells(ctx, p)
	if err != nil {
		return nil, err
	}

	score := battleDomain.PowerScore(p, equipped)
	opponent := s.bestiary.Select(score)

	session := battleDomain.NewSession(s.uuid.New(), channelID, p, opponent, s.timeProvider.Now())
	if !s.table.Put(session) {
		return nil, dnderr.AlreadyInBattle(ref.CharacterID)
	}

	span.SetAttributes(
		attribute.String("battle.session_id", session.ID),
		attribute.String("battle.opponent", opponent.Name),
		attribute.Float64("battle.power_score", score),
	)
	logger.Info("Hunt started",
		"ref", ref.Key(),
		"session_id", session.ID,
		"opponent", opponent.Name,
		"power_score", score,
	)

	return session.Clone(), nil
}

// equippedSpells returns the scaled spells that count toward the power score.
// Only caster classes have any.
func (s *service) equippedSpells(ctx context.Context, p *character.Profile) ([]battleDomain.EquippedSpell, error) {
	if !s.isCaster(p.Class) {
		return nil, nil
	}

	slots, err := s.spellSlots.GetSlots(ctx, p.Ref())
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load spell slots").
			WithMeta("ref", p.Ref().Key())
	}

	var equipped []battleDomain.EquippedSpell
	for _, slot := range slots {
		if slot.Empty() {
			continue
		}
		archetype, ok := s.spells.Get(slot.SpellID)
		if !ok {
			continue
		}
		cost, power := spell.Scale(archetype, slot.Level)
		equipped = append(equipped, battleDomain.EquippedSpell{Cost: cost, Power: power})
	}
	return equipped, nil
}

func (s *service) BasicAttack(ctx context.Context, ref character.Ref) (_ *AttackResult, err error) {
	ctx, span := startSpan(ctx, "battle.BasicAttack", ref)
	defer func() { endSpan(span, err) }()

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	session, ok := s.table.Get(ref)
	if !ok {
		return nil, dnderr.NoActiveBattle(ref.CharacterID)
	}

	result := &AttackResult{Damage: session.BasicAttack()}
	if session.OpponentDefeated() {
		result.Settlement = s.settle(ctx, session, true)
	}
	result.Session = session.Clone()

	return result, nil
}

func (s *service) CastSpell(ctx context.Context, ref character.Ref, index int) (_ *CastResult, err error) {
	ctx, span := startSpan(ctx, "battle.CastSpell", ref)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("battle.slot", index))

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	session, ok := s.table.Get(ref)
	if !ok {
		return nil, dnderr.NoActiveBattle(ref.CharacterID)
	}
	if !s.isCaster(session.Class) {
		return nil, dnderr.ClassNotCaster(string(session.Class))
	}
	if !spell.ValidIndex(index) {
		return nil, dnderr.InvalidArgumentf("spell slot must be between 1 and %d, got %d", spell.MaxSlots, index).
			WithMeta("slot", index)
	}

	slot, err := s.slot(ctx, ref, index)
	if err != nil {
		return nil, err
	}
	if slot.Empty() {
		return nil, dnderr.SlotEmpty(index)
	}

	archetype, ok := s.spells.Get(slot.SpellID)
	if !ok {
		return nil, dnderr.InvalidSpellArchetype(slot.SpellID)
	}

	cost, power := spell.Scale(archetype, slot.Level)
	if !session.SpendMana(cost) {
		return nil, dnderr.InsufficientMana(cost, session.PlayerMana)
	}

	outcome := archetype.Effect.Resolve(session, power)

	xp := CastSpellXP
	if session.OpponentDefeated() {
		xp += KillSpellXP
	}
	progressed := spell.ApplyExperience(slot, xp)
	if progressed != slot {
		if err := s.spellSlots.SaveSlot(ctx, progressed); err != nil {
			logger.Warn("Failed to save spell progress", "ref", ref.Key(), "slot", index, "error", err)
		}
	}

	result := &CastResult{
		Spell:   archetype,
		Slot:    progressed,
		Cost:    cost,
		Outcome: outcome,
	}

	if session.OpponentDefeated() {
		result.Settlement = s.settle(ctx, session, true)
	} else {
		s.writeVitals(ctx, session)
	}
	result.Session = session.Clone()

	logger.Debug("Spell cast",
		"ref", ref.Key(),
		"spell", archetype.ID,
		"cost", cost,
		"power", power,
		"effect", outcome.Kind,
	)

	return result, nil
}

func (s *service) slot(ctx context.Context, ref character.Ref, index int) (spell.Slot, error) {
	slots, err := s.spellSlots.GetSlots(ctx, ref)
	if err != nil {
		return spell.Slot{}, dnderr.Wrap(err, "failed to load spell slots").
			WithMeta("ref", ref.Key())
	}
	for _, slot := range slots {
		if slot.Index == index {
			return slot, nil
		}
	}
	return spell.NewSlot(ref, index, nil), nil
}

func (s *service) OpponentStrike(ctx context.Context, ref character.Ref, now time.Time) (_ *StrikeResult, err error) {
	ctx, span := startSpan(ctx, "battle.OpponentStrike", ref)
	defer func() { endSpan(span, err) }()

	result, channelID, message := s.strike(ctx, ref, now)
	if result == nil || !result.Struck {
		return result, nil
	}

	if s.notifier != nil {
		if err := s.notifier.Announce(ctx, channelID, message); err != nil {
			return result, dnderr.Wrap(err, "failed to announce opponent strike").
				WithMeta("ref", ref.Key()).
				WithMeta("channel_id", channelID)
		}
	}

	return result, nil
}

// strike mutates the session under the character's lock. The announcement is
// sent by the caller after the lock is released.
func (s *service) strike(ctx context.Context, ref character.Ref, now time.Time) (*StrikeResult, string, string) {
	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	session, ok := s.table.Get(ref)
	if !ok {
		return nil, "", ""
	}

	hit, struck := session.Strike(now)
	if !struck {
		return &StrikeResult{Session: session.Clone()}, "", ""
	}

	result := &StrikeResult{
		Struck:   true,
		Absorbed: hit.Absorbed,
		Damage:   hit.Damage,
	}

	var message string
	if session.PlayerDefeated() {
		result.Settlement = s.settle(ctx, session, false)
		message = defeatMessage(session)
	} else {
		s.writeVitals(ctx, session)
		message = strikeMessage(session, hit)
	}
	result.Session = session.Clone()

	return result, session.ChannelID, message
}

func (s *service) Teardown(ctx context.Context, ref character.Ref, reason TeardownReason) (_ *battleDomain.Session, err error) {
	ctx, span := startSpan(ctx, "battle.Teardown", ref)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("battle.teardown_reason", string(reason)))

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	session, ok := s.table.Remove(ref)
	if !ok {
		return nil, dnderr.NoActiveBattle(ref.CharacterID)
	}

	if reason == ReasonAdmin {
		s.writeVitals(ctx, session)
	}

	logger.Info("Hunt torn down", "ref", ref.Key(), "session_id", session.ID, "reason", reason)
	return session.Clone(), nil
}

func (s *service) Status(ref character.Ref) (*battleDomain.Session, error) {
	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	session, ok := s.table.Get(ref)
	if !ok {
		return nil, dnderr.NoActiveBattle(ref.CharacterID)
	}
	return session.Clone(), nil
}

// settle is the single write-back point at the end of a hunt. A failed write
// is logged; the session is removed either way.
func (s *service) settle(ctx context.Context, session *battleDomain.Session, victory bool) *Settlement {
	ref := session.Ref()
	s.table.Remove(ref)

	settlement := &Settlement{Victory: victory}
	if victory {
		settlement.Loot = session.Opponent.Loot
	}

	p, err := s.profiles.Get(ctx, ref)
	if err != nil {
		logger.Error("Failed to load profile for settlement", "ref", ref.Key(), "session_id", session.ID, "error", err)
		return settlement
	}

	p.SetVitals(session.PlayerHP, session.PlayerMana)
	p.Currency += settlement.Loot

	if err := s.profiles.Upsert(ctx, p); err != nil {
		logger.Error("Failed to save settlement", "ref", ref.Key(), "session_id", session.ID, "error", err)
	}
	settlement.Profile = p

	logger.Info("Hunt settled",
		"ref", ref.Key(),
		"session_id", session.ID,
		"opponent", session.Opponent.Name,
		"victory", victory,
		"loot", settlement.Loot,
	)

	return settlement
}

func (s *service) writeVitals(ctx context.Context, session *battleDomain.Session) {
	ref := session.Ref()

	p, err := s.profiles.Get(ctx, ref)
	if err != nil {
		logger.Warn("Failed to load profile for vitals", "ref", ref.Key(), "error", err)
		return
	}

	p.SetVitals(session.PlayerHP, session.PlayerMana)
	if err := s.profiles.Upsert(ctx, p); err != nil {
		logger.Warn("Failed to save vitals", "ref", ref.Key(), "error", err)
	}
}

func (s *service) isCaster(class character.ClassID) bool {
	archetype, ok := s.classes.Get(class)
	return ok && archetype.Caster
}

func startSpan(ctx context.Context, name string, ref character.Ref) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("community_id", ref.CommunityID),
		attribute.String("character_id", ref.CharacterID),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
