package character

//go:generate mockgen -destination=mock/mock.go -package=mockcharacter -source=service.go

import (
	"context"
	"sync"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	"github.com/Kkzin999/sun/internal/dice"
	characterDomain "github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/progression"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/Kkzin999/sun/internal/logger"
	"github.com/Kkzin999/sun/internal/repositories/profiles"
	"github.com/Kkzin999/sun/internal/repositories/spellslots"
)

// DefaultMessageXP is the passive experience rolled per eligible chat message
var DefaultMessageXP = dice.Notation{Count: 1, Sides: 11, Bonus: 14}

// DefaultMessageCooldown is how long a character waits between passive grants
const DefaultMessageCooldown = time.Minute

// Service defines the character service interface
type Service interface {
	// GetProfile returns the profile, defaults included for new characters
	GetProfile(ctx context.Context, ref characterDomain.Ref) (*characterDomain.Profile, error)

	// ChooseClass applies a class archetype once
	ChooseClass(ctx context.Context, ref characterDomain.Ref, class characterDomain.ClassID) (*characterDomain.Profile, error)

	// GrantExperience adds experience and pays out level rewards
	GrantExperience(ctx context.Context, ref characterDomain.Ref, amount int) (*GrantResult, error)

	// GrantMessageExperience rolls passive experience for a chat message.
	// Returns nil without error while the character is on cooldown.
	GrantMessageExperience(ctx context.Context, ref characterDomain.Ref) (*GrantResult, error)

	// SetExperience overwrites experience and level without paying rewards
	SetExperience(ctx context.Context, ref characterDomain.Ref, experience int) (*characterDomain.Profile, error)

	// Rest refills hit points and mana outside of battle
	Rest(ctx context.Context, ref characterDomain.Ref) (*characterDomain.Profile, error)

	GetSpellSlots(ctx context.Context, ref characterDomain.Ref) ([]*SlotView, error)
	InspectSpell(ctx context.Context, ref characterDomain.Ref, index int) (*SlotView, error)
	EquipSpell(ctx context.Context, ref characterDomain.Ref, index int, spellID string) (*SlotView, error)

	// AscendSpell spends tokens to unlock a promoted slot
	AscendSpell(ctx context.Context, ref characterDomain.Ref, index int) (*AscendResult, error)

	ListSpells() []*spell.Archetype
	ListClasses() []*characterDomain.Archetype
}

// RewardNotifier grants tier unlocks outside the game, e.g. chat roles
type RewardNotifier interface {
	GrantLevelRewards(ctx context.Context, ref characterDomain.Ref, level int) error
}

// BattleChecker reports whether a character has a live hunt. *battle.Table satisfies it.
type BattleChecker interface {
	InBattle(ref characterDomain.Ref) bool
}

// Locker serialises work per character. *keylock.Locker satisfies it.
type Locker interface {
	Lock(key string) (unlock func())
}

// GrantResult is a profile after an experience grant
type GrantResult struct {
	Profile *characterDomain.Profile
	Gain    progression.Gain
}

// SlotView is a slot joined with its catalog entry and scaled numbers
type SlotView struct {
	Slot      spell.Slot
	Archetype *spell.Archetype // nil for an empty slot
	Cost      int
	Power     int
	XPToNext  int
}

// AscendResult is returned after a successful ascend
type AscendResult struct {
	Slot       *SlotView
	Cost       int
	TokensLeft int
}

type service struct {
	profiles        profiles.Repository
	spellSlots      spellslots.Repository
	classes         *characterDomain.Classes
	spells          *spell.Catalog
	calculator      *progression.Calculator
	baseStats       characterDomain.Stats
	locker          Locker
	battles         BattleChecker
	notifier        RewardNotifier
	roller          dice.Roller
	messageXP       dice.Notation
	messageCooldown time.Duration
	timeProvider    clock.TimeProvider

	cooldownMu sync.Mutex
	lastGrant  map[string]time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Profiles   profiles.Repository      // Required
	SpellSlots spellslots.Repository    // Required
	Classes    *characterDomain.Classes // Required
	Spells     *spell.Catalog           // Required
	Calculator *progression.Calculator  // Required
	BaseStats  characterDomain.Stats    // Required
	Locker     Locker                   // Required, shared with the battle manager
	Battles    BattleChecker            // Optional, nothing is ever in battle without it
	Notifier   RewardNotifier           // Optional

	Roller          dice.Roller        // Optional, defaults to random
	MessageXP       dice.Notation      // Optional, defaults to 1d11+14
	MessageCooldown time.Duration      // Optional, defaults to one minute
	TimeProvider    clock.TimeProvider // Optional
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Profiles == nil {
		panic("profile repository is required")
	}
	if cfg.SpellSlots == nil {
		panic("spell slot repository is required")
	}
	if cfg.Classes == nil || cfg.Spells == nil {
		panic("class and spell catalogs are required")
	}
	if cfg.Calculator == nil {
		panic("progression calculator is required")
	}
	if cfg.Locker == nil {
		panic("locker is required")
	}
	if cfg.BaseStats.MaxHP <= 0 {
		panic("base stats are required")
	}

	svc := &service{
		profiles:        cfg.Profiles,
		spellSlots:      cfg.SpellSlots,
		classes:         cfg.Classes,
		spells:          cfg.Spells,
		calculator:      cfg.Calculator,
		baseStats:       cfg.BaseStats,
		locker:          cfg.Locker,
		battles:         cfg.Battles,
		notifier:        cfg.Notifier,
		roller:          cfg.Roller,
		messageXP:       cfg.MessageXP,
		messageCooldown: cfg.MessageCooldown,
		timeProvider:    cfg.TimeProvider,
		lastGrant:       make(map[string]time.Time),
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.messageXP.Count == 0 {
		svc.messageXP = DefaultMessageXP
	}
	if svc.messageCooldown <= 0 {
		svc.messageCooldown = DefaultMessageCooldown
	}
	if svc.timeProvider == nil {
		svc.timeProvider = clock.NewRealTimeProvider()
	}

	return svc
}

func (s *service) GetProfile(ctx context.Context, ref characterDomain.Ref) (*characterDomain.Profile, error) {
	p, err := s.profiles.Get(ctx, ref)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load profile").
			WithMeta("ref", ref.Key())
	}
	return p, nil
}

func (s *service) ChooseClass(ctx context.Context, ref characterDomain.Ref, class characterDomain.ClassID) (*characterDomain.Profile, error) {
	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	if s.inBattle(ref) {
		return nil, dnderr.AlreadyInBattle(ref.CharacterID)
	}

	archetype, ok := s.classes.Get(class)
	if !ok {
		return nil, dnderr.InvalidClass(string(class))
	}

	p, err := s.GetProfile(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p.HasClass() {
		return nil, dnderr.ClassAlreadyChosen(string(p.Class))
	}

	p.Class = archetype.ID
	p.ApplyStats(archetype.Derive(s.baseStats))

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to save class choice").
			WithMeta("ref", ref.Key())
	}

	if archetype.Caster {
		// Reading materializes the default loadout
		if _, err := s.spellSlots.GetSlots(ctx, ref); err != nil {
			return nil, dnderr.Wrap(err, "failed to create spell slots").
				WithMeta("ref", ref.Key())
		}
	}

	logger.Info("Class chosen", "ref", ref.Key(), "class", archetype.ID)
	return p, nil
}

func (s *service) GrantExperience(ctx context.Context, ref characterDomain.Ref, amount int) (*GrantResult, error) {
	if amount <= 0 {
		return nil, dnderr.InvalidArgumentf("experience amount must be positive, got %d", amount)
	}

	result, err := s.grant(ctx, ref, amount)
	if err != nil {
		return nil, err
	}
	s.notifyLevelUp(ctx, ref, result.Gain)
	return result, nil
}

func (s *service) GrantMessageExperience(ctx context.Context, ref characterDomain.Ref) (*GrantResult, error) {
	now := s.timeProvider.Now()
	if !s.takeCooldown(ref, now) {
		return nil, nil
	}

	roll, err := dice.RollNotation(s.roller, s.messageXP)
	if err != nil {
		s.releaseCooldown(ref, now)
		return nil, dnderr.Wrap(err, "failed to roll message experience")
	}

	result, err := s.grant(ctx, ref, roll.Total)
	if err != nil {
		s.releaseCooldown(ref, now)
		return nil, err
	}

	logger.Debug("Message experience granted", "ref", ref.Key(), "amount", roll.Total, "level", result.Gain.Level)
	s.notifyLevelUp(ctx, ref, result.Gain)
	return result, nil
}

func (s *service) grant(ctx context.Context, ref characterDomain.Ref, amount int) (*GrantResult, error) {
	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	p, err := s.GetProfile(ctx, ref)
	if err != nil {
		return nil, err
	}

	gain := s.calculator.Apply(p.Experience, p.Level, amount)
	p.ApplyGain(gain)

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to save experience").
			WithMeta("ref", ref.Key())
	}

	return &GrantResult{Profile: p, Gain: gain}, nil
}

// notifyLevelUp runs after the lock is released; a failed role grant never
// undoes the level gain.
func (s *service) notifyLevelUp(ctx context.Context, ref characterDomain.Ref, gain progression.Gain) {
	if gain.LevelUp == nil {
		return
	}

	logger.Info("Level up",
		"ref", ref.Key(),
		"from", gain.LevelUp.From,
		"to", gain.LevelUp.To,
		"tokens", gain.Reward.Tokens,
		"currency", gain.Reward.Currency,
	)

	if s.notifier == nil {
		return
	}
	if err := s.notifier.GrantLevelRewards(ctx, ref, gain.LevelUp.To); err != nil {
		logger.Warn("Failed to grant level rewards", "ref", ref.Key(), "level", gain.LevelUp.To, "error", err)
	}
}

// takeCooldown reserves the passive grant window for ref. It returns false
// while a previous grant is still cooling down.
func (s *service) takeCooldown(ref characterDomain.Ref, now time.Time) bool {
	s.cooldownMu.Lock()
	defer s.cooldownMu.Unlock()

	if last, ok := s.lastGrant[ref.Key()]; ok && now.Sub(last) < s.messageCooldown {
		return false
	}
	s.lastGrant[ref.Key()] = now
	return true
}

func (s *service) releaseCooldown(ref characterDomain.Ref, at time.Time) {
	s.cooldownMu.Lock()
	defer s.cooldownMu.Unlock()

	if s.lastGrant[ref.Key()].Equal(at) {
		delete(s.lastGrant, ref.Key())
	}
}

func (s *service) SetExperience(ctx context.Context, ref characterDomain.Ref, experience int) (*characterDomain.Profile, error) {
	if experience < 0 {
		return nil, dnderr.InvalidArgumentf("experience cannot be negative, got %d", experience)
	}

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	p, err := s.GetProfile(ctx, ref)
	if err != nil {
		return nil, err
	}

	previous := p.Level
	p.Experience = experience
	p.Level = progression.LevelForExperience(experience)

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to save experience").
			WithMeta("ref", ref.Key())
	}

	logger.Info("Experience set", "ref", ref.Key(), "experience", experience, "from_level", previous, "level", p.Level)
	return p, nil
}

func (s *service) Rest(ctx context.Context, ref characterDomain.Ref) (*characterDomain.Profile, error) {
	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	if s.inBattle(ref) {
		return nil, dnderr.AlreadyInBattle(ref.CharacterID)
	}

	p, err := s.GetProfile(ctx, ref)
	if err != nil {
		return nil, err
	}

	p.Restore()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to save rest").
			WithMeta("ref", ref.Key())
	}
	return p, nil
}

func (s *service) GetSpellSlots(ctx context.Context, ref characterDomain.Ref) ([]*SlotView, error) {
	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	if _, err := s.requireCaster(ctx, ref); err != nil {
		return nil, err
	}

	slots, err := s.loadSlots(ctx, ref)
	if err != nil {
		return nil, err
	}

	views := make([]*SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, s.view(slot))
	}
	return views, nil
}

func (s *service) InspectSpell(ctx context.Context, ref characterDomain.Ref, index int) (*SlotView, error) {
	if !spell.ValidIndex(index) {
		return nil, invalidSlot(index)
	}

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	if _, err := s.requireCaster(ctx, ref); err != nil {
		return nil, err
	}

	slot, err := s.loadSlot(ctx, ref, index)
	if err != nil {
		return nil, err
	}
	if slot.Empty() {
		return nil, dnderr.SlotEmpty(index)
	}
	if _, ok := s.spells.Get(slot.SpellID); !ok {
		return nil, dnderr.InvalidSpellArchetype(slot.SpellID)
	}

	return s.view(slot), nil
}

func (s *service) EquipSpell(ctx context.Context, ref characterDomain.Ref, index int, spellID string) (*SlotView, error) {
	if !spell.ValidIndex(index) {
		return nil, invalidSlot(index)
	}

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	if _, err := s.requireCaster(ctx, ref); err != nil {
		return nil, err
	}
	if s.inBattle(ref) {
		return nil, dnderr.ReequipDuringBattle(index)
	}

	archetype, ok := s.spells.Get(spellID)
	if !ok {
		return nil, dnderr.InvalidSpellArchetype(spellID)
	}

	slot := spell.NewSlot(ref, index, archetype)
	if err := s.spellSlots.SaveSlot(ctx, slot); err != nil {
		return nil, dnderr.Wrap(err, "failed to equip spell").
			WithMeta("ref", ref.Key()).
			WithMeta("slot", index)
	}

	logger.Info("Spell equipped", "ref", ref.Key(), "slot", index, "spell", spellID)
	return s.view(slot), nil
}

func (s *service) AscendSpell(ctx context.Context, ref characterDomain.Ref, index int) (*AscendResult, error) {
	if !spell.ValidIndex(index) {
		return nil, invalidSlot(index)
	}

	unlock := s.locker.Lock(ref.Key())
	defer unlock()

	p, err := s.requireCaster(ctx, ref)
	if err != nil {
		return nil, err
	}
	if s.inBattle(ref) {
		return nil, dnderr.AlreadyInBattle(ref.CharacterID)
	}

	slot, err := s.loadSlot(ctx, ref, index)
	if err != nil {
		return nil, err
	}
	if slot.Empty() {
		return nil, dnderr.SlotEmpty(index)
	}

	cost, ok := spell.AscendCost(slot)
	if !ok {
		return nil, dnderr.SlotNotLocked(index)
	}
	if p.Tokens < cost {
		return nil, dnderr.InsufficientTokens(cost, p.Tokens)
	}

	// The slot is written first: a failed token write leaves a free ascend,
	// never tokens spent on a slot that stayed locked.
	ascended := spell.Ascend(slot)
	if err := s.spellSlots.SaveSlot(ctx, ascended); err != nil {
		return nil, dnderr.Wrap(err, "failed to save ascended spell").
			WithMeta("ref", ref.Key()).
			WithMeta("slot", index)
	}

	p.Tokens -= cost
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to spend tokens").
			WithMeta("ref", ref.Key())
	}

	logger.Info("Spell ascended", "ref", ref.Key(), "slot", index, "rarity", ascended.Rarity, "cost", cost)
	return &AscendResult{Slot: s.view(ascended), Cost: cost, TokensLeft: p.Tokens}, nil
}

func (s *service) ListSpells() []*spell.Archetype {
	return s.spells.All()
}

func (s *service) ListClasses() []*characterDomain.Archetype {
	return s.classes.All()
}

// requireCaster loads the profile and checks its class can use spell slots
func (s *service) requireCaster(ctx context.Context, ref characterDomain.Ref) (*characterDomain.Profile, error) {
	p, err := s.GetProfile(ctx, ref)
	if err != nil {
		return nil, err
	}

	archetype, ok := s.classes.Get(p.Class)
	if !ok || !archetype.Caster {
		return nil, dnderr.ClassNotCaster(string(p.Class))
	}
	return p, nil
}

func (s *service) loadSlots(ctx context.Context, ref characterDomain.Ref) ([]spell.Slot, error) {
	slots, err := s.spellSlots.GetSlots(ctx, ref)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load spell slots").
			WithMeta("ref", ref.Key())
	}
	return slots, nil
}

func (s *service) loadSlot(ctx context.Context, ref characterDomain.Ref, index int) (spell.Slot, error) {
	slots, err := s.loadSlots(ctx, ref)
	if err != nil {
		return spell.Slot{}, err
	}
	for _, slot := range slots {
		if slot.Index == index {
			return slot, nil
		}
	}
	return spell.NewSlot(ref, index, nil), nil
}

func (s *service) view(slot spell.Slot) *SlotView {
	v := &SlotView{Slot: slot}
	if slot.Empty() {
		return v
	}

	archetype, ok := s.spells.Get(slot.SpellID)
	if !ok {
		return v
	}
	v.Archetype = archetype
	v.Cost, v.Power = spell.Scale(archetype, slot.Level)
	v.XPToNext = slot.XPToNextLevel()
	return v
}

func (s *service) inBattle(ref characterDomain.Ref) bool {
	return s.battles != nil && s.battles.InBattle(ref)
}

func invalidSlot(index int) *dnderr.Error {
	return dnderr.InvalidArgumentf("spell slot must be between 1 and %d, got %d", spell.MaxSlots, index).
		WithMeta("slot", index)
}
