package battle_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	battleDomain "github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/Kkzin999/sun/internal/gamedata"
	"github.com/Kkzin999/sun/internal/keylock"
	"github.com/Kkzin999/sun/internal/repositories/profiles"
	"github.com/Kkzin999/sun/internal/repositories/spellslots"
	mockspellslots "github.com/Kkzin999/sun/internal/repositories/spellslots/mock"
	"github.com/Kkzin999/sun/internal/services/battle"
	mockbattle "github.com/Kkzin999/sun/internal/services/battle/mock"
	"github.com/Kkzin999/sun/internal/testutils"
	"github.com/Kkzin999/sun/internal/uuid"
	"github.com/Kkzin999/sun/internal/uuid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BattleServiceTestSuite runs hunts against in-memory repositories
type BattleServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	data         *gamedata.Data
	clock        *clock.Fixed
	table        *battleDomain.Table
	profiles     *profiles.InMemoryRepository
	slots        *spellslots.InMemoryRepository
	mockNotifier *mockbattle.MockNotifier
	service      battle.Service
	ctx          context.Context
	ref          character.Ref
}

func (s *BattleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.data = testutils.LoadBalance(s.T())
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.table = battleDomain.NewTable()
	s.profiles = profiles.NewInMemoryRepository(s.data.BaseStats, s.clock)
	s.slots = spellslots.NewInMemoryRepository(s.data.Spells)
	s.mockNotifier = mockbattle.NewMockNotifier(s.ctrl)
	s.ctx = context.Background()
	s.ref = character.Ref{CommunityID: "guild-1", CharacterID: "user-1"}

	s.service = s.newService(s.data.Bestiary)
}

func (s *BattleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBattleServiceSuite(t *testing.T) {
	suite.Run(t, new(BattleServiceTestSuite))
}

func (s *BattleServiceTestSuite) newService(bestiary *battleDomain.Bestiary) battle.Service {
	return battle.NewService(&battle.ServiceConfig{
		Table:        s.table,
		Profiles:     s.profiles,
		SpellSlots:   s.slots,
		Classes:      s.data.Classes,
		Spells:       s.data.Spells,
		Bestiary:     bestiary,
		Locker:       keylock.New(),
		Notifier:     s.mockNotifier,
		UUID:         &uuid.Sequence{IDs: []string{"session-1", "session-2", "session-3"}},
		TimeProvider: s.clock,
	})
}

// withOpponent swaps the bestiary for a single opponent picked at any score
func (s *BattleServiceTestSuite) withOpponent(opp battleDomain.Opponent) {
	if opp.AttackInterval == 0 {
		opp.AttackInterval = 3 * time.Second
	}
	bestiary, err := battleDomain.NewBestiary([]battleDomain.Template{
		{Opponent: opp, MinPower: 0, MaxPower: 1000},
	})
	s.Require().NoError(err)
	s.service = s.newService(bestiary)
}

func (s *BattleServiceTestSuite) saveProfile(class character.ClassID, mutate func(p *character.Profile)) *character.Profile {
	p := testutils.CreateTestProfile(s.T(), s.data, s.ref, class)
	if mutate != nil {
		mutate(p)
	}
	s.Require().NoError(s.profiles.Upsert(s.ctx, p))
	return p
}

func (s *BattleServiceTestSuite) storedProfile() *character.Profile {
	p, err := s.profiles.Get(s.ctx, s.ref)
	s.Require().NoError(err)
	return p
}

func (s *BattleServiceTestSuite) TestStartHunt_SelectsOpponentByPowerScore() {
	// 0.05*100 + 1.5*10 + 5 = 25
	session, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	s.Equal("session-1", session.ID)
	s.Equal("Goblin", session.Opponent.Name)
	s.Equal(50, session.OpponentHP)
	s.Equal(100, session.PlayerHP)
	s.Equal("channel-1", session.ChannelID)
	s.Equal(s.clock.T.Add(4*time.Second), session.NextAttackAt)
	s.True(s.table.InBattle(s.ref))
}

func (s *BattleServiceTestSuite) TestStartHunt_FallsBackToStrongest() {
	s.saveProfile("", func(p *character.Profile) { p.Attack = 500 })

	session, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)
	s.Equal("Dragão Jovem", session.Opponent.Name)
}

func (s *BattleServiceTestSuite) TestStartHunt_MageCountsEquippedSpells() {
	s.saveProfile(character.ClassMage, nil)

	session, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)
	s.Equal(100, session.PlayerMana)
	s.Equal(character.ClassMage, session.Class)
	s.Equal("Goblin", session.Opponent.Name)
}

func (s *BattleServiceTestSuite) TestStartHunt_AlreadyInBattle() {
	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	_, err = s.service.StartHunt(s.ctx, s.ref, "channel-2")
	s.True(dnderr.Is(err, dnderr.CodeAlreadyInBattle))

	other := character.Ref{CommunityID: "guild-1", CharacterID: "user-2"}
	otherSession, err := s.service.StartHunt(s.ctx, other, "channel-2")
	s.Require().NoError(err)
	s.Equal("session-2", otherSession.ID)

	first, err := s.service.Status(s.ref)
	s.Require().NoError(err)
	s.Equal("session-1", first.ID)
	s.Equal("channel-1", first.ChannelID)
	s.Equal(2, s.table.Len())
}

func (s *BattleServiceTestSuite) TestStartHunt_SameUserOtherCommunity() {
	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	_, err = s.service.StartHunt(s.ctx, character.Ref{CommunityID: "guild-2", CharacterID: "user-1"}, "channel-9")
	s.NoError(err)
}

func (s *BattleServiceTestSuite) TestStartHunt_Exhausted() {
	s.saveProfile("", func(p *character.Profile) { p.SetVitals(0, 0) })

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.True(dnderr.Is(err, dnderr.CodeExhausted))
	s.False(s.table.InBattle(s.ref))
}

func (s *BattleServiceTestSuite) TestBasicAttack_EndToEnd() {
	s.withOpponent(battleDomain.Opponent{Name: "Bandido", HitPoints: 50, Attack: 5, Defense: 0, Loot: 15})
	s.saveProfile("", func(p *character.Profile) {
		p.Attack = 10
		p.Defense = 10
	})

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	for _, want := range []int{40, 30, 20} {
		result, err := s.service.BasicAttack(s.ctx, s.ref)
		s.Require().NoError(err)
		s.Equal(10, result.Damage)
		s.Equal(want, result.Session.OpponentHP)
		s.Nil(result.Settlement)
	}
	s.True(s.table.InBattle(s.ref))
	s.Equal(0, s.storedProfile().Currency)
}

func (s *BattleServiceTestSuite) TestBasicAttack_VictorySettlesOnce() {
	s.withOpponent(battleDomain.Opponent{Name: "Bandido", HitPoints: 50, Attack: 5, Defense: 0, Loot: 15})
	s.saveProfile("", func(p *character.Profile) {
		p.Attack = 20
		p.CurrentHP = 77
	})

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	var result *battle.AttackResult
	for _, want := range []int{30, 10, 0} {
		result, err = s.service.BasicAttack(s.ctx, s.ref)
		s.Require().NoError(err)
		s.Equal(want, result.Session.OpponentHP)
	}

	s.Require().NotNil(result.Settlement)
	s.True(result.Settlement.Victory)
	s.Equal(15, result.Settlement.Loot)
	s.False(s.table.InBattle(s.ref))

	p := s.storedProfile()
	s.Equal(15, p.Currency)
	s.Equal(77, p.CurrentHP)

	_, err = s.service.BasicAttack(s.ctx, s.ref)
	s.True(dnderr.Is(err, dnderr.CodeNoActiveBattle))
	s.Equal(15, s.storedProfile().Currency, "loot credited once")
}

func (s *BattleServiceTestSuite) TestBasicAttack_NoActiveBattle() {
	_, err := s.service.BasicAttack(s.ctx, s.ref)
	s.True(dnderr.Is(err, dnderr.CodeNoActiveBattle))
}

func (s *BattleServiceTestSuite) TestCastSpell_ShieldAbsorbsStrike() {
	s.withOpponent(battleDomain.Opponent{Name: "Ogro", HitPoints: 500, Attack: 60, Defense: 0, Loot: 1})
	s.saveProfile(character.ClassMage, nil)

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	cast, err := s.service.CastSpell(s.ctx, s.ref, 2)
	s.Require().NoError(err)
	s.Equal(spell.EffectShield, cast.Outcome.Kind)
	s.Equal(100, cast.Session.Shield)
	s.Equal(20, cast.Cost)
	s.Equal(80, cast.Session.PlayerMana)
	s.Equal(80, s.storedProfile().Mana, "mana written back")

	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-1", gomock.Any()).Return(nil)

	s.clock.Advance(3 * time.Second)
	strike, err := s.service.OpponentStrike(s.ctx, s.ref, s.clock.Now())
	s.Require().NoError(err)
	s.True(strike.Struck)
	s.Equal(60, strike.Absorbed)
	s.Equal(0, strike.Damage)
	s.Equal(40, strike.Session.Shield)
	s.Equal(80, strike.Session.PlayerHP)
	s.Equal(80, s.storedProfile().CurrentHP)
}

func (s *BattleServiceTestSuite) TestCastSpell_InsufficientManaLeavesStateUnchanged() {
	s.saveProfile(character.ClassMage, func(p *character.Profile) { p.SetVitals(p.MaxHP, 10) })

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	_, err = s.service.CastSpell(s.ctx, s.ref, 1)
	s.Require().Error(err)
	s.True(dnderr.Is(err, dnderr.CodeInsufficientMana))
	s.Equal(30, dnderr.GetMeta(err)["cost"])

	session, err := s.service.Status(s.ref)
	s.Require().NoError(err)
	s.Equal(10, session.PlayerMana)
	s.Equal(session.Opponent.HitPoints, session.OpponentHP)

	slots, err := s.slots.GetSlots(s.ctx, s.ref)
	s.Require().NoError(err)
	s.Equal(0, slots[0].XP)
}

func (s *BattleServiceTestSuite) TestCastSpell_KillingCastGrantsBonusXP() {
	s.withOpponent(battleDomain.Opponent{Name: "Rato", HitPoints: 20, Attack: 1, Defense: 0, Loot: 5})
	s.saveProfile(character.ClassMage, nil)

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	result, err := s.service.CastSpell(s.ctx, s.ref, 1)
	s.Require().NoError(err)
	s.Equal(40, result.Outcome.Damage)
	s.Equal(0, result.Session.OpponentHP)
	s.Equal(battle.CastSpellXP+battle.KillSpellXP, result.Slot.XP)
	s.Require().NotNil(result.Settlement)
	s.True(result.Settlement.Victory)

	slots, err := s.slots.GetSlots(s.ctx, s.ref)
	s.Require().NoError(err)
	s.Equal(3, slots[0].XP)

	p := s.storedProfile()
	s.Equal(5, p.Currency)
	s.Equal(70, p.Mana)
}

func (s *BattleServiceTestSuite) TestCastSpell_LifestealHeals() {
	s.withOpponent(battleDomain.Opponent{Name: "Ogro", HitPoints: 500, Attack: 1, Defense: 4, Loot: 1})
	s.saveProfile(character.ClassMage, func(p *character.Profile) { p.CurrentHP = 50 })

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	result, err := s.service.CastSpell(s.ctx, s.ref, 3)
	s.Require().NoError(err)
	s.Equal(26, result.Outcome.Damage)
	s.Equal(13, result.Outcome.Healed)
	s.Equal(63, result.Session.PlayerHP)
	s.Equal(1, result.Slot.XP)
	s.Equal(63, s.storedProfile().CurrentHP)
}

func (s *BattleServiceTestSuite) TestCastSpell_Rejections() {
	_, err := s.service.CastSpell(s.ctx, s.ref, 1)
	s.True(dnderr.Is(err, dnderr.CodeNoActiveBattle))

	_, err = s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)
	_, err = s.service.CastSpell(s.ctx, s.ref, 1)
	s.True(dnderr.Is(err, dnderr.CodeClassNotCaster))
}

func (s *BattleServiceTestSuite) TestCastSpell_EmptySlot() {
	s.saveProfile(character.ClassMage, nil)
	s.Require().NoError(s.slots.SaveSlot(s.ctx, spell.NewSlot(s.ref, 3, nil)))

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	_, err = s.service.CastSpell(s.ctx, s.ref, 3)
	s.True(dnderr.Is(err, dnderr.CodeSlotEmpty))
}

func (s *BattleServiceTestSuite) TestOpponentStrike_NotDue() {
	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	result, err := s.service.OpponentStrike(s.ctx, s.ref, s.clock.Now())
	s.Require().NoError(err)
	s.False(result.Struck)
	s.Equal(100, result.Session.PlayerHP)
}

func (s *BattleServiceTestSuite) TestOpponentStrike_NoSession() {
	result, err := s.service.OpponentStrike(s.ctx, s.ref, s.clock.Now())
	s.NoError(err)
	s.Nil(result)
}

func (s *BattleServiceTestSuite) TestOpponentStrike_Defeat() {
	s.withOpponent(battleDomain.Opponent{Name: "Ogro", HitPoints: 500, Attack: 60, Defense: 0, Loot: 99})
	s.saveProfile("", func(p *character.Profile) {
		p.CurrentHP = 30
		p.Defense = 0
	})

	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-1", gomock.Any()).Return(nil)

	s.clock.Advance(3 * time.Second)
	result, err := s.service.OpponentStrike(s.ctx, s.ref, s.clock.Now())
	s.Require().NoError(err)
	s.Equal(30, result.Damage)
	s.Require().NotNil(result.Settlement)
	s.False(result.Settlement.Victory)
	s.Equal(0, result.Settlement.Loot)
	s.False(s.table.InBattle(s.ref))

	p := s.storedProfile()
	s.Equal(0, p.CurrentHP)
	s.Equal(0, p.Currency)

	_, err = s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.True(dnderr.Is(err, dnderr.CodeExhausted))
}

func (s *BattleServiceTestSuite) TestOpponentStrike_UnreachableChannel() {
	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-1", gomock.Any()).
		Return(fmt.Errorf("%w: unknown channel", battle.ErrChannelUnreachable))

	s.clock.Advance(4 * time.Second)
	result, err := s.service.OpponentStrike(s.ctx, s.ref, s.clock.Now())
	s.Require().Error(err)
	s.ErrorIs(err, battle.ErrChannelUnreachable)
	s.True(result.Struck)
	s.Equal(96, s.storedProfile().CurrentHP, "strike persisted before announcing")
}

func (s *BattleServiceTestSuite) TestTeardown() {
	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	live, ok := s.table.Get(s.ref)
	s.Require().True(ok)
	live.PlayerHP = 7

	_, err = s.service.Teardown(s.ctx, s.ref, battle.ReasonChannelUnreachable)
	s.Require().NoError(err)
	s.False(s.table.InBattle(s.ref))
	s.Equal(100, s.storedProfile().CurrentHP, "nothing written")

	_, err = s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)
	live, _ = s.table.Get(s.ref)
	live.PlayerHP = 7

	session, err := s.service.Teardown(s.ctx, s.ref, battle.ReasonAdmin)
	s.Require().NoError(err)
	s.Equal("session-2", session.ID)
	s.Equal(7, s.storedProfile().CurrentHP)

	_, err = s.service.Teardown(s.ctx, s.ref, battle.ReasonAdmin)
	s.True(dnderr.Is(err, dnderr.CodeNoActiveBattle))
}

func (s *BattleServiceTestSuite) TestStatus_ReturnsCopy() {
	_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)

	status, err := s.service.Status(s.ref)
	s.Require().NoError(err)
	status.OpponentHP = -1

	again, err := s.service.Status(s.ref)
	s.Require().NoError(err)
	s.Equal(50, again.OpponentHP)
}

func (s *BattleServiceTestSuite) TestCastSpell_SlotSaveFailureKeepsCast() {
	mockSlots := mockspellslots.NewMockRepository(s.ctrl)
	mockIDs := mocks.NewMockGenerator(s.ctrl)
	service := battle.NewService(&battle.ServiceConfig{
		Table:        s.table,
		Profiles:     s.profiles,
		SpellSlots:   mockSlots,
		Classes:      s.data.Classes,
		Spells:       s.data.Spells,
		Bestiary:     s.data.Bestiary,
		Locker:       keylock.New(),
		Notifier:     s.mockNotifier,
		UUID:         mockIDs,
		TimeProvider: s.clock,
	})
	s.saveProfile(character.ClassMage, nil)

	mockIDs.EXPECT().New().Return("hunt-7")
	mockSlots.EXPECT().GetSlots(gomock.Any(), s.ref).Return(s.data.Spells.DefaultSlots(s.ref), nil).Times(2)
	mockSlots.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(dnderr.Storage(fmt.Errorf("connection reset"), "redis down"))

	session, err := service.StartHunt(s.ctx, s.ref, "channel-1")
	s.Require().NoError(err)
	s.Equal("hunt-7", session.ID)

	result, err := service.CastSpell(s.ctx, s.ref, 2)
	s.Require().NoError(err, "a lost spell xp point does not undo the cast")
	s.Equal(100, result.Session.Shield)
	s.Equal(80, result.Session.PlayerMana)
	s.Equal(80, s.storedProfile().Mana)
}
