package battle_test

import (
	"context"
	"errors"
	"sync"
	"time"

	battleDomain "github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/character"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/Kkzin999/sun/internal/services/battle"
	"go.uber.org/mock/gomock"
)

func (s *BattleServiceTestSuite) newScheduler() *battle.Scheduler {
	return battle.NewScheduler(&battle.SchedulerConfig{
		Service:      s.service,
		Table:        s.table,
		Interval:     10 * time.Millisecond,
		Workers:      2,
		TimeProvider: s.clock,
	})
}

func (s *BattleServiceTestSuite) TestSchedulerTick_StrikesDueSessions() {
	other := character.Ref{CommunityID: "guild-1", CharacterID: "user-2"}
	third := character.Ref{CommunityID: "guild-2", CharacterID: "user-3"}
	for ref, channel := range map[character.Ref]string{s.ref: "channel-1", other: "channel-2", third: "channel-3"} {
		_, err := s.service.StartHunt(s.ctx, ref, channel)
		s.Require().NoError(err)
	}

	scheduler := s.newScheduler()

	// Goblins strike every 4s; nothing is due yet
	scheduler.Tick(s.ctx, s.clock.Now().Add(time.Second))

	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-1", gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-2", gomock.Any()).Return(battle.ErrChannelUnreachable)
	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-3", gomock.Any()).Return(errors.New("rate limited"))

	s.clock.Advance(4 * time.Second)
	scheduler.Tick(s.ctx, s.clock.Now())

	s.True(s.table.InBattle(s.ref))
	s.False(s.table.InBattle(other), "unreachable channel ends the hunt")
	s.True(s.table.InBattle(third), "other announce failures keep the hunt")

	session, err := s.service.Status(s.ref)
	s.Require().NoError(err)
	s.Equal(96, session.PlayerHP)
	s.Equal(s.clock.Now().Add(4*time.Second), session.NextAttackAt)
}

func (s *BattleServiceTestSuite) TestSchedulerTick_RacingAttackSettlesOnce() {
	// Either side finishes the fight in one blow
	s.withOpponent(battleDomain.Opponent{Name: "Bandido", HitPoints: 10, Attack: 60, Defense: 0, Loot: 15})
	s.mockNotifier.EXPECT().Announce(gomock.Any(), "channel-1", gomock.Any()).Return(nil).AnyTimes()

	scheduler := s.newScheduler()

	for round := 0; round < 50; round++ {
		s.saveProfile("", func(p *character.Profile) {
			p.Attack = 20
			p.Defense = 0
			p.CurrentHP = 10
		})
		_, err := s.service.StartHunt(s.ctx, s.ref, "channel-1")
		s.Require().NoError(err)
		due := s.clock.Now().Add(3 * time.Second)

		var wg sync.WaitGroup
		attackErrs := make(chan error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := s.service.BasicAttack(s.ctx, s.ref)
				attackErrs <- err
			}()
			go func() {
				defer wg.Done()
				scheduler.Tick(s.ctx, due)
			}()
		}
		wg.Wait()
		close(attackErrs)

		for err := range attackErrs {
			if err != nil {
				s.True(dnderr.Is(err, dnderr.CodeNoActiveBattle), "round %d: %v", round, err)
			}
		}

		s.False(s.table.InBattle(s.ref), "round %d: session ended", round)
		currency := s.storedProfile().Currency
		s.Contains([]int{0, 15}, currency, "round %d: settled once", round)
	}
}

func (s *BattleServiceTestSuite) TestSchedulerTick_EmptyTable() {
	s.newScheduler().Tick(s.ctx, s.clock.Now())
}

func (s *BattleServiceTestSuite) TestSchedulerRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)

	done := make(chan error, 1)
	go func() { done <- s.newScheduler().Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("scheduler did not stop")
	}
}
