package battle

import (
	"context"
	"errors"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	battleDomain "github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/character"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	"github.com/Kkzin999/sun/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Scheduler defaults
const (
	DefaultTickInterval = time.Second
	DefaultTickWorkers  = 8
)

// Scheduler drives opponent strikes for every live session
type Scheduler struct {
	service      Service
	table        *battleDomain.Table
	interval     time.Duration
	workers      int
	timeProvider clock.TimeProvider
}

// SchedulerConfig holds configuration for the scheduler
type SchedulerConfig struct {
	Service      Service             // Required
	Table        *battleDomain.Table // Required, the table the service writes to
	Interval     time.Duration
	Workers      int
	TimeProvider clock.TimeProvider
}

// NewScheduler creates a new tick scheduler
func NewScheduler(cfg *SchedulerConfig) *Scheduler {
	if cfg.Service == nil {
		panic("battle service is required")
	}
	if cfg.Table == nil {
		panic("session table is required")
	}

	s := &Scheduler{
		service:      cfg.Service,
		table:        cfg.Table,
		interval:     cfg.Interval,
		workers:      cfg.Workers,
		timeProvider: cfg.TimeProvider,
	}
	if s.interval <= 0 {
		s.interval = DefaultTickInterval
	}
	if s.workers <= 0 {
		s.workers = DefaultTickWorkers
	}
	if s.timeProvider == nil {
		s.timeProvider = clock.NewRealTimeProvider()
	}
	return s
}

// Run ticks until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Battle scheduler started", "interval", s.interval, "workers", s.workers)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Battle scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Tick(ctx, s.timeProvider.Now())
		}
	}
}

// Tick resolves the strikes due at now. Sessions are snapshotted first; one
// removed meanwhile is skipped by the service. A failing session never stops
// the others.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	refs := s.table.Refs()
	if len(refs) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, ref := range refs {
		g.Go(func() error {
			s.strike(gctx, ref, now)
			return nil
		})
	}

	_ = g.Wait()
}

func (s *Scheduler) strike(ctx context.Context, ref character.Ref, now time.Time) {
	_, err := s.service.OpponentStrike(ctx, ref, now)
	if err == nil {
		return
	}

	if !errors.Is(err, ErrChannelUnreachable) {
		logger.Error("Opponent strike failed", "ref", ref.Key(), "error", err)
		return
	}

	logger.Warn("Battle channel unreachable, ending hunt", "ref", ref.Key())
	if _, err := s.service.Teardown(ctx, ref, ReasonChannelUnreachable); err != nil && !dnderr.Is(err, dnderr.CodeNoActiveBattle) {
		logger.Error("Failed to tear down hunt", "ref", ref.Key(), "error", err)
	}
}
