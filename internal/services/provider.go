package services

import (
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	"github.com/Kkzin999/sun/internal/dice"
	battleDomain "github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/progression"
	"github.com/Kkzin999/sun/internal/gamedata"
	"github.com/Kkzin999/sun/internal/keylock"
	"github.com/Kkzin999/sun/internal/repositories/profiles"
	"github.com/Kkzin999/sun/internal/repositories/spellslots"
	battleService "github.com/Kkzin999/sun/internal/services/battle"
	characterService "github.com/Kkzin999/sun/internal/services/character"
	"github.com/Kkzin999/sun/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	BattleService    battleService.Service
	Scheduler        *battleService.Scheduler
	Table            *battleDomain.Table
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	GameData            *gamedata.Data // Required
	ProfileRepository   profiles.Repository
	SpellSlotRepository spellslots.Repository
	RewardNotifier      characterService.RewardNotifier
	BattleNotifier      battleService.Notifier
	MessageXP           dice.Notation
	MessageCooldown     time.Duration
	TickInterval        time.Duration
	TickWorkers         int
	Roller              dice.Roller
	UUIDGenerator       uuid.Generator
	TimeProvider        clock.TimeProvider
}

// NewProvider creates a new service provider with all services initialized.
// Both services share one session table and one per-character lock.
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.GameData == nil {
		panic("game data is required")
	}
	data := cfg.GameData

	// Use in-memory repositories if none provided
	profileRepo := cfg.ProfileRepository
	if profileRepo == nil {
		profileRepo = profiles.NewInMemoryRepository(data.BaseStats, cfg.TimeProvider)
	}

	slotRepo := cfg.SpellSlotRepository
	if slotRepo == nil {
		slotRepo = spellslots.NewInMemoryRepository(data.Spells)
	}

	table := battleDomain.NewTable()
	locker := keylock.New()

	charService := characterService.NewService(&characterService.ServiceConfig{
		Profiles:        profileRepo,
		SpellSlots:      slotRepo,
		Classes:         data.Classes,
		Spells:          data.Spells,
		Calculator:      progression.NewCalculator(data.LevelBonuses),
		BaseStats:       data.BaseStats,
		Locker:          locker,
		Battles:         table,
		Notifier:        cfg.RewardNotifier,
		Roller:          cfg.Roller,
		MessageXP:       cfg.MessageXP,
		MessageCooldown: cfg.MessageCooldown,
		TimeProvider:    cfg.TimeProvider,
	})

	battleSvc := battleService.NewService(&battleService.ServiceConfig{
		Table:        table,
		Profiles:     profileRepo,
		SpellSlots:   slotRepo,
		Classes:      data.Classes,
		Spells:       data.Spells,
		Bestiary:     data.Bestiary,
		Locker:       locker,
		Notifier:     cfg.BattleNotifier,
		UUID:         cfg.UUIDGenerator,
		TimeProvider: cfg.TimeProvider,
	})

	scheduler := battleService.NewScheduler(&battleService.SchedulerConfig{
		Service:      battleSvc,
		Table:        table,
		Interval:     cfg.TickInterval,
		Workers:      cfg.TickWorkers,
		TimeProvider: cfg.TimeProvider,
	})

	return &Provider{
		CharacterService: charService,
		BattleService:    battleSvc,
		Scheduler:        scheduler,
		Table:            table,
	}
}
