package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Kkzin999/sun/internal/config"
	"github.com/Kkzin999/sun/internal/database"
	"github.com/Kkzin999/sun/internal/dice"
	"github.com/Kkzin999/sun/internal/gamedata"
	"github.com/Kkzin999/sun/internal/handlers/discord"
	"github.com/Kkzin999/sun/internal/logger"
	"github.com/Kkzin999/sun/internal/repositories/profiles"
	"github.com/Kkzin999/sun/internal/repositories/spellslots"
	"github.com/Kkzin999/sun/internal/services"
	"github.com/Kkzin999/sun/internal/telemetry"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg, err := logger.LoadConfig(cfg.LogConfigFile)
	if err != nil {
		log.Fatalf("Failed to load logging config: %v", err)
	}
	logCloser, err := logger.Initialize(logCfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closeQuietly("log file", logCloser)

	logger.Info("Starting bot", "app_id", cfg.Discord.AppID, "guild_id", cfg.Discord.GuildID, "storage", cfg.Storage.Driver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		logger.Error("Failed to set up tracing", "error", err)
		return
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", "error", err)
		}
	}()

	data, err := gamedata.Load(cfg.Game.DataFile)
	if err != nil {
		logger.Error("Failed to load game data", "file", cfg.Game.DataFile, "error", err)
		return
	}

	messageXP, err := dice.Parse(cfg.Game.MessageXPDice)
	if err != nil {
		logger.Error("Invalid MESSAGE_XP_DICE", "value", cfg.Game.MessageXPDice, "error", err)
		return
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Error("Failed to create Discord session", "error", err)
		return
	}
	dg.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		GameData:        data,
		BattleNotifier:  discord.NewChannelNotifier(dg),
		MessageXP:       messageXP,
		MessageCooldown: cfg.Game.MessageXPCooldown,
		TickInterval:    cfg.Game.TickInterval,
		TickWorkers:     cfg.Game.TickWorkers,
	}
	if len(cfg.Game.RewardRoles) > 0 {
		providerConfig.RewardNotifier = discord.NewRoleRewardNotifier(dg, cfg.Game.RewardRoles)
	}

	closeStorage, err := configureStorage(ctx, cfg.Storage, data, providerConfig)
	if err != nil {
		logger.Error("Failed to set up storage", "driver", cfg.Storage.Driver, "error", err)
		return
	}
	defer closeStorage()

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))
	dg.AddHandler(discord.RecoverMessageMiddleware("message", handler.HandleMessageCreate))

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		logger.Error("Failed to open Discord connection", "error", err)
		return
	}
	defer closeQuietly("Discord connection", dg)

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		logger.Error("Failed to register commands", "error", err)
		return
	}
	if cfg.Discord.GuildID == "" {
		logger.Info("Registered global commands (may take up to 1 hour to propagate)")
	}

	schedulerDone := make(chan error, 1)
	go func() {
		schedulerDone <- serviceProvider.Scheduler.Run(ctx)
	}()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	cancel()
	<-schedulerDone
	logger.Info("Battle scheduler stopped", "open_sessions", serviceProvider.Table.Len())
}

// configureStorage points the provider at the selected driver. The returned
// func releases connections.
func configureStorage(ctx context.Context, cfg config.StorageConfig, data *gamedata.Data, pc *services.ProviderConfig) (func(), error) {
	switch cfg.Driver {
	case config.DriverRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		pc.ProfileRepository = profiles.NewRedis(client, data.BaseStats)
		pc.SpellSlotRepository = spellslots.NewRedis(client, data.Spells)
		logger.Info("Using Redis for persistence")
		return func() { closeQuietly("Redis connection", client) }, nil

	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.Open(ctx, database.Config{
			Driver:          database.DialectType(cfg.Driver),
			SQLitePath:      cfg.SQLitePath,
			DSN:             cfg.DatabaseURL,
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		})
		if err != nil {
			return nil, err
		}

		pc.ProfileRepository = profiles.NewSQLRepository(&profiles.SQLRepoConfig{DB: db, BaseStats: data.BaseStats})
		pc.SpellSlotRepository = spellslots.NewSQLRepository(&spellslots.SQLRepoConfig{DB: db, Defaults: data.Spells})
		logger.Info("Using SQL database for persistence", "driver", cfg.Driver)
		return func() { closeQuietly("database", db) }, nil
	}

	logger.Info("Using in-memory repositories; progress is lost on restart")
	return func() {}, nil
}

func closeQuietly(what string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close "+what, "error", err)
	}
}
