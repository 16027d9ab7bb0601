package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage drivers understood by cmd/bot
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig `envPrefix:"DISCORD_"`
	Storage StorageConfig
	Game    GameConfig
	// LogConfigFile is a YAML file whose `logging:` section configures the logger
	LogConfigFile string `env:"LOG_CONFIG_FILE" envDefault:"config.yaml"`
	// OTelEndpoint enables trace export when set
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"TOKEN,required,notEmpty"`
	AppID   string `env:"APP_ID,required,notEmpty"`
	GuildID string `env:"GUILD_ID"` // Optional: for guild-specific commands
}

// StorageConfig selects and configures the profile and spell stores
type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/sun.db"`
	RedisURL    string `env:"REDIS_URL"`
}

// GameConfig holds tuning for the battle loop and progression
type GameConfig struct {
	TickInterval      time.Duration `env:"BATTLE_TICK_INTERVAL" envDefault:"1s"`
	TickWorkers       int           `env:"BATTLE_TICK_WORKERS" envDefault:"8"`
	MessageXPCooldown time.Duration `env:"MESSAGE_XP_COOLDOWN" envDefault:"60s"`
	MessageXPDice     string        `env:"MESSAGE_XP_DICE" envDefault:"1d11+14"`
	DataFile          string        `env:"GAME_DATA_FILE"`
	// RewardRoles maps a level to the Discord role granted on reaching it, e.g. "1:123,5:456"
	RewardRoles map[int]string `env:"REWARD_ROLES" envSeparator:"," envKeyValSeparator:":"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverRedis, DriverSQLite:
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Storage.Driver == DriverRedis && c.Storage.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required for the redis driver")
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("BATTLE_TICK_INTERVAL must be positive")
	}
	if c.Game.TickWorkers < 1 {
		return fmt.Errorf("BATTLE_TICK_WORKERS must be at least 1")
	}

	return nil
}
