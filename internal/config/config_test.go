package config_test

import (
	"testing"
	"time"

	"github.com/Kkzin999/sun/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, time.Second, cfg.Game.TickInterval)
	assert.Equal(t, 8, cfg.Game.TickWorkers)
	assert.Equal(t, time.Minute, cfg.Game.MessageXPCooldown)
	assert.Equal(t, "1d11+14", cfg.Game.MessageXPDice)
}

func TestLoad_RewardRoles(t *testing.T) {
	setRequired(t)
	t.Setenv("REWARD_ROLES", "1:111,5:555")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, map[int]string{1: "111", 5: "555"}, cfg.Game.RewardRoles)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_StorageValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "postgres without url", env: map[string]string{"STORAGE_DRIVER": "postgres"}, wantErr: true},
		{name: "postgres with url", env: map[string]string{"STORAGE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/sun"}},
		{name: "redis without url", env: map[string]string{"STORAGE_DRIVER": "redis"}, wantErr: true},
		{name: "sqlite", env: map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "mongo"}, wantErr: true},
		{name: "zero workers", env: map[string]string{"BATTLE_TICK_WORKERS": "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
