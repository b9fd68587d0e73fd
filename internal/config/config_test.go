package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Discord.CommandPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.GameData.Timeout)
	assert.Equal(t, 6*time.Hour, cfg.GameData.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.Pager.TTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Sentry.DSN)
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"DISCORD_TOKEN":        "token",
		"DISCORD_APP_ID":       "app",
		"DISCORD_GUILD_ID":     "guild",
		"COMMAND_PREFIX":       "!",
		"REDIS_URL":            "redis://localhost:6379/0",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "text",
		"SENTRY_DSN":           "https://key@sentry.example/1",
		"GAMEDATA_BASE_URL":    "http://gamedata.local",
		"GAMEDATA_TIMEOUT":     "5s",
		"GAMEDATA_CACHE_TTL":   "1h",
		"ASSET_IMAGE_BASE_URL": "http://img.local",
		"ASSET_AUDIO_BASE_URL": "http://audio.local",
		"PAGER_TTL":            "2m",
	})
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, "guild", cfg.Discord.GuildID)
	assert.Equal(t, "!", cfg.Discord.CommandPrefix)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://gamedata.local", cfg.GameData.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.GameData.Timeout)
	assert.Equal(t, time.Hour, cfg.GameData.CacheTTL)
	assert.Equal(t, "http://img.local", cfg.Assets.ImageBaseURL)
	assert.Equal(t, "http://audio.local", cfg.Assets.AudioBaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Pager.TTL)
	assert.NoError(t, cfg.ValidateBot())
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	_, err := LoadFrom(map[string]string{"PAGER_TTL": "soon"})
	assert.Error(t, err)
}

func TestValidateBot(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"DISCORD_TOKEN": "token"})
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.ValidateBot(), "DISCORD_APP_ID")

	cfg, err = LoadFrom(map[string]string{"DISCORD_APP_ID": "app"})
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.ValidateBot(), "DISCORD_TOKEN")
}
