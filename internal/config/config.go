package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Log      LogConfig
	Sentry   SentryConfig
	GameData GameDataConfig
	Assets   AssetConfig
	Pager    PagerConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token         string `env:"DISCORD_TOKEN"`
	AppID         string `env:"DISCORD_APP_ID"`
	GuildID       string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:";"`
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps every store in memory.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// LogConfig selects the log level and output format
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// SentryConfig enables error forwarding when DSN is set
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"development"`
}

// GameDataConfig points at the gamedata tables
type GameDataConfig struct {
	BaseURL  string        `env:"GAMEDATA_BASE_URL"`
	Timeout  time.Duration `env:"GAMEDATA_TIMEOUT" envDefault:"30s"`
	CacheTTL time.Duration `env:"GAMEDATA_CACHE_TTL" envDefault:"6h"`
}

// AssetConfig overrides where images and voice lines are linked from
type AssetConfig struct {
	ImageBaseURL string `env:"ASSET_IMAGE_BASE_URL"`
	AudioBaseURL string `env:"ASSET_AUDIO_BASE_URL"`
}

// PagerConfig controls how long paged messages stay navigable
type PagerConfig struct {
	TTL time.Duration `env:"PAGER_TTL" envDefault:"15m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, eris.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}

// ValidateBot checks the settings needed to connect to Discord
func (c *Config) ValidateBot() error {
	if c.Discord.Token == "" {
		return eris.New("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return eris.New("DISCORD_APP_ID is required")
	}
	return nil
}
