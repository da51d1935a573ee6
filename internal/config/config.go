package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	// DataDir holds the catalog JSON files
	DataDir string `env:"WILRAN_DATA_DIR" envDefault:"data"`
	// Seed makes every roll reproducible when non-zero
	Seed    uint64 `env:"WILRAN_SEED"`
	Redis   RedisConfig
	Discord DiscordConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional; the roster stays in memory without it
	URL string `env:"REDIS_URL"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token        string `env:"DISCORD_TOKEN"`
	LogChannelID string `env:"DISCORD_LOG_CHANNEL_ID"`
}

// Enabled reports whether battle log messages should go to Discord
func (d DiscordConfig) Enabled() bool {
	return d.Token != "" && d.LogChannelID != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("WILRAN_DATA_DIR cannot be empty")
	}
	if cfg.Discord.Token != "" && cfg.Discord.LogChannelID == "" {
		return nil, fmt.Errorf("DISCORD_LOG_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}
