package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the app gateway.
type Config struct {
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	Server    ServerConfig
	Backend   BackendConfig
	Pump      PumpConfig
	Users     UsersConfig
	Redis     RedisConfig
	Audio     AudioConfig
	Chat      ChatConfig
}

// ServerConfig holds the local UI-facing HTTP server configuration.
type ServerConfig struct {
	Host      string `envconfig:"SERVER_HOST" default:"127.0.0.1"`
	Port      string `envconfig:"SERVER_PORT" default:"8080"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

// BackendConfig holds the remote farming backend configuration.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
}

// PumpConfig holds the IoT pump controller configuration. The pump API may
// live on a different host than the main backend.
type PumpConfig struct {
	BaseURL string `envconfig:"PUMP_URL"`
}

// UsersConfig holds the local user registry configuration.
type UsersConfig struct {
	File string `envconfig:"USERS_FILE" default:"users.json"`
}

// RedisConfig holds the optional lookup cache configuration. An empty URI
// disables caching.
type RedisConfig struct {
	URI string `envconfig:"REDIS_URI"`
}

// AudioConfig holds microphone and speaker device commands. The gateway is
// headless, so capture and playback shell out to host tools.
type AudioConfig struct {
	RecordCmd string `envconfig:"AUDIO_RECORD_CMD" default:"arecord -q -f cd -t wav"`
	PlayCmd   string `envconfig:"AUDIO_PLAY_CMD" default:"aplay -q"`
	Dir       string `envconfig:"AUDIO_DIR"`
}

// ChatConfig holds chat flow tuning.
type ChatConfig struct {
	AutoSendDelay time.Duration `envconfig:"CHAT_AUTOSEND_DELAY" default:"500ms"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration for logical errors beyond required fields.
func (c *Config) Validate() error {
	if c.Backend.Timeout <= 0 {
		return errors.New("backend timeout must be positive")
	}
	if c.Chat.AutoSendDelay < 0 {
		return errors.New("auto-send delay must not be negative")
	}
	// Pump commands go to the main backend unless overridden
	if c.Pump.BaseURL == "" {
		c.Pump.BaseURL = c.Backend.BaseURL
	}
	return nil
}
