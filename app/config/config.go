package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     Log     `yaml:"log"`
	Server  Server  `yaml:"server"`
	Session Session `yaml:"session"`
	MCP     MCP     `yaml:"mcp"`
}

type Server struct {
	// Listen host
	Host string `yaml:"host" example:"0.0.0.0"`
	// Listen port
	Port int `yaml:"port" example:"5000" validate:"min=1,max=65535"`
	// Session secret, env SECRET_KEY overrides
	SecretKey string `yaml:"secret_key" validate:"required"`
}

type Session struct {
	// Conversations idle longer than this are swept
	LifetimeHours int `yaml:"lifetime_hours" example:"24" validate:"min=1"`
	// Interval between sweep runs
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes" example:"60" validate:"min=1"`
}

type MCP struct {
	// Expose the chat tool over MCP (SSE transport)
	Enabled bool `yaml:"enabled" example:"false"`
	// MCP listen port
	Port int `yaml:"port" example:"8081" validate:"min=1,max=65535"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Server: Server{
			Host:      "0.0.0.0",
			Port:      5000,
			SecretKey: "dev-secret-key-123",
		},
		Session: Session{
			LifetimeHours:        24,
			SweepIntervalMinutes: 60,
		},
		MCP: MCP{
			Port: 8081,
		},
	}
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Config file is optional, defaults and environment carry the rest.
	case err != nil:
		return nil, oops.Errorf("failed to read config file: %w", err)
	default:
		if err = yaml.Unmarshal(data, &result); err != nil {
			return nil, oops.Errorf("failed to parse YAML config: %w", err)
		}
	}

	defaults := Default()

	if result.Server.Host == "" {
		result.Server.Host = defaults.Server.Host
	}
	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		result.Server.SecretKey = secret
	}
	if result.Server.SecretKey == "" {
		result.Server.SecretKey = defaults.Server.SecretKey
	}
	if result.Session.LifetimeHours == 0 {
		result.Session.LifetimeHours = defaults.Session.LifetimeHours
	}
	if result.Session.SweepIntervalMinutes == 0 {
		result.Session.SweepIntervalMinutes = defaults.Session.SweepIntervalMinutes
	}
	if result.MCP.Port == 0 {
		result.MCP.Port = defaults.MCP.Port
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
