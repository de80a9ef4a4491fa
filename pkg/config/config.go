package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string          `yaml:"environment" default:"development" validate:"required"`
	Server      ServerConfig    `yaml:"server"`
	Log         LogConfig       `yaml:"log"`
	Provider    ProviderConfig  `yaml:"provider"`
	Metrics     MetricsConfig   `yaml:"metrics"`
	Redis       RedisConfig     `yaml:"redis"`
	RateLimit   RateLimitConfig `yaml:"ratelimit"`
	Warmup      WarmupConfig    `yaml:"warmup"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=json console"`
	Output string `yaml:"output" default:"stdout" validate:"required"`
}

type ProviderConfig struct {
	BaseURL   string        `yaml:"base_url" default:"https://financialmodelingprep.com/api/v3" validate:"required,url"`
	APIKey    string        `yaml:"api_key" default:"demo" validate:"required"`
	Timeout   time.Duration `yaml:"timeout" default:"10s" validate:"gt=0"`
	UserAgent string        `yaml:"user_agent" default:"IPO-Calendar-App/1.0"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr" default:"localhost:6379" validate:"required_if=Enabled true"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
	Prefix   string `yaml:"prefix" default:"ipocal"`
}

type RateLimitConfig struct {
	// ProviderCallsPerMinute of 0 disables the budget.
	ProviderCallsPerMinute int `yaml:"provider_calls_per_minute" default:"30" validate:"gte=0"`
}

type WarmupConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule" default:"@every 4m" validate:"required_if=Enabled true"`
}

var validate = validator.New()

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist). ${VAR}
// references in the file are expanded from the environment.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), &c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config and overrides it with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FMP_API_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		c.Provider.APIKey = "demo"
	}
	return validate.Struct(c)
}
