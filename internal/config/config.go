// Package config loads the server configuration from a YAML file with
// sensible defaults for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "4s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Persona PersonaConfig `yaml:"persona"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// StoreConfig selects the session store backend.
type StoreConfig struct {
	// Driver is "memory" or "redis".
	Driver string      `yaml:"driver"`
	Redis  RedisConfig `yaml:"redis"`

	// MaskPII scrubs phone numbers, emails and messenger handles from
	// dialogue text before it is persisted.
	MaskPII bool `yaml:"mask_pii"`

	// EncryptionKeyEnv names an environment variable holding a base64
	// 32-byte key. When set, sessions are encrypted at rest.
	EncryptionKeyEnv string `yaml:"encryption_key_env"`
}

type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	TTL      Duration `yaml:"ttl"`

	// Lock enables the distributed session locker, for running more than
	// one server instance against the same Redis.
	Lock bool `yaml:"lock"`
}

type PersonaConfig struct {
	// Model is the chat model name; the API key comes from the environment
	// (OPENAI_API_KEY), never from the config file.
	Model         string   `yaml:"model"`
	Timeout       Duration `yaml:"timeout"`
	MaxReplyChars int      `yaml:"max_reply_chars"`
}

type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given: in-memory
// store, fallback-only persona defaults, info logging on :8080.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Store: StoreConfig{
			Driver: "memory",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Persona: PersonaConfig{},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured logging level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
}
