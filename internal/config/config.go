package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Script ScriptConfig `koanf:"script"`
	Log    LogConfig    `koanf:"log"`
}

type ScriptConfig struct {
	Timeout      int `koanf:"timeout"`       // seconds per osascript invocation
	ProbeTimeout int `koanf:"probe_timeout"` // seconds for the startup permission probe
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Load layers defaults, an optional YAML config file, and
// MCP_REMINDERS_-prefixed environment variables, in that order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// MCP_REMINDERS_SCRIPT_TIMEOUT=60 -> script.timeout; only the first
	// underscore separates the section from the key.
	if err := k.Load(env.Provider("MCP_REMINDERS_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "MCP_REMINDERS_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Script.Timeout <= 0 {
		return fmt.Errorf("script.timeout must be positive")
	}
	if c.Script.ProbeTimeout <= 0 {
		return fmt.Errorf("script.probe_timeout must be positive")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

// ScriptTimeout returns the per-invocation timeout as a duration.
func (c *Config) ScriptTimeout() time.Duration {
	return time.Duration(c.Script.Timeout) * time.Second
}

// ProbeTimeout returns the permission-probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Script.ProbeTimeout) * time.Second
}

// LogLevel returns the configured logrus level.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
