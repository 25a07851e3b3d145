package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BotsDir      string `yaml:"bots_dir"`
	DefaultReply string `yaml:"default_reply"`
	Autoload     bool   `yaml:"autoload"`

	Log *LogConfig `yaml:"log,omitempty"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Level   string `yaml:"level"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

func DefaultConfig() *Config {
	return &Config{
		BotsDir:      "~/.config/replybot/bots",
		DefaultReply: "I don't understand.",
		Autoload:     true,
		Log: &LogConfig{
			Enabled: true,
			Path:    "~/.config/replybot/replybot.log",
			Level:   "info",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "replybot"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the default config file. It returns nil, nil when there is none.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file, filling unset fields from DefaultConfig
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values yaml cannot check on its own
func (c *Config) Validate() error {
	if c.BotsDir == "" {
		return errors.New("bots_dir must not be empty")
	}
	if c.Log != nil && c.Log.Enabled {
		level := strings.ToLower(c.Log.Level)
		valid := false
		for _, l := range logLevels {
			if level == l {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown log level: %s", c.Log.Level)
		}
		if c.Log.Path == "" {
			return errors.New("log.path must be set when logging is enabled")
		}
	}
	return nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ExpandPath replaces a leading ~ with the home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
