package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema.
type Config struct {
	APIURL       string `toml:"api_url"`
	TimeoutSecs  int    `toml:"timeout_secs"`
	MaxAttempts  int    `toml:"max_attempts"`
	RetryDelayMS int    `toml:"retry_delay_ms"`
	Source       string `toml:"-"`
}

func Default() Config {
	return Config{
		APIURL:       "http://localhost:8000",
		TimeoutSecs:  30,
		MaxAttempts:  3,
		RetryDelayMS: 1000,
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".netcores", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

// applyEnv lets NETCORES_* variables win over the file, matching how the
// desktop launcher passes settings.
func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("NETCORES_API_URL")); env != "" {
		cfg.APIURL = env
	}
	if env := strings.TrimSpace(os.Getenv("NETCORES_TIMEOUT_SECS")); env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs > 0 {
			cfg.TimeoutSecs = secs
		}
	}
	return cfg
}
