package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"othello/internal/game"
)

type SearchConfig struct {
	AlphaBeta bool   `yaml:"alpha_beta" json:"alphaBeta"`
	Seed      uint64 `yaml:"seed" json:"seed"`
}

type Config struct {
	HTTPAddr   string          `yaml:"http_addr" json:"httpAddr"`
	LogLevel   string          `yaml:"log_level" json:"logLevel"`
	LogPretty  bool            `yaml:"log_pretty" json:"logPretty"`
	Difficulty game.Difficulty `yaml:"difficulty" json:"difficulty"`
	Mode       game.Mode       `yaml:"mode" json:"mode"`
	Search     SearchConfig    `yaml:"search" json:"search"`
}

// Default is the configuration used when neither a file nor the environment
// says otherwise.
func Default() Config {
	return Config{
		HTTPAddr:   ":8080",
		LogLevel:   "info",
		Difficulty: game.Medium,
		Mode:       game.ModeCPU,
	}
}

var (
	once    sync.Once
	current *Config
	loadErr error
)

// Get returns the process-wide configuration, loading it on first use. The
// load error, if any, is returned on every call.
func Get() (*Config, error) {
	once.Do(func() {
		cfg, err := Load()
		current, loadErr = &cfg, err
	})
	return current, loadErr
}

// Load builds the configuration from defaults, the YAML file named by
// OTHELLO_CONFIG (if set) and finally environment overrides.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("OTHELLO_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.LogPretty = getenvBool("LOG_PRETTY", cfg.LogPretty)
	cfg.Search.AlphaBeta = getenvBool("SEARCH_ALPHA_BETA", cfg.Search.AlphaBeta)
	cfg.Search.Seed = getenvUint("SEARCH_SEED", cfg.Search.Seed)

	if v := os.Getenv("DIFFICULTY"); v != "" {
		d, err := game.ParseDifficulty(v)
		if err != nil {
			return fmt.Errorf("DIFFICULTY: %w", err)
		}
		cfg.Difficulty = d
	}
	if v := os.Getenv("GAME_MODE"); v != "" {
		m, err := game.ParseMode(v)
		if err != nil {
			return fmt.Errorf("GAME_MODE: %w", err)
		}
		cfg.Mode = m
	}
	return nil
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvUint(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// SearchOptions translates the search section into searcher options. A zero
// seed leaves the searcher seeded from the clock.
func (c Config) SearchOptions() []game.Option {
	opts := []game.Option{game.WithAlphaBeta(c.Search.AlphaBeta)}
	if c.Search.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Search.Seed))
	}
	return opts
}
