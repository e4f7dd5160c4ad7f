package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide settings read from the environment.
type Config struct {
	DBPath       string `env:"MATHPAPER_DB"`
	LogLevel     string `env:"MATHPAPER_LOG_LEVEL"     envDefault:"info"`
	LogFormat    string `env:"MATHPAPER_LOG_FORMAT"    envDefault:"pretty"`
	JournalLimit int    `env:"MATHPAPER_JOURNAL_LIMIT" envDefault:"200"`
	// Concurrency bounds parallel block assembly. 0 means GOMAXPROCS.
	Concurrency int `env:"MATHPAPER_CONCURRENCY" envDefault:"0"`
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JournalLimit < 0 {
		return nil, fmt.Errorf("MATHPAPER_JOURNAL_LIMIT must be >= 0, got %d", cfg.JournalLimit)
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("MATHPAPER_CONCURRENCY must be >= 0, got %d", cfg.Concurrency)
	}
	return &cfg, nil
}

// ResolveDBPath returns the database file path in priority order:
// 1. flag (the --db flag value)
// 2. MATHPAPER_DB
// 3. $XDG_DATA_HOME/mathpaper/mathpaper.db
// 4. ~/.local/share/mathpaper/mathpaper.db
//
// The parent directory is created if it does not exist.
func (c *Config) ResolveDBPath(flag string) (string, error) {
	if flag != "" {
		return flag, EnsureDir(flag)
	}
	if c.DBPath != "" {
		return c.DBPath, EnsureDir(c.DBPath)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathpaper", "mathpaper.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
