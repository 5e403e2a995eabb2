package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// AdminKey is the bearer token for /api/v1/admin. Empty disables auth.
		AdminKey string
		// RateLimit is requests per second per client. Zero disables it.
		RateLimit float64
	}
	Store struct {
		// Backend is memory or postgres.
		Backend string
		// Seed loads the demo posts and categories into an empty store.
		Seed bool
		// LogQueries logs every SQL query at debug level.
		LogQueries bool
	}
}

// Load reads a TOML file and fills in defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.setDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendMemory
	}
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.App.Port)
	}
	if c.App.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.App.RateLimit)
	}
	return nil
}

// SetDatabaseURL replaces the [Database] section with a postgres URL, keeping
// the pool settings from the file.
func (c *Config) SetDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("parse database URL: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxRetries = c.Database.MaxRetries
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt
	return nil
}

// Addr is the address the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}
