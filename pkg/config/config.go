package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

//go:embed feeds.yml
var defaultCatalog []byte

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:headlines.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string (postgres:// selects PostgreSQL)"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Feeds []Feed `yaml:"feeds" json:"feeds" jsonschema:"description=Feed catalog (embedded default catalog used when empty)"`
}

// ScheduleConfig holds scheduler settings
type ScheduleConfig struct {
	Spec       string `yaml:"spec" json:"spec" jsonschema:"default=0 */2 * * *,description=Cron spec of the aggregation run evaluated in UTC"`
	RunOnStart bool   `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=false,description=Trigger one run right after the scheduler starts"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-request timeout"`
	Delay     time.Duration `yaml:"delay" json:"delay" jsonschema:"default=250ms,description=Pause after every source"`
	MaxItems  int           `yaml:"max_items" json:"max_items" jsonschema:"default=5,minimum=1,description=Most recent items kept per source"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Headlines/1.0,description=User agent for HTTP requests"`
}

// Feed is a catalog entry
type Feed struct {
	Name     string `yaml:"name" json:"name" jsonschema:"description=Display name of the source"`
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=Feed endpoint"`
	Category string `yaml:"category" json:"category" jsonschema:"description=Category assigned to articles of this source"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults and the embedded catalog
func Default() (*Config, error) {
	var cfg Config
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultFeeds returns the embedded feed catalog
func DefaultFeeds() ([]Feed, error) {
	var catalog struct {
		Feeds []Feed `yaml:"feeds"`
	}
	if err := yaml.Unmarshal(defaultCatalog, &catalog); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return catalog.Feeds, nil
}

func (c *Config) setDefaults() error {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:headlines.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if c.Schedule.Spec == "" {
		c.Schedule.Spec = "0 */2 * * *"
	}

	// set defaults for fetch
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Fetch.Delay == 0 {
		c.Fetch.Delay = 250 * time.Millisecond
	}
	if c.Fetch.MaxItems == 0 {
		c.Fetch.MaxItems = 5
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Headlines/1.0"
	}

	if len(c.Feeds) == 0 {
		feeds, err := DefaultFeeds()
		if err != nil {
			return err
		}
		c.Feeds = feeds
	}
	return nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.Delay < 0 {
		return fmt.Errorf("fetch delay must be non-negative")
	}
	if cfg.Fetch.MaxItems < 1 {
		return fmt.Errorf("fetch max_items must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeeds returns the feed catalog
func (c *Config) GetFeeds() []Feed {
	return c.Feeds
}
