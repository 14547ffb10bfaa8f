package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type env struct {
	APIHost         string `mapstructure:"API_HOST"`
	CacheSize       int    `mapstructure:"CACHE_SIZE"`
	InvertDirection bool   `mapstructure:"INVERT_DIRECTION"`
	PagesDir        string `mapstructure:"PAGES_DIR"`
	Port            uint   `mapstructure:"PORT"`
	QueryAttr       string `mapstructure:"QUERY_ATTR"`
	RetryAttempts   int    `mapstructure:"RETRY_ATTEMPTS"`
	RetryIntervalMs int    `mapstructure:"RETRY_INTERVAL_MS"`
}

type Config struct {
	env *env
}

var (
	cfgInstance *Config
	cfgOnce     sync.Once
)

// NewConfig loads ./.env and the environment once and panics on malformed
// input.
func NewConfig() *Config {
	cfgOnce.Do(func() {
		cfg, err := Load(".env")
		if err != nil {
			panic(fmt.Sprintf("error loading config: %s", err))
		}
		cfgInstance = cfg
	})
	return cfgInstance
}

// Load reads path (a dotenv file, optional) with environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	v.SetDefault("API_HOST", "localhost:8080")
	v.SetDefault("CACHE_SIZE", 512)
	v.SetDefault("INVERT_DIRECTION", false)
	v.SetDefault("PAGES_DIR", "./pages")
	v.SetDefault("PORT", 8080)
	v.SetDefault("QUERY_ATTR", "data-innerer")
	v.SetDefault("RETRY_ATTEMPTS", 10)
	v.SetDefault("RETRY_INTERVAL_MS", 200)
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var e env
	err = v.Unmarshal(&e)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	if e.RetryAttempts < 1 {
		return nil, fmt.Errorf("RETRY_ATTEMPTS must be at least 1, got %d", e.RetryAttempts)
	}
	if e.RetryIntervalMs < 0 {
		return nil, fmt.Errorf("RETRY_INTERVAL_MS must not be negative, got %d", e.RetryIntervalMs)
	}
	return &Config{&e}, nil
}

func (c *Config) APIHost() string {
	return c.env.APIHost
}

func (c *Config) CacheSize() int {
	return c.env.CacheSize
}

func (c *Config) InvertDirection() bool {
	return c.env.InvertDirection
}

func (c *Config) PagesDir() string {
	return c.env.PagesDir
}

func (c *Config) Port() uint {
	return c.env.Port
}

func (c *Config) QueryAttr() string {
	return c.env.QueryAttr
}

func (c *Config) RetryAttempts() int {
	return c.env.RetryAttempts
}

func (c *Config) RetryInterval() time.Duration {
	return time.Duration(c.env.RetryIntervalMs) * time.Millisecond
}
