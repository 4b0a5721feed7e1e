package redis

import (
	"fmt"
	"time"
)

// Config represents the Redis connection configuration
type Config struct {
	Host     string
	Port     int
	Password string
	Database int

	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration

	// DefaultCacheTTL applies to any named cache without an explicit TTL
	DefaultCacheTTL time.Duration
	// CacheTTLs maps cache names to their TTLs
	CacheTTLs map[string]time.Duration
}

// DefaultConfig returns a configuration suitable for a local Redis
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		Database:        0,
		MinIdleConns:    1,
		MaxIdleConns:    10,
		MaxActive:       50,
		MaxRetries:      3,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolTimeout:     4 * time.Second,
		DefaultCacheTTL: 1 * time.Hour,
		CacheTTLs:       make(map[string]time.Duration),
	}
}

// WithCacheTTL registers a TTL for a named cache
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("redis host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid redis database: %d", c.Database)
	}
	return nil
}
