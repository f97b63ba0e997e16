package lexmatch

import (
	"time"

	"go.uber.org/zap"
)

type clientConfig struct {
	provider      string
	annotator     Annotator
	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration
	maxInputBytes int
	logger        *zap.Logger
}

// Option configures the Client.
type Option func(*clientConfig)

// WithAnnotator replaces the builtin English annotator with a custom one.
// The name is used in cache keys, so different annotators never share entries.
func WithAnnotator(name string, a Annotator) Option {
	return func(c *clientConfig) {
		c.provider = name
		c.annotator = a
	}
}

// WithRedisCache enables the annotation cache backed by Redis.
func WithRedisCache(addrs []string, password string) Option {
	return func(c *clientConfig) {
		c.cacheAddrs = addrs
		c.cachePassword = password
	}
}

// WithCacheTTL overrides the cache entry lifetime (default 24h).
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithMaxInputBytes overrides the per-text size cap.
func WithMaxInputBytes(n int) Option {
	return func(c *clientConfig) {
		c.maxInputBytes = n
	}
}

// WithLogger sets the logger used by the cache layer (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
