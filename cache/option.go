package cache

import "github.com/viant/resilient/logger"

const (
	// DefaultMaxEntries limits number of entries
	DefaultMaxEntries = 100
	// DefaultMaxCost limits total bytes, 50 MiB
	DefaultMaxCost = 50 << 20
)

// Option represents cache option
type Option func(c *Cache)

// WithMaxEntries sets entry count limit, zero disables the limit
func WithMaxEntries(maxEntries int) Option {
	return func(c *Cache) {
		c.maxEntries = maxEntries
	}
}

// WithMaxCost sets total byte cost limit, zero disables the limit
func WithMaxCost(maxCost int64) Option {
	return func(c *Cache) {
		c.maxCost = maxCost
	}
}

// WithLogger sets logger
func WithLogger(log logger.Logger) Option {
	return func(c *Cache) {
		c.logger = log
	}
}

// WithCoalescing toggles sharing a single fetch between concurrent misses of the same key
func WithCoalescing(enabled bool) Option {
	return func(c *Cache) {
		c.coalesce = enabled
	}
}
