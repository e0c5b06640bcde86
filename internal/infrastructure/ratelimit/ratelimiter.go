package ratelimit

import (
	"context"
	"time"
)

// Limiter admits at most Limit requests per key in each Window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Limit  int
	Window time.Duration
}

// Enabled reports whether the config limits anything at all.
func (c Config) Enabled() bool {
	return c.Limit > 0 && c.Window > 0
}
