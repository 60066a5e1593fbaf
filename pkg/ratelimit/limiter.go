// Package ratelimit caps complaint submissions per source address using a
// sliding window over request timestamps.
package ratelimit

import "context"

// Limiter decides whether one more request is allowed for a key.
type Limiter interface {
	// Allow records the request and reports whether it fits inside the
	// configured window.
	Allow(ctx context.Context, key string) (bool, error)
}
