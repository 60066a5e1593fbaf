// Package token holds the server-side anti-forgery token records, keyed by
// session identifier. A record is valid only while the current time is
// before its expiry; records are one-time use and deleted on consumption.
package token

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no record exists for a session identifier.
var ErrNotFound = errors.New("token record not found")

// Record is one issued anti-forgery token and its absolute expiry.
type Record struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the record is past its expiry at the given time.
func (r *Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store is the injectable token table. The in-memory implementation is the
// single-instance default; the Redis implementation allows multi-instance
// deployments to share tokens.
type Store interface {
	// Issue stores or overwrites the record for a session identifier.
	Issue(ctx context.Context, sessionID string, rec Record) error
	// Get returns the record for a session identifier, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*Record, error)
	// Delete removes the record for a session identifier. Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, sessionID string) error
	// Sweep removes all expired records.
	Sweep(ctx context.Context) error
}
