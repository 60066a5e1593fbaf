// Package csrf implements the anti-forgery token lifecycle: issue, validate,
// consume. Validation fails closed on any missing, unknown, mismatched or
// expired token.
package csrf

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"support-desk/pkg/logger"
	"support-desk/pkg/token"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every validation failure. Callers must not
// learn which check rejected the request.
var ErrInvalidToken = errors.New("invalid or expired csrf token")

// Service manages token issuance and validation on top of an injectable store.
type Service struct {
	store token.Store
	ttl   time.Duration

	now func() time.Time
}

// NewService creates a csrf service issuing tokens with the given lifetime.
func NewService(store token.Store, ttl time.Duration) *Service {
	return &Service{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// TTL returns the token lifetime, which also bounds the cookie max-age.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue mints a fresh token for the session, overwriting any existing record.
// An empty sessionID mints a new session identifier. Expired records are
// swept from the store as a side effect.
func (s *Service) Issue(ctx context.Context, sessionID string) (string, string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	tok, err := randomToken()
	if err != nil {
		return "", "", fmt.Errorf("failed to mint csrf token: %w", err)
	}

	rec := token.Record{
		Token:     tok,
		ExpiresAt: s.now().Add(s.ttl),
	}
	err = s.store.Issue(ctx, sessionID, rec)
	if err != nil {
		return "", "", fmt.Errorf("failed to store csrf token: %w", err)
	}

	// opportunistic cleanup, keeps the table from accumulating stale sessions
	err = s.store.Sweep(ctx)
	if err != nil {
		logger.Error(err, "failed to sweep expired csrf tokens")
	}

	return sessionID, tok, nil
}

// Validate checks the presented token against the stored record.
func (s *Service) Validate(ctx context.Context, sessionID, presented string) error {
	if sessionID == "" || presented == "" {
		return ErrInvalidToken
	}

	rec, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, token.ErrNotFound) {
			return ErrInvalidToken
		}
		logger.Error(err, "failed to look up csrf token")
		return ErrInvalidToken
	}

	if rec.Expired(s.now()) {
		return ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(rec.Token), []byte(presented)) != 1 {
		return ErrInvalidToken
	}

	return nil
}

// Consume deletes the session's record so the token cannot be replayed.
func (s *Service) Consume(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// randomToken returns a 64-character hex string from 32 random bytes.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	_, err := rand.Read(buf)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
