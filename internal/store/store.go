// Package store is the single source of truth for device-code sessions.
// It tracks every in-flight authorization attempt from the moment a code
// is issued until the device collects the token or the session expires.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrConflict is returned when a device code or correlation ID is
	// already bound to a live session. Callers regenerate and retry.
	ErrConflict = errors.New("session key conflict")

	// ErrNotFound is returned when no live session matches.
	ErrNotFound = errors.New("session not found")

	// ErrAlreadyCompleted guards against duplicate callbacks: the first
	// exchange already captured the token and it must not be overwritten.
	ErrAlreadyCompleted = errors.New("session already completed")
)

type Store interface {
	Create(s *Session) error
	LookupByDeviceCode(deviceCode string) (Session, error)
	LookupByCorrelation(correlationID string) (Session, error)
	CompleteByCorrelation(correlationID string, token *Token) error
	Get(deviceCode string) Outcome
	Sweep(now time.Time)
	Len() int
}

// RunSweeper evicts expired sessions on a fixed interval until the
// context is canceled. Lazy expiry on reads keeps the store correct on
// its own; the sweeper bounds memory growth under abandoned sessions.
func RunSweeper(ctx context.Context, s Store, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.Sweep(now)
		}
	}
}
