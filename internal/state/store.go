// Package state holds the client's durable slots: the last-booking
// reference shared by the submission and status workflows, and the session
// token written at login.
package state

import "context"

// Store is a pair of single-value, last-write-wins slots. Only one workflow
// writes at a time in normal operation; concurrent processes (two terminals,
// two tabs) are not arbitrated — a known simplification.
type Store interface {
	// LastBookingID returns the most recent booking identifier seen by
	// either workflow, or "" when never set.
	LastBookingID(ctx context.Context) (string, error)
	// SetLastBookingID overwrites the slot. It is never cleared.
	SetLastBookingID(ctx context.Context, id string) error

	SessionToken(ctx context.Context) (string, error)
	SetSessionToken(ctx context.Context, token string) error
}
