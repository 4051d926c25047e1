// Package workflow implements the two booking workflows: submission
// (create booking, persist the reference, obtain a payment redirect) and
// status lookup. Collaborators are consumed through small interfaces so the
// workflows can be exercised without a backend.
package workflow

import (
	"context"
	"errors"

	"github.com/arenaku/courtbook/internal/api"
	"github.com/arenaku/courtbook/internal/domain"
	"github.com/arenaku/courtbook/internal/session"
)

// BookingAPI is the remote surface the submission workflow depends on.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error)
	RequestPaymentRedirect(ctx context.Context, bookingID int64) (string, error)
}

// StatusAPI is the remote surface the status workflow depends on.
type StatusAPI interface {
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
}

// UserSource resolves the current authenticated identity.
type UserSource interface {
	CurrentUser(ctx context.Context) (*session.User, error)
}

// ReferenceStore is the persisted last-booking slot.
type ReferenceStore interface {
	LastBookingID(ctx context.Context) (string, error)
	SetLastBookingID(ctx context.Context, id string) error
}

// Notifier receives the user-facing messages both workflows emit. The
// presentation layer decides how to render them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// State names a workflow position. The submission workflow is linear:
// validating → creating-booking → requesting-payment, terminating in
// redirecting or status-fallback, with failed reachable from the first two
// states only.
type State string

const (
	StateValidating        State = "validating"
	StateCreating          State = "creating-booking"
	StateRequestingPayment State = "requesting-payment"
	StateRedirecting       State = "redirecting"
	StateStatusFallback    State = "falling-back-to-status"
	StateFailed            State = "failed"
)

// Outcome is the terminal result of a submission.
type Outcome struct {
	State       State
	BookingID   int64  // set once a booking exists server-side, even on later failures
	RedirectURL string // set only for StateRedirecting
	Reason      string // the user-facing message already handed to the notifier
}

// messageFor prefers a server-provided message over the generic fallback.
func messageFor(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
