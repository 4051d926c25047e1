package workflow

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/arenaku/courtbook/internal/domain"
	"github.com/arenaku/courtbook/internal/ident"
	"github.com/arenaku/courtbook/pkg/logger"
)

// Messages emitted by the status workflow.
const (
	MsgInvalidBookingID = "invalid booking ID"
	MsgStatusFetchError = "failed to fetch booking status"
)

// QueryParamBookingID is the navigational query parameter a deep link uses
// to address a booking.
const QueryParamBookingID = "bookingId"

// StatusViewer runs the status-lookup workflow. Refresh may be called
// repeatedly; identical input issues an equivalent remote call each time,
// with no cumulative side effect beyond overwriting the reference slot.
type StatusViewer struct {
	api       StatusAPI
	store     ReferenceStore
	notify    Notifier
	initialID string
	query     url.Values

	booking *domain.Booking
	loading atomic.Bool
}

type StatusOption func(*StatusViewer)

// WithInitialID seeds the viewer with an identifier handed over by the
// previous workflow (e.g. the submission fallback path).
func WithInitialID(id string) StatusOption {
	return func(v *StatusViewer) { v.initialID = strings.TrimSpace(id) }
}

// WithQuery supplies the navigational query parameters of the current view.
func WithQuery(q url.Values) StatusOption {
	return func(v *StatusViewer) { v.query = q }
}

func NewStatusViewer(api StatusAPI, store ReferenceStore, notify Notifier, opts ...StatusOption) *StatusViewer {
	v := &StatusViewer{api: api, store: store, notify: notify}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Booking returns the currently displayed record, nil when idle or after a
// failed refresh.
func (v *StatusViewer) Booking() *domain.Booking {
	return v.booking
}

// Loading reports whether a fetch is in flight.
func (v *StatusViewer) Loading() bool {
	return v.loading.Load()
}

// ResolveID picks the identifier to look up: the explicit candidate, then
// the initialization id, then the bookingId query parameter, then the
// persisted last-booking reference. "" means nothing resolved.
func (v *StatusViewer) ResolveID(ctx context.Context, candidate string) string {
	if s := strings.TrimSpace(candidate); s != "" {
		return s
	}
	if v.initialID != "" {
		return v.initialID
	}
	if v.query != nil {
		if s := strings.TrimSpace(v.query.Get(QueryParamBookingID)); s != "" {
			return s
		}
	}

	id, err := v.store.LastBookingID(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to read last booking reference", "error", err)
		return ""
	}
	return id
}

// Refresh fetches the booking addressed by candidate (or the resolution
// chain when candidate is empty). With no identifier from any source the
// viewer stays idle: no remote call, no displayed record. A failed fetch
// clears the displayed record but leaves the persisted reference untouched,
// so a known-good reference is never erased by a bad lookup.
func (v *StatusViewer) Refresh(ctx context.Context, candidate string) (*domain.Booking, error) {
	ctx = context.WithValue(ctx, logger.WorkflowKey, "status")

	id := v.ResolveID(ctx, candidate)
	if id == "" {
		v.booking = nil
		return nil, nil
	}

	numID, ok := ident.ID(id)
	if !ok {
		v.booking = nil
		v.notify.Error(MsgInvalidBookingID)
		return nil, fmt.Errorf("booking id %q does not normalize to an identifier", id)
	}

	v.loading.Store(true)
	defer v.loading.Store(false)

	booking, err := v.api.GetBooking(ctx, numID)
	if err != nil {
		logger.ErrorContext(ctx, "status fetch failed", "error", err, "booking_id", numID)
		v.booking = nil
		v.notify.Error(messageFor(err, MsgStatusFetchError))
		return nil, err
	}

	v.booking = booking
	// Keep the reference fresh: a manual lookup of a different booking makes
	// that booking the one to recover next time.
	if err := v.store.SetLastBookingID(ctx, id); err != nil {
		logger.WarnContext(ctx, "failed to persist last booking reference", "error", err)
	}
	return booking, nil
}
