package workflow

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/arenaku/courtbook/internal/domain"
	"github.com/arenaku/courtbook/internal/ident"
	"github.com/arenaku/courtbook/internal/timerange"
	"github.com/arenaku/courtbook/pkg/logger"
)

// User-facing messages emitted by the submission workflow.
const (
	MsgMissingRequired = "please fill in the required fields (name and phone number)"
	MsgSessionExpired  = "session expired, please sign in again"
	MsgInvalidCourt    = "invalid court selection, please pick a court from the list"
	MsgInvalidTime     = "invalid time format"
	MsgBookingInvalid  = "booking invalid, please try again"
	MsgRedirecting     = "redirecting to the payment page..."
	MsgNoPaymentPage   = "could not obtain the payment page, please try again"
	MsgNetworkFallback = "a network error occurred, check the booking status to confirm"
)

// Submitter runs the submission workflow. It performs no automatic retries
// and does not serialize concurrent submissions; callers should consult
// Submitting before starting another one.
type Submitter struct {
	api        BookingAPI
	users      UserSource
	store      ReferenceStore
	notify     Notifier
	loc        *time.Location
	submitting atomic.Bool
}

func NewSubmitter(api BookingAPI, users UserSource, store ReferenceStore, notify Notifier, loc *time.Location) *Submitter {
	if loc == nil {
		loc = time.Local
	}
	return &Submitter{api: api, users: users, store: store, notify: notify, loc: loc}
}

// Submitting reports whether a submission's remote phase is in flight.
func (s *Submitter) Submitting() bool {
	return s.submitting.Load()
}

// Submit validates form and context, then sequences the create-booking and
// payment-redirect calls. Validation failures abort before any remote call.
// Once a booking exists server-side its identifier survives every later
// failure: the reference slot is written before the payment call, and the
// returned Outcome carries the id on the fallback paths.
func (s *Submitter) Submit(ctx context.Context, form domain.FormInput, bctx domain.BookingContext) Outcome {
	ctx = context.WithValue(ctx, logger.WorkflowKey, "submit")

	form = form.Trimmed()
	if form.Name == "" || form.Phone == "" {
		return s.fail(MsgMissingRequired)
	}

	user, err := s.users.CurrentUser(ctx)
	if err != nil || user == nil {
		return s.fail(MsgSessionExpired)
	}

	courtID, ok := resolveCourtID(bctx)
	if !ok {
		return s.fail(MsgInvalidCourt)
	}

	start, end, err := timerange.Build(bctx.Date, bctx.TimeRange, s.loc)
	if err != nil {
		return s.fail(MsgInvalidTime)
	}

	req := &domain.BookingRequest{
		UserID:       user.ID,
		CourtID:      courtID,
		StartTime:    start,
		EndTime:      end,
		TeamName:     form.TeamName,
		FindOpponent: form.FindOpponent,
	}
	if err := req.Validate(); err != nil {
		return s.fail(MsgInvalidTime)
	}

	s.submitting.Store(true)
	defer s.submitting.Store(false)

	booking, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "create booking failed", "error", err)
		return s.fail(messageFor(err, MsgBookingInvalid))
	}
	if booking == nil || booking.ID <= 0 {
		// A record without a usable identifier is treated like a failed
		// create: nothing to reference, nothing to pay for.
		logger.ErrorContext(ctx, "create booking returned no usable identifier")
		return s.fail(MsgBookingInvalid)
	}

	ctx = context.WithValue(ctx, logger.BookingIDKey, booking.ID)
	logger.InfoContext(ctx, "booking created", "court_id", courtID, "start", start)

	// Persist the reference before the payment call. The payment step is the
	// failure-prone one, and the status workflow must be able to recover the
	// booking even when it goes wrong.
	refID := strconv.FormatInt(booking.ID, 10)
	if err := s.store.SetLastBookingID(ctx, refID); err != nil {
		logger.WarnContext(ctx, "failed to persist last booking reference", "error", err)
	}

	redirect, err := s.api.RequestPaymentRedirect(ctx, booking.ID)
	if err != nil {
		logger.ErrorContext(ctx, "payment redirect request failed", "error", err)
		msg := messageFor(err, MsgNetworkFallback)
		s.notify.Error(msg)
		return Outcome{State: StateStatusFallback, BookingID: booking.ID, Reason: msg}
	}
	if redirect == "" {
		s.notify.Error(MsgNoPaymentPage)
		return Outcome{State: StateStatusFallback, BookingID: booking.ID, Reason: MsgNoPaymentPage}
	}

	s.notify.Success(MsgRedirecting)
	return Outcome{State: StateRedirecting, BookingID: booking.ID, RedirectURL: redirect}
}

func (s *Submitter) fail(msg string) Outcome {
	s.notify.Error(msg)
	return Outcome{State: StateFailed, Reason: msg}
}

// resolveCourtID prefers the explicit identifier field and falls back to
// the descriptive court field, which may embed the id in a slug.
func resolveCourtID(bctx domain.BookingContext) (int64, bool) {
	if id, ok := ident.ID(bctx.CourtID); ok {
		return id, true
	}
	return ident.ID(bctx.Court)
}
