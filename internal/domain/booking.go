package domain

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingPending         BookingStatus = "pending"
	BookingAwaitingPayment BookingStatus = "awaiting_payment"
	BookingConfirmed       BookingStatus = "confirmed"
	BookingCompleted       BookingStatus = "completed"
	BookingCanceled        BookingStatus = "canceled"
	BookingExpired         BookingStatus = "expired"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingAwaitingPayment, BookingConfirmed, BookingCompleted, BookingCanceled, BookingExpired:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// CourtSummary is the court snapshot the server embeds in a booking.
type CourtSummary struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Booking is the server-owned record. The client never mutates it; only its
// identifier is cached locally as the last-booking reference.
type Booking struct {
	ID         int64         `json:"id"`
	Status     BookingStatus `json:"status"`
	CourtID    int64         `json:"courtId"`
	Court      *CourtSummary `json:"court,omitempty"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	TotalPrice int64         `json:"totalPrice"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// BookingRequest is assembled fresh per submission attempt and is only sent
// once every field has passed normalization.
type BookingRequest struct {
	UserID       int64     `json:"userId"`
	CourtID      int64     `json:"courtId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	TeamName     string    `json:"teamName,omitempty"`
	FindOpponent bool      `json:"findOpponent"`
}

var (
	ErrInvalidUserID    = errors.New("user id must be positive")
	ErrInvalidCourtID   = errors.New("court id must be positive")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

func (r *BookingRequest) Validate() error {
	if r.UserID <= 0 {
		return ErrInvalidUserID
	}
	if r.CourtID <= 0 {
		return ErrInvalidCourtID
	}
	if r.StartTime.IsZero() || !r.EndTime.After(r.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// BookingContext carries the slot the user picked before filling the form.
// CourtID is the preferred identifier field; Court is a descriptive fallback
// that may embed the id in a slug and is only consulted when CourtID does
// not resolve.
type BookingContext struct {
	CourtID   string
	Court     string
	Date      string // "2006-01-02"
	TimeRange string // "HH:MM-HH:MM"
	Price     int64
}

// FormInput is the raw personal-data form owned by the presentation layer.
type FormInput struct {
	Name         string
	Phone        string
	Email        string
	TeamName     string
	FindOpponent bool
}
