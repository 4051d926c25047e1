package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/arenaku/courtbook/internal/domain"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "awaiting_payment", "confirmed", "completed", "canceled", "expired"} {
		if _, ok := domain.ParseBookingStatus(valid); !ok {
			t.Fatalf("expected %q to parse", valid)
		}
	}

	if _, ok := domain.ParseBookingStatus("on_trip"); ok {
		t.Fatal("expected unknown status to fail")
	}
}

func TestBookingRequestValidate(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	valid := domain.BookingRequest{UserID: 1, CourtID: 2, StartTime: start, EndTime: end}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(r *domain.BookingRequest)
		wantErr error
	}{
		{"zero user", func(r *domain.BookingRequest) { r.UserID = 0 }, domain.ErrInvalidUserID},
		{"zero court", func(r *domain.BookingRequest) { r.CourtID = 0 }, domain.ErrInvalidCourtID},
		{"end before start", func(r *domain.BookingRequest) { r.EndTime = start.Add(-time.Hour) }, domain.ErrInvalidTimeRange},
		{"end equals start", func(r *domain.BookingRequest) { r.EndTime = start }, domain.ErrInvalidTimeRange},
		{"zero start", func(r *domain.BookingRequest) { r.StartTime = time.Time{} }, domain.ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if err := req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormInputTrimmed(t *testing.T) {
	form := domain.FormInput{
		Name:     "  Budi Santoso  ",
		Phone:    " 0812-3456-789 ",
		Email:    " budi@example.com ",
		TeamName: " Garuda FC ",
	}

	trimmed := form.Trimmed()

	if trimmed.Name != "Budi Santoso" {
		t.Fatalf("Name = %q", trimmed.Name)
	}
	if trimmed.Phone != "08123456789" {
		t.Fatalf("Phone = %q", trimmed.Phone)
	}
	if trimmed.Email != "budi@example.com" {
		t.Fatalf("Email = %q", trimmed.Email)
	}
	if trimmed.TeamName != "Garuda FC" {
		t.Fatalf("TeamName = %q", trimmed.TeamName)
	}
}
