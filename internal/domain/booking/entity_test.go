package booking

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/salonbook/salon-web/internal/pkg/validator"
)

func TestBookingDecodesBackendPayload(t *testing.T) {
	payload := `{
		"id": 5,
		"customer": {"id": 10, "name": "Mia", "email": "mia@example.com", "role": "CUSTOMER"},
		"stylist": {"id": 20, "name": "Ana", "email": "ana@example.com", "role": "STYLIST", "specialization": "Color"},
		"service": {"id": 3, "name": "Balayage", "price": 120.5, "durationMinutes": 90},
		"bookingDateTime": "2025-06-01T14:00:00",
		"status": "PENDING",
		"notes": "first visit",
		"createdAt": "2025-05-20T09:12:44.123"
	}`

	var b Booking
	if err := json.Unmarshal([]byte(payload), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Status != StatusPending || b.Stylist.ID != 20 || b.Service.DurationMinutes != 90 {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.BookingDateTime.Hour() != 14 {
		t.Fatalf("unexpected booking time: %v", b.BookingDateTime)
	}
}

func TestUnknownStatusFailsDecoding(t *testing.T) {
	var b Booking
	err := json.Unmarshal([]byte(`{"id":1,"status":"ON_HOLD"}`), &b)
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" confirmed ")
	if err != nil || st != StatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %q err=%v", st, err)
	}
	if _, err := ParseStatus(""); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestAverageRating(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	got := AverageRating([]Feedback{{Rating: 5}, {Rating: 4}})
	if got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}

func TestValidateRejectsMissingStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"complete", `{"id":7,"status":"CONFIRMED"}`, true},
		{"no status", `{"id":7}`, false},
		{"null body", `null`, false},
		{"no id", `{"status":"PENDING"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Booking
			if err := json.Unmarshal([]byte(tt.body), &b); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := b.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid booking, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMalformedBooking) {
				t.Fatalf("expected ErrMalformedBooking, got %v", err)
			}
		})
	}
}

func TestListValidateChecksEveryBooking(t *testing.T) {
	var l List
	if err := json.Unmarshal([]byte(`[{"id":1,"status":"PENDING"},{"id":2}]`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := l.Validate(); !errors.Is(err, ErrMalformedBooking) {
		t.Fatalf("expected ErrMalformedBooking, got %v", err)
	}
}

func TestStatusRequestUsesLifecycleStatuses(t *testing.T) {
	for _, st := range Statuses() {
		if err := validator.Struct(&StatusRequest{Status: st}); err != nil {
			t.Fatalf("expected %s to be valid, got %v", st, err)
		}
	}

	err := validator.Struct(&StatusRequest{Status: "ON_HOLD"})
	var verrs validator.Errors
	if !errors.As(err, &verrs) || verrs["status"] == "" {
		t.Fatalf("expected status error, got %v", err)
	}
}
