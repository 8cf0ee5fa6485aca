package booking

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/datetime"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

func init() {
	names := make([]string, 0, len(Statuses()))
	for _, st := range Statuses() {
		names = append(names, string(st))
	}
	validator.RegisterValues("booking_status", func(s string) bool {
		return Status(s).IsValid()
	}, "Invalid status. Must be: "+strings.Join(names, ", "))
}

// Status represents booking status (matches the backend's BookingStatus enum)
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses returns every valid status in lifecycle order
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusRejected, StatusCompleted, StatusCancelled}
}

// ParseStatus parses a status, accepting any letter case
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// IsValid returns true for the five known statuses
func (s Status) IsValid() bool {
	for _, st := range Statuses() {
		if s == st {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition leaves s
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// UnmarshalJSON rejects statuses outside the known set, so a decoded Booking
// always carries a valid status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("booking status: %w", err)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Booking is an appointment as returned by the salon backend.
// Customer-scoped listings omit the nested user IDs; those stay zero.
type Booking struct {
	ID              int64           `json:"id"`
	Customer        user.User       `json:"customer"`
	Stylist         user.User       `json:"stylist"`
	Service         catalog.Service `json:"service"`
	BookingDateTime datetime.Local  `json:"bookingDateTime"`
	Status          Status          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       datetime.Local  `json:"createdAt"`
	UpdatedAt       datetime.Local  `json:"updatedAt"`
}

// Validate rejects a decoded booking that lacks its ID or status. The status
// decoder only runs when the key is present, so this covers `{}` and `null`.
func (b *Booking) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrMalformedBooking)
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("%w: booking %d has status %q", ErrMalformedBooking, b.ID, b.Status)
	}
	return nil
}

// List is a decoded collection of bookings.
type List []Booking

// Validate checks every booking in the list.
func (l List) Validate() error {
	for i := range l {
		if err := l[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Feedback is a customer's rating of a completed booking.
type Feedback struct {
	ID        int64          `json:"id"`
	Booking   Booking        `json:"booking"`
	Customer  user.User      `json:"customer"`
	Stylist   user.User      `json:"stylist"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	CreatedAt datetime.Local `json:"createdAt"`
}

// Actor is whoever triggers a lifecycle operation.
type Actor struct {
	ID   int64
	Role user.Role
}

// FilterByStatus returns bookings with the given status; an empty status keeps all
func FilterByStatus(bookings []Booking, status Status) []Booking {
	if status == "" {
		return bookings
	}
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// CountByStatus tallies bookings per status
func CountByStatus(bookings []Booking) map[Status]int {
	counts := make(map[Status]int, len(Statuses()))
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}

// AverageRating returns the mean rating, or 0 when there is no feedback
func AverageRating(feedback []Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	sum := 0
	for _, f := range feedback {
		sum += f.Rating
	}
	return float64(sum) / float64(len(feedback))
}
