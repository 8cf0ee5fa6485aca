package booking

import "github.com/salonbook/salon-web/internal/pkg/datetime"

// CreateRequest is the body of a new booking.
type CreateRequest struct {
	StylistID       int64          `json:"stylistId" validate:"required,min=1"`
	ServiceID       int64          `json:"serviceId" validate:"required,min=1"`
	BookingDateTime datetime.Local `json:"bookingDateTime"`
	Notes           string         `json:"notes,omitempty" validate:"max=500"`
}

// StatusRequest is the body of a status change.
type StatusRequest struct {
	Status Status `json:"status" validate:"required,booking_status"`
}

// FeedbackRequest is the body of a feedback submission.
type FeedbackRequest struct {
	BookingID int64  `json:"bookingId" validate:"required,min=1"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required,max=1000"`
}
