package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Remote is the backend side of booking writes.
type Remote interface {
	CreateBooking(ctx context.Context, customerID int64, req CreateRequest) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status Status) (*Booking, error)
	CreateFeedback(ctx context.Context, customerID int64, req FeedbackRequest) (*Feedback, error)
}

// Service runs the lifecycle gate in front of every booking write.
// The gate is advisory: the backend re-checks and its answer is final.
type Service struct {
	lifecycle *Lifecycle
	remote    Remote
	now       func() time.Time
}

// NewService creates a new booking service.
func NewService(lifecycle *Lifecycle, remote Remote) *Service {
	return &Service{
		lifecycle: lifecycle,
		remote:    remote,
		now:       time.Now,
	}
}

// Lifecycle returns the state machine the service enforces.
func (s *Service) Lifecycle() *Lifecycle {
	return s.lifecycle
}

// Create books an appointment for a customer. New bookings start PENDING.
func (s *Service) Create(ctx context.Context, actor Actor, req CreateRequest) (*Booking, error) {
	if actor.Role != user.RoleCustomer {
		return nil, fmt.Errorf("%w: only customers can create bookings", ErrUnauthorized)
	}

	errs := validator.Validate(&req)
	if req.BookingDateTime.IsZero() {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["bookingDateTime"] = "This field is required"
	} else if !req.BookingDateTime.After(s.now()) {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["bookingDateTime"] = "Booking time must be in the future"
	}
	if len(errs) > 0 {
		return nil, validator.Errors(errs)
	}

	created, err := s.remote.CreateBooking(ctx, actor.ID, req)
	if err != nil {
		return nil, mapRejection(err, ErrInvalidTransition)
	}

	logger.LogInfo(ctx, "Booking created",
		"booking_id", created.ID,
		"customer_id", actor.ID,
		"stylist_id", req.StylistID,
		"status", created.Status,
	)
	return created, nil
}

// Transition asks the backend to move b to the target status. The returned
// booking is the backend's acknowledged record; b itself is left untouched.
func (s *Service) Transition(ctx context.Context, b *Booking, to Status, actor Actor) (*Booking, error) {
	if err := s.lifecycle.Transition(b, to, actor); err != nil {
		return nil, err
	}

	updated, err := s.remote.UpdateBookingStatus(ctx, b.ID, to)
	if err != nil {
		return nil, mapRejection(err, ErrInvalidTransition)
	}

	logger.LogInfo(ctx, "Booking status changed",
		"booking_id", b.ID,
		"from", b.Status,
		"to", updated.Status,
		"actor_id", actor.ID,
		"actor_role", actor.Role,
	)
	return updated, nil
}

// SubmitFeedback rates a completed booking. existing is the customer's
// feedback so far; b must be the booking named by req.BookingID.
func (s *Service) SubmitFeedback(ctx context.Context, b *Booking, existing []Feedback, req FeedbackRequest, actor Actor) (*Feedback, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	if b.ID != req.BookingID {
		return nil, fmt.Errorf("%w: request names booking %d, got %d", ErrBookingNotFound, req.BookingID, b.ID)
	}
	if err := s.lifecycle.CheckFeedback(b, existing, actor); err != nil {
		return nil, err
	}

	created, err := s.remote.CreateFeedback(ctx, actor.ID, req)
	if err != nil {
		return nil, mapRejection(err, ErrNotEligible)
	}

	logger.LogInfo(ctx, "Feedback submitted",
		"booking_id", b.ID,
		"customer_id", actor.ID,
		"rating", req.Rating,
	)
	return created, nil
}
