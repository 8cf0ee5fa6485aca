package dashboard

import (
	"context"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Customer coordinates the customer dashboard.
type Customer struct {
	backend  CustomerBackend
	bookings *booking.Service
}

// NewCustomer creates the customer coordinator
func NewCustomer(backend CustomerBackend, bookings *booking.Service) *Customer {
	return &Customer{backend: backend, bookings: bookings}
}

// Overview loads stylists, services and the customer's bookings.
func (c *Customer) Overview(ctx context.Context, sess *session.Session) (*CustomerOverview, error) {
	identity, err := sess.Require(user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	stylists, err := c.backend.Stylists(ctx)
	if err != nil {
		return nil, err
	}
	services, err := c.backend.Services(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := c.backend.CustomerBookings(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	return &CustomerOverview{
		Stylists: orEmpty(stylists),
		Services: orEmpty(services),
		Bookings: orEmpty(bookings),
	}, nil
}

// ServicesByStylist lists what one stylist offers, for the booking form.
func (c *Customer) ServicesByStylist(ctx context.Context, sess *session.Session, stylistID int64) ([]catalog.Service, error) {
	if _, err := sess.Require(user.RoleCustomer); err != nil {
		return nil, err
	}
	services, err := c.backend.ServicesByStylist(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	return orEmpty(services), nil
}

// History lists the customer's bookings, optionally only those in status.
func (c *Customer) History(ctx context.Context, sess *session.Session, status booking.Status) ([]booking.Booking, error) {
	identity, err := sess.Require(user.RoleCustomer)
	if err != nil {
		return nil, err
	}
	history, err := c.backend.BookingHistory(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return orEmpty(booking.FilterByStatus(history, status)), nil
}

// CreateBooking requests a new appointment.
func (c *Customer) CreateBooking(ctx context.Context, sess *session.Session, req booking.CreateRequest) (*booking.Booking, error) {
	identity, err := sess.Require(user.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return c.bookings.Create(ctx, identity.Actor(), req)
}

// FeedbackPage lists completed bookings without feedback and the feedback given so far.
func (c *Customer) FeedbackPage(ctx context.Context, sess *session.Session) (*FeedbackPage, error) {
	identity, err := sess.Require(user.RoleCustomer)
	if err != nil {
		return nil, err
	}
	history, existing, err := c.feedbackState(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return &FeedbackPage{
		Eligible:  c.bookings.Lifecycle().EligibleForFeedback(history, existing),
		Submitted: orEmpty(existing),
	}, nil
}

// SubmitFeedback rates one of the customer's completed bookings.
func (c *Customer) SubmitFeedback(ctx context.Context, sess *session.Session, req booking.FeedbackRequest) (*booking.Feedback, error) {
	identity, err := sess.Require(user.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	history, existing, err := c.feedbackState(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	target := findBooking(history, req.BookingID)
	if target == nil {
		return nil, booking.ErrBookingNotFound
	}
	return c.bookings.SubmitFeedback(ctx, target, existing, req, identity.Actor())
}

// StylistRating returns a stylist's average rating.
func (c *Customer) StylistRating(ctx context.Context, sess *session.Session, stylistID int64) (float64, error) {
	if _, err := sess.Require(user.RoleCustomer); err != nil {
		return 0, err
	}
	return c.backend.StylistRating(ctx, stylistID)
}

func (c *Customer) feedbackState(ctx context.Context, customerID int64) ([]booking.Booking, []booking.Feedback, error) {
	history, err := c.backend.BookingHistory(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	existing, err := c.backend.CustomerFeedback(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	return history, existing, nil
}

func findBooking(bookings []booking.Booking, id int64) *booking.Booking {
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i]
		}
	}
	return nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
