package salonapi

import (
	"context"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/user"
)

var _ booking.Remote = (*Client)(nil)

// Rating is a stylist's average rating.
type Rating struct {
	AverageRating float64 `json:"averageRating"`
}

// Stylists lists every stylist.
func (c *Client) Stylists(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := c.read(ctx, "customer.stylists", &out, "/customer/stylists"); err != nil {
		return nil, err
	}
	return out, nil
}

// Services lists every service.
func (c *Client) Services(ctx context.Context) ([]catalog.Service, error) {
	var out []catalog.Service
	if err := c.read(ctx, "customer.services", &out, "/customer/services"); err != nil {
		return nil, err
	}
	return out, nil
}

// ServicesByStylist lists the services one stylist offers.
func (c *Client) ServicesByStylist(ctx context.Context, stylistID int64) ([]catalog.Service, error) {
	var out []catalog.Service
	if err := c.read(ctx, "customer.services_by_stylist", &out, "/customer/services/stylist/%d", stylistID); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking books an appointment for a customer.
func (c *Client) CreateBooking(ctx context.Context, customerID int64, req booking.CreateRequest) (*booking.Booking, error) {
	var out booking.Booking
	if err := c.write(ctx, "customer.create_booking", http.MethodPost, req, &out, "/customer/bookings/%d", customerID); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerBookings lists a customer's bookings. Nested user IDs are not included.
func (c *Client) CustomerBookings(ctx context.Context, customerID int64) ([]booking.Booking, error) {
	var out booking.List
	if err := c.read(ctx, "customer.bookings", &out, "/customer/bookings/%d", customerID); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingHistory lists a customer's bookings with full nested records.
func (c *Client) BookingHistory(ctx context.Context, customerID int64) ([]booking.Booking, error) {
	var out booking.List
	if err := c.read(ctx, "customer.booking_history", &out, "/customer/bookings/history/%d", customerID); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFeedback rates a completed booking.
func (c *Client) CreateFeedback(ctx context.Context, customerID int64, req booking.FeedbackRequest) (*booking.Feedback, error) {
	var out booking.Feedback
	if err := c.write(ctx, "customer.create_feedback", http.MethodPost, req, &out, "/customer/feedback/%d", customerID); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerFeedback lists feedback a customer has left.
func (c *Client) CustomerFeedback(ctx context.Context, customerID int64) ([]booking.Feedback, error) {
	var out []booking.Feedback
	if err := c.read(ctx, "customer.feedback", &out, "/customer/feedback/%d", customerID); err != nil {
		return nil, err
	}
	return out, nil
}

// StylistRating returns a stylist's average rating, 0 when unrated.
func (c *Client) StylistRating(ctx context.Context, stylistID int64) (float64, error) {
	var out Rating
	if err := c.read(ctx, "customer.stylist_rating", &out, "/customer/stylist/%d/rating", stylistID); err != nil {
		return 0, err
	}
	return out.AverageRating, nil
}
