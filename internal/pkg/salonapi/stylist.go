package salonapi

import (
	"context"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/user"
)

type statusBody struct {
	Status booking.Status `json:"status"`
}

// StylistBookings lists every booking assigned to a stylist.
func (c *Client) StylistBookings(ctx context.Context, stylistID int64) ([]booking.Booking, error) {
	var out booking.List
	if err := c.read(ctx, "stylist.bookings", &out, "/stylist/bookings/%d", stylistID); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingBookings lists a stylist's bookings awaiting a decision.
func (c *Client) PendingBookings(ctx context.Context, stylistID int64) ([]booking.Booking, error) {
	var out booking.List
	if err := c.read(ctx, "stylist.pending_bookings", &out, "/stylist/bookings/pending/%d", stylistID); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBookingStatus asks the backend to move a booking to status.
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID int64, status booking.Status) (*booking.Booking, error) {
	var out booking.Booking
	body := statusBody{Status: status}
	if err := c.write(ctx, "stylist.update_booking_status", http.MethodPut, body, &out, "/stylist/bookings/%d/status", bookingID); err != nil {
		return nil, err
	}
	return &out, nil
}

// StylistServices lists the services a stylist offers.
func (c *Client) StylistServices(ctx context.Context, stylistID int64) ([]catalog.Service, error) {
	var out []catalog.Service
	if err := c.read(ctx, "stylist.services", &out, "/stylist/services/%d", stylistID); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateService adds a service owned by stylistID.
func (c *Client) CreateService(ctx context.Context, stylistID int64, req catalog.ServiceRequest) (*catalog.Service, error) {
	var out catalog.Service
	if err := c.write(ctx, "stylist.create_service", http.MethodPost, req, &out, "/stylist/services/%d", stylistID); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateService edits a service. The owning stylist never changes.
func (c *Client) UpdateService(ctx context.Context, serviceID int64, req catalog.ServiceRequest) (*catalog.Service, error) {
	var out catalog.Service
	if err := c.write(ctx, "stylist.update_service", http.MethodPut, req, &out, "/stylist/services/%d", serviceID); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService removes a service.
func (c *Client) DeleteService(ctx context.Context, serviceID int64) error {
	var out Message
	return c.write(ctx, "stylist.delete_service", http.MethodDelete, nil, &out, "/stylist/services/%d", serviceID)
}

// StylistProfile returns a stylist's own profile.
func (c *Client) StylistProfile(ctx context.Context, stylistID int64) (*user.User, error) {
	var out user.User
	if err := c.read(ctx, "stylist.profile", &out, "/stylist/profile/%d", stylistID); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStylistProfile edits a stylist's own profile.
func (c *Client) UpdateStylistProfile(ctx context.Context, stylistID int64, req user.ProfileUpdate) (*user.User, error) {
	var out user.User
	if err := c.write(ctx, "stylist.update_profile", http.MethodPut, req, &out, "/stylist/profile/%d", stylistID); err != nil {
		return nil, err
	}
	return &out, nil
}

// StylistFeedback lists feedback left for a stylist.
func (c *Client) StylistFeedback(ctx context.Context, stylistID int64) ([]booking.Feedback, error) {
	var out []booking.Feedback
	if err := c.read(ctx, "stylist.feedback", &out, "/stylist/feedback/%d", stylistID); err != nil {
		return nil, err
	}
	return out, nil
}

// StylistCustomers lists the distinct customers who booked a stylist.
func (c *Client) StylistCustomers(ctx context.Context, stylistID int64) ([]user.User, error) {
	var out []user.User
	if err := c.read(ctx, "stylist.customers", &out, "/stylist/customers/%d", stylistID); err != nil {
		return nil, err
	}
	return out, nil
}
