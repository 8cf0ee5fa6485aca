package salonapi

import (
	"context"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/user"
)

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalStylists     int `json:"totalStylists"`
	TotalCustomers    int `json:"totalCustomers"`
	TotalBookings     int `json:"totalBookings"`
	PendingBookings   int `json:"pendingBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	TotalFeedback     int `json:"totalFeedback"`
}

// AllStylists lists every stylist account.
func (c *Client) AllStylists(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := c.read(ctx, "admin.stylists", &out, "/admin/stylists"); err != nil {
		return nil, err
	}
	return out, nil
}

// Stylist returns one stylist account.
func (c *Client) Stylist(ctx context.Context, stylistID int64) (*user.User, error) {
	var out user.User
	if err := c.read(ctx, "admin.stylist", &out, "/admin/stylists/%d", stylistID); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStylist edits a stylist account.
func (c *Client) UpdateStylist(ctx context.Context, stylistID int64, req user.StylistUpdate) (*user.User, error) {
	var out user.User
	if err := c.write(ctx, "admin.update_stylist", http.MethodPut, req, &out, "/admin/stylists/%d", stylistID); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStylist removes a stylist account.
func (c *Client) DeleteStylist(ctx context.Context, stylistID int64) error {
	var out Message
	return c.write(ctx, "admin.delete_stylist", http.MethodDelete, nil, &out, "/admin/stylists/%d", stylistID)
}

// AllCustomers lists every customer account.
func (c *Client) AllCustomers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := c.read(ctx, "admin.customers", &out, "/admin/customers"); err != nil {
		return nil, err
	}
	return out, nil
}

// AllUsers lists every account.
func (c *Client) AllUsers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := c.read(ctx, "admin.users", &out, "/admin/users"); err != nil {
		return nil, err
	}
	return out, nil
}

// AllBookings lists every booking.
func (c *Client) AllBookings(ctx context.Context) ([]booking.Booking, error) {
	var out booking.List
	if err := c.read(ctx, "admin.bookings", &out, "/admin/bookings"); err != nil {
		return nil, err
	}
	return out, nil
}

// Booking returns one booking.
func (c *Client) Booking(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	var out booking.Booking
	if err := c.read(ctx, "admin.booking", &out, "/admin/bookings/%d", bookingID); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllFeedback lists every feedback entry.
func (c *Client) AllFeedback(ctx context.Context) ([]booking.Feedback, error) {
	var out []booking.Feedback
	if err := c.read(ctx, "admin.feedback", &out, "/admin/feedback"); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteFeedback removes a feedback entry.
func (c *Client) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	var out Message
	return c.write(ctx, "admin.delete_feedback", http.MethodDelete, nil, &out, "/admin/feedback/%d", feedbackID)
}

// DashboardStats returns the admin counters.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.read(ctx, "admin.dashboard_stats", &out, "/admin/dashboard/stats"); err != nil {
		return nil, err
	}
	return &out, nil
}
