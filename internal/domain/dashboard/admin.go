package dashboard

import (
	"context"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Admin coordinates the admin dashboard.
type Admin struct {
	backend AdminBackend
}

// NewAdmin creates the admin coordinator
func NewAdmin(backend AdminBackend) *Admin {
	return &Admin{backend: backend}
}

// Overview loads the counters and every collection the admin manages.
func (a *Admin) Overview(ctx context.Context, sess *session.Session) (*AdminOverview, error) {
	if _, err := sess.Require(user.RoleAdmin); err != nil {
		return nil, err
	}

	stats, err := a.backend.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	stylists, err := a.backend.AllStylists(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := a.backend.AllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := a.backend.AllBookings(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := a.backend.AllFeedback(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		Stats:     *stats,
		Stylists:  orEmpty(stylists),
		Customers: orEmpty(customers),
		Bookings:  orEmpty(bookings),
		Feedback:  orEmpty(feedback),
	}, nil
}

// Users lists every account, optionally only those with role.
func (a *Admin) Users(ctx context.Context, sess *session.Session, role user.Role) ([]user.User, error) {
	if _, err := sess.Require(user.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := a.backend.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return orEmpty(users), nil
	}
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// Stylist returns one stylist account.
func (a *Admin) Stylist(ctx context.Context, sess *session.Session, stylistID int64) (*user.User, error) {
	if _, err := sess.Require(user.RoleAdmin); err != nil {
		return nil, err
	}
	return a.backend.Stylist(ctx, stylistID)
}

// Booking returns one booking.
func (a *Admin) Booking(ctx context.Context, sess *session.Session, bookingID int64) (*booking.Booking, error) {
	if _, err := sess.Require(user.RoleAdmin); err != nil {
		return nil, err
	}
	return a.backend.Booking(ctx, bookingID)
}

// UpdateStylist edits a stylist account.
func (a *Admin) UpdateStylist(ctx context.Context, sess *session.Session, stylistID int64, req user.StylistUpdate) (*user.User, error) {
	identity, err := sess.Require(user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	updated, err := a.backend.UpdateStylist(ctx, stylistID, req)
	if err != nil {
		return nil, err
	}
	logger.LogInfo(ctx, "Stylist updated", "stylist_id", stylistID, "admin_id", identity.ID)
	return updated, nil
}

// DeleteStylist removes a stylist account.
func (a *Admin) DeleteStylist(ctx context.Context, sess *session.Session, stylistID int64) error {
	identity, err := sess.Require(user.RoleAdmin)
	if err != nil {
		return err
	}
	if err := a.backend.DeleteStylist(ctx, stylistID); err != nil {
		return err
	}
	logger.LogInfo(ctx, "Stylist deleted", "stylist_id", stylistID, "admin_id", identity.ID)
	return nil
}

// DeleteFeedback removes a feedback entry.
func (a *Admin) DeleteFeedback(ctx context.Context, sess *session.Session, feedbackID int64) error {
	identity, err := sess.Require(user.RoleAdmin)
	if err != nil {
		return err
	}
	if err := a.backend.DeleteFeedback(ctx, feedbackID); err != nil {
		return err
	}
	logger.LogInfo(ctx, "Feedback deleted", "feedback_id", feedbackID, "admin_id", identity.ID)
	return nil
}
