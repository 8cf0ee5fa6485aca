package dashboard

import (
	"context"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/salonapi"
)

// CustomerBackend is the backend surface the customer views read from.
type CustomerBackend interface {
	Stylists(ctx context.Context) ([]user.User, error)
	Services(ctx context.Context) ([]catalog.Service, error)
	ServicesByStylist(ctx context.Context, stylistID int64) ([]catalog.Service, error)
	CustomerBookings(ctx context.Context, customerID int64) ([]booking.Booking, error)
	BookingHistory(ctx context.Context, customerID int64) ([]booking.Booking, error)
	CustomerFeedback(ctx context.Context, customerID int64) ([]booking.Feedback, error)
	StylistRating(ctx context.Context, stylistID int64) (float64, error)
}

// StylistBackend is the backend surface the stylist views use.
type StylistBackend interface {
	StylistBookings(ctx context.Context, stylistID int64) ([]booking.Booking, error)
	PendingBookings(ctx context.Context, stylistID int64) ([]booking.Booking, error)
	StylistServices(ctx context.Context, stylistID int64) ([]catalog.Service, error)
	CreateService(ctx context.Context, stylistID int64, req catalog.ServiceRequest) (*catalog.Service, error)
	UpdateService(ctx context.Context, serviceID int64, req catalog.ServiceRequest) (*catalog.Service, error)
	DeleteService(ctx context.Context, serviceID int64) error
	StylistProfile(ctx context.Context, stylistID int64) (*user.User, error)
	UpdateStylistProfile(ctx context.Context, stylistID int64, req user.ProfileUpdate) (*user.User, error)
	StylistFeedback(ctx context.Context, stylistID int64) ([]booking.Feedback, error)
	StylistCustomers(ctx context.Context, stylistID int64) ([]user.User, error)
}

// AdminBackend is the backend surface the admin views use.
type AdminBackend interface {
	DashboardStats(ctx context.Context) (*salonapi.DashboardStats, error)
	AllStylists(ctx context.Context) ([]user.User, error)
	Stylist(ctx context.Context, stylistID int64) (*user.User, error)
	UpdateStylist(ctx context.Context, stylistID int64, req user.StylistUpdate) (*user.User, error)
	DeleteStylist(ctx context.Context, stylistID int64) error
	AllCustomers(ctx context.Context) ([]user.User, error)
	AllUsers(ctx context.Context) ([]user.User, error)
	AllBookings(ctx context.Context) ([]booking.Booking, error)
	Booking(ctx context.Context, bookingID int64) (*booking.Booking, error)
	AllFeedback(ctx context.Context) ([]booking.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID int64) error
}

// SessionSaver persists a session whose identity changed.
type SessionSaver interface {
	Save(ctx context.Context, sess *session.Session) error
}

var (
	_ CustomerBackend = (*salonapi.Client)(nil)
	_ StylistBackend  = (*salonapi.Client)(nil)
	_ AdminBackend    = (*salonapi.Client)(nil)
)
