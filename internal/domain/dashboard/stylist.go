package dashboard

import (
	"context"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Stylist coordinates the stylist dashboard.
type Stylist struct {
	backend  StylistBackend
	bookings *booking.Service
	sessions SessionSaver
}

// NewStylist creates the stylist coordinator
func NewStylist(backend StylistBackend, bookings *booking.Service, sessions SessionSaver) *Stylist {
	return &Stylist{backend: backend, bookings: bookings, sessions: sessions}
}

// Overview loads the stylist's bookings with the actions each one offers,
// plus services, customers, feedback and counters.
func (s *Stylist) Overview(ctx context.Context, sess *session.Session) (*StylistOverview, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}
	id := identity.ID

	pending, err := s.backend.PendingBookings(ctx, id)
	if err != nil {
		return nil, err
	}
	all, err := s.backend.StylistBookings(ctx, id)
	if err != nil {
		return nil, err
	}
	services, err := s.backend.StylistServices(ctx, id)
	if err != nil {
		return nil, err
	}
	customers, err := s.backend.StylistCustomers(ctx, id)
	if err != nil {
		return nil, err
	}
	feedback, err := s.backend.StylistFeedback(ctx, id)
	if err != nil {
		return nil, err
	}

	actor := identity.Actor()
	counts := booking.CountByStatus(all)
	return &StylistOverview{
		Pending:   s.views(pending, actor),
		Bookings:  s.views(all, actor),
		Services:  orEmpty(services),
		Customers: orEmpty(customers),
		Feedback:  orEmpty(feedback),
		Stats: StylistStats{
			TotalBookings:     len(all),
			PendingBookings:   counts[booking.StatusPending],
			ConfirmedBookings: counts[booking.StatusConfirmed],
			CompletedBookings: counts[booking.StatusCompleted],
			TotalCustomers:    len(customers),
			TotalServices:     len(services),
			AverageRating:     booking.AverageRating(feedback),
			TotalFeedback:     len(feedback),
		},
	}, nil
}

// UpdateBookingStatus moves one of the stylist's bookings to status. The
// current state is re-read from the backend before the lifecycle check.
func (s *Stylist) UpdateBookingStatus(ctx context.Context, sess *session.Session, bookingID int64, status booking.Status) (*BookingView, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}

	all, err := s.backend.StylistBookings(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	current := findBooking(all, bookingID)
	if current == nil {
		return nil, booking.ErrBookingNotFound
	}

	actor := identity.Actor()
	updated, err := s.bookings.Transition(ctx, current, status, actor)
	if err != nil {
		return nil, err
	}
	view := s.view(*updated, actor)
	return &view, nil
}

// Services lists the stylist's services.
func (s *Stylist) Services(ctx context.Context, sess *session.Session) ([]catalog.Service, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}
	services, err := s.backend.StylistServices(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return orEmpty(services), nil
}

// CreateService adds a service owned by the stylist.
func (s *Stylist) CreateService(ctx context.Context, sess *session.Session, req catalog.ServiceRequest) (*catalog.Service, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateService(ctx, identity.ID, req)
	if err != nil {
		return nil, err
	}
	logger.LogInfo(ctx, "Service created", "service_id", created.ID, "stylist_id", identity.ID)
	return created, nil
}

// UpdateService edits one of the stylist's services.
func (s *Stylist) UpdateService(ctx context.Context, sess *session.Session, serviceID int64, req catalog.ServiceRequest) (*catalog.Service, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	if err := s.ownService(ctx, identity.ID, serviceID); err != nil {
		return nil, err
	}

	updated, err := s.backend.UpdateService(ctx, serviceID, req)
	if err != nil {
		return nil, err
	}
	logger.LogInfo(ctx, "Service updated", "service_id", serviceID, "stylist_id", identity.ID)
	return updated, nil
}

// DeleteService removes one of the stylist's services.
func (s *Stylist) DeleteService(ctx context.Context, sess *session.Session, serviceID int64) error {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return err
	}
	if err := s.ownService(ctx, identity.ID, serviceID); err != nil {
		return err
	}

	if err := s.backend.DeleteService(ctx, serviceID); err != nil {
		return err
	}
	logger.LogInfo(ctx, "Service deleted", "service_id", serviceID, "stylist_id", identity.ID)
	return nil
}

// Profile returns the stylist's profile.
func (s *Stylist) Profile(ctx context.Context, sess *session.Session) (*user.User, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}
	return s.backend.StylistProfile(ctx, identity.ID)
}

// UpdateProfile edits the stylist's profile and refreshes the session identity.
func (s *Stylist) UpdateProfile(ctx context.Context, sess *session.Session, req user.ProfileUpdate) (*user.User, error) {
	identity, err := sess.Require(user.RoleStylist)
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	updated, err := s.backend.UpdateStylistProfile(ctx, identity.ID, req)
	if err != nil {
		return nil, err
	}

	identity.Name = updated.Name
	identity.Email = updated.Email
	identity.Specialization = updated.Specialization
	sess.Login(identity)
	if err := s.sessions.Save(ctx, sess); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("Failed to save refreshed session")
	}
	return updated, nil
}

func (s *Stylist) ownService(ctx context.Context, stylistID, serviceID int64) error {
	services, err := s.backend.StylistServices(ctx, stylistID)
	if err != nil {
		return err
	}
	_, err = catalog.Find(services, serviceID)
	return err
}

func (s *Stylist) views(bookings []booking.Booking, actor booking.Actor) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, s.view(b, actor))
	}
	return out
}

func (s *Stylist) view(b booking.Booking, actor booking.Actor) BookingView {
	return BookingView{Booking: b, Actions: orEmpty(s.bookings.Lifecycle().Actions(&b, actor))}
}
