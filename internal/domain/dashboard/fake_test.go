package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/gateway"
	"github.com/salonbook/salon-web/internal/pkg/salonapi"
)

// fakeBackend is an in-memory salon backend. It enforces the same rules the
// real one does so that client-side and server-side checks can be told apart.
type fakeBackend struct {
	users    []user.User
	services []catalog.Service
	bookings []booking.Booking
	feedback []booking.Feedback

	writes  int
	readErr error
}

func newFakeBackend() *fakeBackend {
	ann := user.User{ID: 20, Name: "Ann", Email: "ann@salon.test", Role: user.RoleStylist, Specialization: "Color"}
	leo := user.User{ID: 21, Name: "Leo", Email: "leo@salon.test", Role: user.RoleStylist}
	bob := user.User{ID: 10, Name: "Bob", Email: "bob@mail.test", Role: user.RoleCustomer}
	admin := user.User{ID: 1, Name: "Root", Email: "root@salon.test", Role: user.RoleAdmin}

	cut := catalog.Service{ID: 3, Name: "Cut", Price: 25, DurationMinutes: 30, Stylist: &ann}
	dye := catalog.Service{ID: 4, Name: "Dye", Price: 60, DurationMinutes: 90, Stylist: &leo}

	return &fakeBackend{
		users:    []user.User{admin, ann, leo, bob},
		services: []catalog.Service{cut, dye},
		bookings: []booking.Booking{
			{ID: 100, Customer: bob, Stylist: ann, Service: cut, Status: booking.StatusPending},
			{ID: 101, Customer: bob, Stylist: ann, Service: cut, Status: booking.StatusConfirmed},
			{ID: 102, Customer: bob, Stylist: ann, Service: cut, Status: booking.StatusCompleted},
			{ID: 103, Customer: bob, Stylist: leo, Service: dye, Status: booking.StatusPending},
		},
	}
}

func rejected(status int, msg string) error {
	return &gateway.Error{Kind: gateway.KindClient, Status: status, Message: msg}
}

func (f *fakeBackend) byRole(role user.Role) []user.User {
	var out []user.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (f *fakeBackend) bookingsWhere(keep func(booking.Booking) bool) []booking.Booking {
	var out []booking.Booking
	for _, b := range f.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// CustomerBackend

func (f *fakeBackend) Stylists(ctx context.Context) ([]user.User, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.byRole(user.RoleStylist), nil
}

func (f *fakeBackend) Services(ctx context.Context) ([]catalog.Service, error) {
	return f.services, nil
}

func (f *fakeBackend) ServicesByStylist(ctx context.Context, stylistID int64) ([]catalog.Service, error) {
	var out []catalog.Service
	for _, s := range f.services {
		if s.StylistID() == stylistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeBackend) CustomerBookings(ctx context.Context, customerID int64) ([]booking.Booking, error) {
	return f.BookingHistory(ctx, customerID)
}

func (f *fakeBackend) BookingHistory(ctx context.Context, customerID int64) ([]booking.Booking, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.bookingsWhere(func(b booking.Booking) bool { return b.Customer.ID == customerID }), nil
}

func (f *fakeBackend) CustomerFeedback(ctx context.Context, customerID int64) ([]booking.Feedback, error) {
	var out []booking.Feedback
	for _, fb := range f.feedback {
		if fb.Customer.ID == customerID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeBackend) StylistRating(ctx context.Context, stylistID int64) (float64, error) {
	fb, _ := f.StylistFeedback(ctx, stylistID)
	return booking.AverageRating(fb), nil
}

// booking.Remote

func (f *fakeBackend) CreateBooking(ctx context.Context, customerID int64, req booking.CreateRequest) (*booking.Booking, error) {
	f.writes++
	b := booking.Booking{
		ID:              int64(200 + len(f.bookings)),
		Customer:        user.User{ID: customerID},
		Stylist:         user.User{ID: req.StylistID},
		Service:         catalog.Service{ID: req.ServiceID},
		BookingDateTime: req.BookingDateTime,
		Status:          booking.StatusPending,
		Notes:           req.Notes,
	}
	f.bookings = append(f.bookings, b)
	return &b, nil
}

func (f *fakeBackend) UpdateBookingStatus(ctx context.Context, bookingID int64, status booking.Status) (*booking.Booking, error) {
	f.writes++
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			if err := booking.NewLifecycle().Check(f.bookings[i].Status, status, user.RoleStylist); err != nil {
				return nil, rejected(http.StatusBadRequest, err.Error())
			}
			f.bookings[i].Status = status
			out := f.bookings[i]
			return &out, nil
		}
	}
	return nil, rejected(http.StatusNotFound, "Booking not found")
}

func (f *fakeBackend) CreateFeedback(ctx context.Context, customerID int64, req booking.FeedbackRequest) (*booking.Feedback, error) {
	f.writes++
	for _, fb := range f.feedback {
		if fb.Booking.ID == req.BookingID {
			return nil, rejected(http.StatusBadRequest, "Feedback already exists for this booking")
		}
	}
	for _, b := range f.bookings {
		if b.ID == req.BookingID {
			fb := booking.Feedback{
				ID:       int64(len(f.feedback) + 1),
				Booking:  b,
				Customer: b.Customer,
				Stylist:  b.Stylist,
				Rating:   req.Rating,
				Comment:  req.Comment,
			}
			f.feedback = append(f.feedback, fb)
			return &fb, nil
		}
	}
	return nil, rejected(http.StatusNotFound, "Booking not found")
}

// StylistBackend

func (f *fakeBackend) StylistBookings(ctx context.Context, stylistID int64) ([]booking.Booking, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.bookingsWhere(func(b booking.Booking) bool { return b.Stylist.ID == stylistID }), nil
}

func (f *fakeBackend) PendingBookings(ctx context.Context, stylistID int64) ([]booking.Booking, error) {
	return f.bookingsWhere(func(b booking.Booking) bool {
		return b.Stylist.ID == stylistID && b.Status == booking.StatusPending
	}), nil
}

func (f *fakeBackend) StylistServices(ctx context.Context, stylistID int64) ([]catalog.Service, error) {
	return f.ServicesByStylist(ctx, stylistID)
}

func (f *fakeBackend) CreateService(ctx context.Context, stylistID int64, req catalog.ServiceRequest) (*catalog.Service, error) {
	f.writes++
	owner := user.User{ID: stylistID}
	s := catalog.Service{
		ID:              int64(10 + len(f.services)),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Stylist:         &owner,
	}
	f.services = append(f.services, s)
	return &s, nil
}

func (f *fakeBackend) UpdateService(ctx context.Context, serviceID int64, req catalog.ServiceRequest) (*catalog.Service, error) {
	f.writes++
	for i := range f.services {
		if f.services[i].ID == serviceID {
			f.services[i].Name = req.Name
			f.services[i].Description = req.Description
			f.services[i].Price = req.Price
			f.services[i].DurationMinutes = req.DurationMinutes
			out := f.services[i]
			return &out, nil
		}
	}
	return nil, rejected(http.StatusNotFound, "Service not found")
}

func (f *fakeBackend) DeleteService(ctx context.Context, serviceID int64) error {
	f.writes++
	for i := range f.services {
		if f.services[i].ID == serviceID {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return rejected(http.StatusNotFound, "Service not found")
}

func (f *fakeBackend) StylistProfile(ctx context.Context, stylistID int64) (*user.User, error) {
	return f.Stylist(ctx, stylistID)
}

func (f *fakeBackend) UpdateStylistProfile(ctx context.Context, stylistID int64, req user.ProfileUpdate) (*user.User, error) {
	f.writes++
	for i := range f.users {
		if f.users[i].ID == stylistID {
			if req.Name != "" {
				f.users[i].Name = req.Name
			}
			if req.Email != "" {
				f.users[i].Email = req.Email
			}
			if req.Specialization != nil {
				f.users[i].Specialization = *req.Specialization
			}
			out := f.users[i]
			return &out, nil
		}
	}
	return nil, rejected(http.StatusNotFound, "Stylist not found")
}

func (f *fakeBackend) StylistFeedback(ctx context.Context, stylistID int64) ([]booking.Feedback, error) {
	var out []booking.Feedback
	for _, fb := range f.feedback {
		if fb.Stylist.ID == stylistID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeBackend) StylistCustomers(ctx context.Context, stylistID int64) ([]user.User, error) {
	seen := map[int64]bool{}
	var out []user.User
	for _, b := range f.bookings {
		if b.Stylist.ID == stylistID && !seen[b.Customer.ID] {
			seen[b.Customer.ID] = true
			out = append(out, b.Customer)
		}
	}
	return out, nil
}

// AdminBackend

func (f *fakeBackend) DashboardStats(ctx context.Context) (*salonapi.DashboardStats, error) {
	counts := booking.CountByStatus(f.bookings)
	return &salonapi.DashboardStats{
		TotalStylists:     len(f.byRole(user.RoleStylist)),
		TotalCustomers:    len(f.byRole(user.RoleCustomer)),
		TotalBookings:     len(f.bookings),
		PendingBookings:   counts[booking.StatusPending],
		ConfirmedBookings: counts[booking.StatusConfirmed],
		TotalFeedback:     len(f.feedback),
	}, nil
}

func (f *fakeBackend) AllStylists(ctx context.Context) ([]user.User, error) {
	return f.byRole(user.RoleStylist), nil
}

func (f *fakeBackend) Stylist(ctx context.Context, stylistID int64) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == stylistID && u.Role == user.RoleStylist {
			out := u
			return &out, nil
		}
	}
	return nil, rejected(http.StatusNotFound, "Stylist not found")
}

func (f *fakeBackend) UpdateStylist(ctx context.Context, stylistID int64, req user.StylistUpdate) (*user.User, error) {
	spec := req.Specialization
	return f.UpdateStylistProfile(ctx, stylistID, user.ProfileUpdate{Name: req.Name, Email: req.Email, Specialization: &spec})
}

func (f *fakeBackend) DeleteStylist(ctx context.Context, stylistID int64) error {
	f.writes++
	for i := range f.users {
		if f.users[i].ID == stylistID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return rejected(http.StatusNotFound, "Stylist not found")
}

func (f *fakeBackend) AllCustomers(ctx context.Context) ([]user.User, error) {
	return f.byRole(user.RoleCustomer), nil
}

func (f *fakeBackend) AllUsers(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeBackend) AllBookings(ctx context.Context) ([]booking.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBackend) Booking(ctx context.Context, bookingID int64) (*booking.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			out := b
			return &out, nil
		}
	}
	return nil, rejected(http.StatusNotFound, "Booking not found")
}

func (f *fakeBackend) AllFeedback(ctx context.Context) ([]booking.Feedback, error) {
	return f.feedback, nil
}

func (f *fakeBackend) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	f.writes++
	for i := range f.feedback {
		if f.feedback[i].ID == feedbackID {
			f.feedback = append(f.feedback[:i], f.feedback[i+1:]...)
			return nil
		}
	}
	return rejected(http.StatusNotFound, "Feedback not found")
}

func loggedIn(id int64, role user.Role) *session.Session {
	sess := session.New("test")
	sess.Login(session.Identity{ID: id, Role: role})
	return sess
}

type coordinators struct {
	backend  *fakeBackend
	sessions *session.MemoryStore
	customer *Customer
	stylist  *Stylist
	admin    *Admin
}

func newCoordinators() coordinators {
	backend := newFakeBackend()
	bookings := booking.NewService(booking.NewLifecycle(), backend)
	sessions := session.NewMemoryStore(time.Hour)
	return coordinators{
		backend:  backend,
		sessions: sessions,
		customer: NewCustomer(backend, bookings),
		stylist:  NewStylist(backend, bookings, sessions),
		admin:    NewAdmin(backend),
	}
}
