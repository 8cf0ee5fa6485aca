package dashboard

import (
	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/salonapi"
)

// BookingView is a booking plus the status changes the viewer may request.
type BookingView struct {
	booking.Booking
	Actions []booking.Status `json:"actions"`
}

// CustomerOverview is the customer dashboard.
type CustomerOverview struct {
	Stylists []user.User       `json:"stylists"`
	Services []catalog.Service `json:"services"`
	Bookings []booking.Booking `json:"bookings"`
}

// FeedbackPage lists bookings awaiting feedback and feedback already given.
type FeedbackPage struct {
	Eligible  []booking.Booking  `json:"eligible"`
	Submitted []booking.Feedback `json:"submitted"`
}

// StylistStats are the counters on the stylist dashboard.
type StylistStats struct {
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalServices     int     `json:"totalServices"`
	AverageRating     float64 `json:"averageRating"`
	TotalFeedback     int     `json:"totalFeedback"`
}

// StylistOverview is the stylist dashboard.
type StylistOverview struct {
	Pending   []BookingView      `json:"pending"`
	Bookings  []BookingView      `json:"bookings"`
	Services  []catalog.Service  `json:"services"`
	Customers []user.User        `json:"customers"`
	Feedback  []booking.Feedback `json:"feedback"`
	Stats     StylistStats       `json:"stats"`
}

// AdminOverview is the admin dashboard.
type AdminOverview struct {
	Stats     salonapi.DashboardStats `json:"stats"`
	Stylists  []user.User             `json:"stylists"`
	Customers []user.User             `json:"customers"`
	Bookings  []booking.Booking       `json:"bookings"`
	Feedback  []booking.Feedback      `json:"feedback"`
}
