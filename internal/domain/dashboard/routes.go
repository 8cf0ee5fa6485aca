package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/salonbook/salon-web/internal/middleware"
)

// CustomerRoutes returns the customer dashboard router
func (h *Handler) CustomerRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequireCustomer())

	r.Get("/dashboard", h.CustomerOverview)
	r.Get("/stylists/{stylistId}/services", h.ServicesByStylist)
	r.Get("/stylists/{stylistId}/rating", h.StylistRating)
	r.Get("/bookings", h.History)
	r.Post("/bookings", h.CreateBooking)
	r.Get("/feedback", h.FeedbackPage)
	r.Post("/feedback", h.SubmitFeedback)

	return r
}

// StylistRoutes returns the stylist dashboard router
func (h *Handler) StylistRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequireStylist())

	r.Get("/dashboard", h.StylistOverview)
	r.Put("/bookings/{bookingId}/status", h.UpdateBookingStatus)

	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.ListServices)
		r.Post("/", h.CreateService)
		r.Put("/{serviceId}", h.UpdateService)
		r.Delete("/{serviceId}", h.DeleteService)
	})

	r.Get("/profile", h.Profile)
	r.Put("/profile", h.UpdateProfile)

	return r
}

// AdminRoutes returns the admin dashboard router
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequireAdmin())

	r.Get("/dashboard", h.AdminOverview)
	r.Get("/users", h.Users)

	r.Route("/stylists/{stylistId}", func(r chi.Router) {
		r.Get("/", h.GetStylist)
		r.Put("/", h.UpdateStylist)
		r.Delete("/", h.DeleteStylist)
	})

	r.Get("/bookings/{bookingId}", h.GetBooking)
	r.Delete("/feedback/{feedbackId}", h.DeleteFeedback)

	return r
}
