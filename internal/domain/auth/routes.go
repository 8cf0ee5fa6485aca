package auth

import (
	"github.com/go-chi/chi/v5"

	"github.com/salonbook/salon-web/internal/middleware"
)

// Routes returns auth router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole())
		r.Get("/me", h.Me)
	})

	return r
}
