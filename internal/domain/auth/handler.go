package auth

import (
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/middleware"
	"github.com/salonbook/salon-web/internal/pkg/errorhandler"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/response"
)

// Handler handles auth HTTP requests
type Handler struct {
	service  *Service
	sessions *session.Service
}

// NewHandler creates auth handler
func NewHandler(service *Service, sessions *session.Service) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// Signup handles POST /api/auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req user.SignupRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	sess, err := h.service.Signup(r.Context(), middleware.GetSession(r.Context()), req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	h.issue(w, r, sess, http.StatusCreated)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	sess, err := h.service.Login(r.Context(), middleware.GetSession(r.Context()), req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	h.issue(w, r, sess, http.StatusOK)
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(r.Context(), w, middleware.GetSession(r.Context())); err != nil {
		logger.FromContext(r.Context()).Warn().Err(err).Msg("Failed to delete session")
	}
	response.NoContent(w)
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetSession(r.Context()).Require()
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, identity)
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request, sess *session.Session, status int) {
	if err := h.sessions.Issue(r.Context(), w, sess); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	identity, _ := sess.Identity()
	response.JSON(w, status, identity)
}
