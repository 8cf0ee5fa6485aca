package dashboard

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/middleware"
	"github.com/salonbook/salon-web/internal/pkg/errorhandler"
	"github.com/salonbook/salon-web/internal/pkg/response"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Handler serves the role dashboards.
type Handler struct {
	customer *Customer
	stylist  *Stylist
	admin    *Admin
}

// NewHandler creates dashboard handler
func NewHandler(customer *Customer, stylist *Stylist, admin *Admin) *Handler {
	return &Handler{customer: customer, stylist: stylist, admin: admin}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := response.DecodeJSON(r.Body, v); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return false
	}
	return true
}

// --- Customer ---

// CustomerOverview handles GET /api/customer/dashboard
func (h *Handler) CustomerOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.customer.Overview(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// ServicesByStylist handles GET /api/customer/stylists/{stylistId}/services
func (h *Handler) ServicesByStylist(w http.ResponseWriter, r *http.Request) {
	stylistID, ok := pathID(w, r, "stylistId")
	if !ok {
		return
	}
	out, err := h.customer.ServicesByStylist(r.Context(), middleware.GetSession(r.Context()), stylistID)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// StylistRating handles GET /api/customer/stylists/{stylistId}/rating
func (h *Handler) StylistRating(w http.ResponseWriter, r *http.Request) {
	stylistID, ok := pathID(w, r, "stylistId")
	if !ok {
		return
	}
	rating, err := h.customer.StylistRating(r.Context(), middleware.GetSession(r.Context()), stylistID)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, map[string]float64{"averageRating": rating})
}

// History handles GET /api/customer/bookings?status=COMPLETED
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	var status booking.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := booking.ParseStatus(raw)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		status = parsed
	}

	out, err := h.customer.History(r.Context(), middleware.GetSession(r.Context()), status)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// CreateBooking handles POST /api/customer/bookings
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.customer.CreateBooking(r.Context(), middleware.GetSession(r.Context()), req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, out)
}

// FeedbackPage handles GET /api/customer/feedback
func (h *Handler) FeedbackPage(w http.ResponseWriter, r *http.Request) {
	out, err := h.customer.FeedbackPage(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// SubmitFeedback handles POST /api/customer/feedback
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req booking.FeedbackRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.customer.SubmitFeedback(r.Context(), middleware.GetSession(r.Context()), req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, out)
}

// --- Stylist ---

// StylistOverview handles GET /api/stylist/dashboard
func (h *Handler) StylistOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.stylist.Overview(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// UpdateBookingStatus handles PUT /api/stylist/bookings/{bookingId}/status
func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "bookingId")
	if !ok {
		return
	}
	var req booking.StatusRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validator.Struct(&req); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	out, err := h.stylist.UpdateBookingStatus(r.Context(), middleware.GetSession(r.Context()), bookingID, req.Status)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// ListServices handles GET /api/stylist/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	out, err := h.stylist.Services(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// CreateService handles POST /api/stylist/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req catalog.ServiceRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.stylist.CreateService(r.Context(), middleware.GetSession(r.Context()), req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, out)
}

// UpdateService handles PUT /api/stylist/services/{serviceId}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r, "serviceId")
	if !ok {
		return
	}
	var req catalog.ServiceRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.stylist.UpdateService(r.Context(), middleware.GetSession(r.Context()), serviceID, req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// DeleteService handles DELETE /api/stylist/services/{serviceId}
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r, "serviceId")
	if !ok {
		return
	}
	if err := h.stylist.DeleteService(r.Context(), middleware.GetSession(r.Context()), serviceID); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

// Profile handles GET /api/stylist/profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	out, err := h.stylist.Profile(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// UpdateProfile handles PUT /api/stylist/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req user.ProfileUpdate
	if !decode(w, r, &req) {
		return
	}
	out, err := h.stylist.UpdateProfile(r.Context(), middleware.GetSession(r.Context()), req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// --- Admin ---

// AdminOverview handles GET /api/admin/dashboard
func (h *Handler) AdminOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.admin.Overview(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// Users handles GET /api/admin/users?role=STYLIST
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	var role user.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed, err := user.ParseRole(raw)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		role = parsed
	}
	out, err := h.admin.Users(r.Context(), middleware.GetSession(r.Context()), role)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// GetStylist handles GET /api/admin/stylists/{stylistId}
func (h *Handler) GetStylist(w http.ResponseWriter, r *http.Request) {
	stylistID, ok := pathID(w, r, "stylistId")
	if !ok {
		return
	}
	out, err := h.admin.Stylist(r.Context(), middleware.GetSession(r.Context()), stylistID)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// UpdateStylist handles PUT /api/admin/stylists/{stylistId}
func (h *Handler) UpdateStylist(w http.ResponseWriter, r *http.Request) {
	stylistID, ok := pathID(w, r, "stylistId")
	if !ok {
		return
	}
	var req user.StylistUpdate
	if !decode(w, r, &req) {
		return
	}
	out, err := h.admin.UpdateStylist(r.Context(), middleware.GetSession(r.Context()), stylistID, req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// DeleteStylist handles DELETE /api/admin/stylists/{stylistId}
func (h *Handler) DeleteStylist(w http.ResponseWriter, r *http.Request) {
	stylistID, ok := pathID(w, r, "stylistId")
	if !ok {
		return
	}
	if err := h.admin.DeleteStylist(r.Context(), middleware.GetSession(r.Context()), stylistID); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

// GetBooking handles GET /api/admin/bookings/{bookingId}
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "bookingId")
	if !ok {
		return
	}
	out, err := h.admin.Booking(r.Context(), middleware.GetSession(r.Context()), bookingID)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, out)
}

// DeleteFeedback handles DELETE /api/admin/feedback/{feedbackId}
func (h *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, ok := pathID(w, r, "feedbackId")
	if !ok {
		return
	}
	if err := h.admin.DeleteFeedback(r.Context(), middleware.GetSession(r.Context()), feedbackID); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}
