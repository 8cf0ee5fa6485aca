package errorhandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/catalog"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/gateway"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/response"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Respond maps err to an HTTP error response and logs it.
func Respond(ctx context.Context, w http.ResponseWriter, err error) {
	var verrs validator.Errors
	if errors.As(err, &verrs) {
		LogValidationError(ctx, verrs)
		response.ValidationError(w, verrs)
		return
	}

	status, info := classify(err)
	HandleError(ctx, w, status, info, err)
}

// classify picks status and body for err. Domain errors win over the backend
// error they may wrap.
func classify(err error) (int, response.ErrorInfo) {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		return http.StatusUnauthorized, response.ErrorInfo{Code: "UNAUTHORIZED", Message: "Please log in"}
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, response.ErrorInfo{Code: "INVALID_CREDENTIALS", Message: messageOr(err, "Invalid email or password")}
	case errors.Is(err, user.ErrSignupRejected):
		return http.StatusBadRequest, response.ErrorInfo{Code: "SIGNUP_REJECTED", Message: "Signup was not accepted"}
	case errors.Is(err, session.ErrForbidden), errors.Is(err, booking.ErrUnauthorized):
		return http.StatusForbidden, response.ErrorInfo{Code: "FORBIDDEN", Message: "You are not allowed to perform this action"}
	case errors.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict, response.ErrorInfo{Code: "INVALID_TRANSITION", Message: messageOr(err, "This status change is not allowed")}
	case errors.Is(err, booking.ErrNotEligible):
		return http.StatusConflict, response.ErrorInfo{Code: "NOT_ELIGIBLE", Message: messageOr(err, "This booking cannot receive feedback")}
	case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, user.ErrUserNotFound), errors.Is(err, catalog.ErrServiceNotFound):
		return http.StatusNotFound, response.ErrorInfo{Code: "NOT_FOUND", Message: messageOr(err, "Not found")}
	}

	if gwErr, ok := gateway.AsError(err); ok {
		info := response.ErrorInfo{Message: gwErr.Message, Kind: string(gwErr.Kind)}
		switch gwErr.Kind {
		case gateway.KindClient:
			info.Code = "BACKEND_REJECTED"
			status := gwErr.Status
			if status < 400 || status > 499 {
				status = http.StatusBadRequest
			}
			return status, info
		case gateway.KindTimeout:
			info.Code = "BACKEND_TIMEOUT"
			return http.StatusGatewayTimeout, info
		case gateway.KindNetwork:
			info.Code = "BACKEND_UNAVAILABLE"
			return http.StatusBadGateway, info
		default:
			info.Code = "BACKEND_ERROR"
			return http.StatusBadGateway, info
		}
	}

	return http.StatusInternalServerError, response.ErrorInfo{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}
}

// messageOr prefers the backend's message for a rejected write.
func messageOr(err error, fallback string) string {
	var rejected *booking.RejectedError
	if errors.As(err, &rejected) && rejected.Cause != nil && rejected.Cause.Message != "" {
		return rejected.Cause.Message
	}
	return fallback
}

// HandleError logs the error and sends the response
func HandleError(ctx context.Context, w http.ResponseWriter, status int, info response.ErrorInfo, err error) {
	event := logger.FromContext(ctx).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromContext(ctx).Error()
	}
	if err != nil {
		event = event.Err(err)
	}
	event.
		Str("error_code", info.Code).
		Str("error_kind", info.Kind).
		Int("status_code", status).
		Msg("Request error")

	response.Fail(w, status, info)
}

// HandlePanicError logs a recovered panic and sends a 500
func HandlePanicError(ctx context.Context, w http.ResponseWriter, panicErr interface{}, stackTrace string) {
	logger.FromContext(ctx).Error().
		Interface("panic_error", panicErr).
		Str("panic_stack", stackTrace).
		Msg("Request panic error")

	response.InternalError(w)
}

// LogValidationError logs validation errors with details
func LogValidationError(ctx context.Context, fieldErrors map[string]string) {
	logger.FromContext(ctx).Warn().
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")
}
