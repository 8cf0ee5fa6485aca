package errorhandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/gateway"
	"github.com/salonbook/salon-web/internal/pkg/response"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

func TestRespondStatusMapping(t *testing.T) {
	rejected := &booking.RejectedError{
		Reason: booking.ErrInvalidTransition,
		Cause:  &gateway.Error{Kind: gateway.KindClient, Status: http.StatusBadRequest, Message: "Booking already confirmed"},
	}

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		kind   string
	}{
		{"validation", validator.Errors{"rating": "Invalid value"}, http.StatusUnprocessableEntity, "VALIDATION_ERROR", ""},
		{"not authenticated", session.ErrNotAuthenticated, http.StatusUnauthorized, "UNAUTHORIZED", ""},
		{"bad credentials", fmt.Errorf("%w: Invalid password", user.ErrInvalidCredentials), http.StatusUnauthorized, "INVALID_CREDENTIALS", ""},
		{"signup rejected", user.ErrSignupRejected, http.StatusBadRequest, "SIGNUP_REJECTED", ""},
		{"forbidden", fmt.Errorf("wrap: %w", session.ErrForbidden), http.StatusForbidden, "FORBIDDEN", ""},
		{"lifecycle unauthorized", booking.ErrUnauthorized, http.StatusForbidden, "FORBIDDEN", ""},
		{"invalid transition", booking.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION", ""},
		{"rejected write", rejected, http.StatusConflict, "INVALID_TRANSITION", ""},
		{"not eligible", booking.ErrNotEligible, http.StatusConflict, "NOT_ELIGIBLE", ""},
		{"backend 404", &gateway.Error{Kind: gateway.KindClient, Status: 404}, http.StatusNotFound, "BACKEND_REJECTED", "CLIENT_ERROR"},
		{"timeout", &gateway.Error{Kind: gateway.KindTimeout}, http.StatusGatewayTimeout, "BACKEND_TIMEOUT", "TIMEOUT"},
		{"network", &gateway.Error{Kind: gateway.KindNetwork}, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "NETWORK_ERROR"},
		{"server", &gateway.Error{Kind: gateway.KindServer, Status: 500}, http.StatusBadGateway, "BACKEND_ERROR", "SERVER_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Respond(context.Background(), rec, tt.err)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			var resp response.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Success || resp.Error == nil {
				t.Fatalf("expected error envelope, got %+v", resp)
			}
			if resp.Error.Code != tt.code || resp.Error.Kind != tt.kind {
				t.Fatalf("expected %s/%s, got %s/%s", tt.code, tt.kind, resp.Error.Code, resp.Error.Kind)
			}
		})
	}
}

func TestRespondUsesBackendMessageForRejection(t *testing.T) {
	err := &booking.RejectedError{
		Reason: booking.ErrNotEligible,
		Cause:  &gateway.Error{Kind: gateway.KindClient, Status: http.StatusBadRequest, Message: "Feedback already exists for this booking"},
	}
	rec := httptest.NewRecorder()
	Respond(context.Background(), rec, err)

	var resp response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error.Message != "Feedback already exists for this booking" {
		t.Fatalf("unexpected message: %q", resp.Error.Message)
	}
}
