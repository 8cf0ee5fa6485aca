package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/salonbook/salon-web/internal/pkg/logger"
)

// RequestID adds a unique request ID to each request. The ID travels in the
// context so backend calls forward it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
