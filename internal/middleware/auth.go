package middleware

import (
	"context"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/errorhandler"
	"github.com/salonbook/salon-web/internal/pkg/logger"
)

type contextKey string

const SessionKey contextKey = "session"

// Session resolves the browser's session from its cookie and puts it in the
// request context. Requests without a valid cookie get a fresh anonymous one.
func Session(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.FromRequest(r)

			ctx := WithSession(r.Context(), sess)
			if identity, ok := sess.Identity(); ok {
				l := logger.FromContext(ctx).With().
					Int64("user_id", identity.ID).
					Str("role", string(identity.Role)).
					Logger()
				ctx = logger.WithContext(ctx, &l)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSession returns a context carrying sess
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSession extracts the session from context. Outside the Session
// middleware it returns an anonymous session.
func GetSession(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(SessionKey).(*session.Session); ok {
		return sess
	}
	return session.New("")
}

// RequireRole returns middleware that checks the session role
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := GetSession(r.Context()).Require(roles...); err != nil {
				errorhandler.Respond(r.Context(), w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCustomer returns middleware that requires customer role
func RequireCustomer() func(http.Handler) http.Handler {
	return RequireRole(user.RoleCustomer)
}

// RequireStylist returns middleware that requires stylist role
func RequireStylist() func(http.Handler) http.Handler {
	return RequireRole(user.RoleStylist)
}

// RequireAdmin returns middleware that requires admin role
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)
}
