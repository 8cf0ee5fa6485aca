package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/salonbook/salon-web/internal/pkg/jwt"
	"github.com/salonbook/salon-web/internal/pkg/logger"
)

const DefaultCookieName = "salon_session"

// Config configures session cookies.
type Config struct {
	CookieName string
	Secure     bool
}

// Service resolves, issues and ends browser sessions.
type Service struct {
	store  Store
	tokens *jwt.Service
	cfg    Config
}

// NewService creates session service
func NewService(store Store, tokens *jwt.Service, cfg Config) *Service {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return &Service{store: store, tokens: tokens, cfg: cfg}
}

// Start creates a new anonymous session. It is not stored until Issue.
func (s *Service) Start() *Session {
	return New(uuid.New().String())
}

// FromRequest returns the session named by the request cookie, or a new
// anonymous one when the cookie is missing, invalid or expired.
func (s *Service) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return s.Start()
	}

	claims, err := s.tokens.ValidateSessionToken(cookie.Value)
	if err != nil {
		return s.Start()
	}

	sess, err := s.store.Load(r.Context(), claims.SessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			logger.FromContext(r.Context()).Warn().Err(err).Msg("Failed to load session")
		}
		return s.Start()
	}
	return sess
}

// Issue stores sess and writes its cookie.
func (s *Service) Issue(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	identity, _ := sess.Identity()
	token, expiresAt, err := s.tokens.GenerateSessionToken(sess.ID(), string(identity.Role))
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Save stores sess after its identity changed mid-session.
func (s *Service) Save(ctx context.Context, sess *Session) error {
	return s.store.Save(ctx, sess)
}

// Rotate moves the identity of sess to a fresh session ID and drops the old one.
func (s *Service) Rotate(ctx context.Context, sess *Session) *Session {
	next := s.Start()
	if identity, ok := sess.Identity(); ok {
		next.Login(identity)
	}
	if err := s.store.Delete(ctx, sess.ID()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session_id", sess.ID()).Msg("Failed to drop old session")
	}
	return next
}

// End logs the session out, deletes it and expires the cookie.
func (s *Service) End(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	sess.Logout()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return s.store.Delete(ctx, sess.ID())
}
