package auth

import (
	"context"
	"fmt"

	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/salonapi"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

// Backend checks credentials. Passwords never stay in this process.
type Backend interface {
	Signup(ctx context.Context, req user.SignupRequest) (*salonapi.AuthResponse, error)
	Login(ctx context.Context, req user.LoginRequest) (*salonapi.AuthResponse, error)
}

// Service handles auth business logic
type Service struct {
	backend  Backend
	sessions *session.Service
}

// NewService creates auth service
func NewService(backend Backend, sessions *session.Service) *Service {
	return &Service{backend: backend, sessions: sessions}
}

// Signup registers an account and logs it in. The returned session replaces sess.
func (s *Service) Signup(ctx context.Context, sess *session.Session, req user.SignupRequest) (*session.Session, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	if req.Role != user.RoleStylist {
		req.Specialization = ""
	}

	resp, err := s.backend.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", user.ErrSignupRejected, resp.Message)
	}

	logger.LogInfo(ctx, "User signed up", "user_id", resp.ID, "role", resp.Role)
	return s.start(ctx, sess, resp), nil
}

// Login checks credentials with the backend. The returned session replaces sess.
func (s *Service) Login(ctx context.Context, sess *session.Session, req user.LoginRequest) (*session.Session, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	resp, err := s.backend.Login(ctx, req)
	if err != nil {
		return nil, mapLoginError(err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", user.ErrInvalidCredentials, resp.Message)
	}
	if !user.IsValidRole(string(resp.Role)) {
		return nil, fmt.Errorf("%w: %q", user.ErrUnknownRole, resp.Role)
	}

	logger.LogInfo(ctx, "User logged in", "user_id", resp.ID, "role", resp.Role)
	return s.start(ctx, sess, resp), nil
}

// start moves the identity onto a fresh session ID.
func (s *Service) start(ctx context.Context, sess *session.Session, resp *salonapi.AuthResponse) *session.Session {
	next := s.sessions.Rotate(ctx, sess)
	next.Login(session.Identity{
		ID:             resp.ID,
		Name:           resp.Name,
		Email:          resp.Email,
		Role:           resp.Role,
		Specialization: resp.Specialization,
	})
	return next
}
