package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/gateway"
	"github.com/salonbook/salon-web/internal/pkg/jwt"
	"github.com/salonbook/salon-web/internal/pkg/salonapi"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

type fakeBackend struct {
	accounts map[string]salonapi.AuthResponse
	password map[string]string
	nextID   int64
	calls    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		accounts: map[string]salonapi.AuthResponse{},
		password: map[string]string{},
		nextID:   1,
	}
}

func (f *fakeBackend) Signup(ctx context.Context, req user.SignupRequest) (*salonapi.AuthResponse, error) {
	f.calls++
	if _, ok := f.accounts[req.Email]; ok {
		return nil, &gateway.Error{Kind: gateway.KindClient, Op: "auth.signup", Status: http.StatusBadRequest, Message: "Email already exists"}
	}
	resp := salonapi.AuthResponse{
		ID:             f.nextID,
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		Specialization: req.Specialization,
		Success:        true,
	}
	f.nextID++
	f.accounts[req.Email] = resp
	f.password[req.Email] = req.Password
	return &resp, nil
}

func (f *fakeBackend) Login(ctx context.Context, req user.LoginRequest) (*salonapi.AuthResponse, error) {
	f.calls++
	resp, ok := f.accounts[req.Email]
	if !ok {
		return nil, &gateway.Error{Kind: gateway.KindClient, Op: "auth.login", Status: http.StatusNotFound, Message: "User not found"}
	}
	if f.password[req.Email] != req.Password {
		return nil, &gateway.Error{Kind: gateway.KindClient, Op: "auth.login", Status: http.StatusUnauthorized, Message: "Invalid password"}
	}
	return &resp, nil
}

func newTestService(backend Backend) (*Service, *session.Service) {
	sessions := session.NewService(session.NewMemoryStore(time.Hour), jwt.NewService("secret", time.Hour), session.Config{})
	return NewService(backend, sessions), sessions
}

func TestSignupLogsIn(t *testing.T) {
	svc, sessions := newTestService(newFakeBackend())
	anon := sessions.Start()

	sess, err := svc.Signup(context.Background(), anon, user.SignupRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret1",
		Role:     user.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sess.ID() == anon.ID() {
		t.Fatalf("expected a new session id")
	}
	identity, err := sess.Require(user.RoleCustomer)
	if err != nil {
		t.Fatalf("expected customer identity, got %v", err)
	}
	if identity.Email != "ana@example.com" || identity.ID != 1 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestSignupDropsSpecializationForCustomer(t *testing.T) {
	backend := newFakeBackend()
	svc, sessions := newTestService(backend)

	_, err := svc.Signup(context.Background(), sessions.Start(), user.SignupRequest{
		Name:           "Ana",
		Email:          "ana@example.com",
		Password:       "secret1",
		Role:           user.RoleCustomer,
		Specialization: "Color",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := backend.accounts["ana@example.com"].Specialization; got != "" {
		t.Fatalf("expected empty specialization, got %q", got)
	}
}

func TestSignupRejectsAdminRole(t *testing.T) {
	backend := newFakeBackend()
	svc, sessions := newTestService(backend)

	_, err := svc.Signup(context.Background(), sessions.Start(), user.SignupRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret1",
		Role:     user.RoleAdmin,
	})
	var verrs validator.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["role"]; !ok {
		t.Fatalf("expected role error, got %v", verrs)
	}
	if backend.calls != 0 {
		t.Fatalf("expected no backend call, got %d", backend.calls)
	}
}

func TestSignupDuplicateEmailPassesBackendMessage(t *testing.T) {
	backend := newFakeBackend()
	svc, sessions := newTestService(backend)
	req := user.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: user.RoleCustomer}

	if _, err := svc.Signup(context.Background(), sessions.Start(), req); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	_, err := svc.Signup(context.Background(), sessions.Start(), req)
	gwErr, ok := gateway.AsError(err)
	if !ok || gwErr.Message != "Email already exists" {
		t.Fatalf("expected backend rejection, got %v", err)
	}
}

func TestLoginMapsBackendRefusals(t *testing.T) {
	backend := newFakeBackend()
	svc, sessions := newTestService(backend)
	req := user.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: user.RoleStylist, Specialization: "Color"}
	if _, err := svc.Signup(context.Background(), sessions.Start(), req); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "bob@example.com", "secret1"},
		{"wrong password", "ana@example.com", "nope123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), sessions.Start(), user.LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, user.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginRotatesSession(t *testing.T) {
	backend := newFakeBackend()
	svc, sessions := newTestService(backend)
	req := user.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: user.RoleStylist, Specialization: "Color"}
	if _, err := svc.Signup(context.Background(), sessions.Start(), req); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	anon := sessions.Start()
	sess, err := svc.Login(context.Background(), anon, user.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sess.ID() == anon.ID() {
		t.Fatalf("expected a new session id")
	}
	if anon.IsAuthenticated() {
		t.Fatalf("expected the old session to stay anonymous")
	}
	if !sess.HasRole(user.RoleStylist) {
		t.Fatalf("expected stylist session")
	}
}

func TestLoginTransportErrorPassesThrough(t *testing.T) {
	svc, sessions := newTestService(failingBackend{})

	_, err := svc.Login(context.Background(), sessions.Start(), user.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	if !gateway.IsKind(err, gateway.KindTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
}

type failingBackend struct{}

func (failingBackend) Signup(ctx context.Context, req user.SignupRequest) (*salonapi.AuthResponse, error) {
	return nil, &gateway.Error{Kind: gateway.KindTimeout, Op: "auth.signup", Message: "timed out"}
}

func (failingBackend) Login(ctx context.Context, req user.LoginRequest) (*salonapi.AuthResponse, error) {
	return nil, &gateway.Error{Kind: gateway.KindTimeout, Op: "auth.login", Message: "timed out"}
}
