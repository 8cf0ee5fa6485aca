package salonapi

import (
	"context"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/user"
)

// AuthResponse is what the backend returns for signup and login.
// The backend issues no token; the caller keeps the identity.
type AuthResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           user.Role `json:"role"`
	Specialization string    `json:"specialization,omitempty"`
	Message        string    `json:"message"`
	Success        bool      `json:"success"`
}

// User converts the response into the account it describes.
func (r *AuthResponse) User() user.User {
	return user.User{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Role:           r.Role,
		Specialization: r.Specialization,
	}
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req user.SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.write(ctx, "auth.signup", http.MethodPost, req, &resp, "/auth/signup"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login checks credentials.
func (c *Client) Login(ctx context.Context, req user.LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.write(ctx, "auth.login", http.MethodPost, req, &resp, "/auth/login"); err != nil {
		return nil, err
	}
	return &resp, nil
}
