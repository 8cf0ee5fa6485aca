package user

import (
	"strings"

	"github.com/salonbook/salon-web/internal/pkg/datetime"
	"github.com/salonbook/salon-web/internal/pkg/validator"
)

func init() {
	names := make([]string, 0, len(SignupRoles()))
	for _, r := range SignupRoles() {
		names = append(names, string(r))
	}
	validator.RegisterValues("signup_role", IsSignupRole, "Invalid role. Must be: "+strings.Join(names, " or "))
}

// Role represents user role (matches the backend's User.Role enum)
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStylist  Role = "STYLIST"
	RoleAdmin    Role = "ADMIN"
)

// User represents an account as returned by the salon backend
type User struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Role           Role           `json:"role,omitempty"`
	Specialization string         `json:"specialization,omitempty"`
	CreatedAt      datetime.Local `json:"createdAt"`
}

// ValidRoles returns every role the backend knows about
func ValidRoles() []Role {
	return []Role{RoleCustomer, RoleStylist, RoleAdmin}
}

// SignupRoles returns roles a user may pick at signup
func SignupRoles() []Role {
	return []Role{RoleCustomer, RoleStylist}
}

// IsSignupRole checks if role may be picked at signup
func IsSignupRole(role string) bool {
	for _, r := range SignupRoles() {
		if string(r) == role {
			return true
		}
	}
	return false
}

// IsValidRole checks if role is a known role
func IsValidRole(role string) bool {
	for _, r := range ValidRoles() {
		if string(r) == role {
			return true
		}
	}
	return false
}

// ParseRole parses a role string, accepting any letter case
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !IsValidRole(string(r)) {
		return "", ErrUnknownRole
	}
	return r, nil
}
