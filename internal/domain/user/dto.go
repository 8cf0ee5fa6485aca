package user

// SignupRequest is the registration form. Only customers and stylists can sign up.
type SignupRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6,max=100"`
	Role           Role   `json:"role" validate:"required,signup_role"`
	Specialization string `json:"specialization,omitempty" validate:"max=100"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate changes a stylist's own profile. Empty fields are left as they are.
type ProfileUpdate struct {
	Name           string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Email          string  `json:"email,omitempty" validate:"omitempty,email"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=100"`
	Password       string  `json:"password,omitempty" validate:"omitempty,min=6,max=100"`
}

// StylistUpdate is an admin edit of a stylist account.
type StylistUpdate struct {
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization" validate:"max=100"`
}
