package catalog

import (
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/datetime"
)

// Service is a treatment offered by exactly one stylist.
type Service struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           float64        `json:"price"`
	DurationMinutes int            `json:"durationMinutes"`
	Stylist         *user.User     `json:"stylist,omitempty"`
	CreatedAt       datetime.Local `json:"createdAt"`
}

// StylistID returns the owning stylist's ID, or 0 when the backend omitted it
func (s *Service) StylistID() int64 {
	if s.Stylist == nil {
		return 0
	}
	return s.Stylist.ID
}

// ServiceRequest is the body for creating or updating a service.
// It carries no stylist field: a service never changes owner.
type ServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Description     string  `json:"description" validate:"max=1000"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,gt=0"`
}
