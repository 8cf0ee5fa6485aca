package booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/salonbook/salon-web/internal/pkg/gateway"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("not allowed to perform this action")
	ErrNotEligible       = errors.New("booking is not eligible for feedback")
	ErrUnknownStatus     = errors.New("unknown booking status")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrMalformedBooking  = errors.New("malformed booking")
)

// RejectedError is a backend refusal of a write the local gate allowed.
// It matches both the domain sentinel and the *gateway.Error via errors.Is/As.
type RejectedError struct {
	Reason error
	Cause  *gateway.Error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v: %s", e.Reason, e.Cause.Message)
}

func (e *RejectedError) Unwrap() []error {
	return []error{e.Reason, e.Cause}
}

// mapRejection turns a backend 4xx into a domain error; transport errors pass through.
func mapRejection(err error, fallback error) error {
	gwErr, ok := gateway.AsError(err)
	if !ok || gwErr.Kind != gateway.KindClient {
		return err
	}
	reason := fallback
	switch gwErr.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		reason = ErrUnauthorized
	case http.StatusNotFound:
		reason = ErrBookingNotFound
	}
	return &RejectedError{Reason: reason, Cause: gwErr}
}
