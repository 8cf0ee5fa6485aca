package auth

import (
	"fmt"
	"net/http"

	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/pkg/gateway"
)

// mapLoginError turns the backend's login refusals into user errors.
// The backend answers 404 for an unknown email and 401 for a wrong password.
func mapLoginError(err error) error {
	gwErr, ok := gateway.AsError(err)
	if !ok || gwErr.Kind != gateway.KindClient {
		return err
	}
	switch gwErr.Status {
	case http.StatusNotFound, http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", user.ErrInvalidCredentials, gwErr.Message)
	default:
		return err
	}
}
