// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/wardrobe/pkg/httpx"
	accountdomain "github.com/ghuser/wardrobe/services/account/domain"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, which covers
// persistent-store failures without assuming partial state.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, wardrobedomain.ErrGarmentNotFound),
		errors.Is(err, wardrobedomain.ErrOutfitNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, wardrobedomain.ErrInvalidGarment),
		errors.Is(err, wardrobedomain.ErrInvalidOutfit):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, wardrobedomain.ErrImageStore):
		return http.StatusBadGateway // 502
	case errors.Is(err, accountdomain.ErrEmailTaken):
		return http.StatusConflict // 409
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
