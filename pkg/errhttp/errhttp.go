// Package errhttp maps domain sentinel errors to HTTP status codes and the
// machine-readable codes of the response envelope. Add a case to classify
// for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/cartloom/pkg/auth"
	"github.com/ghuser/cartloom/pkg/httpx"
	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
)

// WriteError classifies err and writes a failure envelope. Uses errors.Is()
// so wrapped sentinel errors are matched correctly. Unrecognized errors
// (storage failures included) collapse to 500 INTERNAL_ERROR with a generic
// message so no internal detail leaks to the caller.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "internal error"
	}
	httpx.JSONError(w, status, code, msg)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrUserIDNotFound):
		return http.StatusUnauthorized, httpx.CodeUnauthorized // 401
	case errors.Is(err, listdomain.ErrListNotFound),
		errors.Is(err, listdomain.ErrItemNotFound):
		return http.StatusNotFound, httpx.CodeNotFound // 404
	case errors.Is(err, listdomain.ErrInvalidName),
		errors.Is(err, listdomain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity, httpx.CodeValidationError // 422
	default:
		return http.StatusInternalServerError, httpx.CodeInternalError // 500
	}
}
