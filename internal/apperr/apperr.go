// Package apperr defines the error kinds shared by all services and the
// mapping from kind to HTTP status. Services wrap these sentinels with
// fmt.Errorf("%w: ..."); handlers classify with errors.Is.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrInvalid         = errors.New("invalid input")
)

// Status maps an error to an HTTP status code. Unknown errors are server
// errors; callers must not leak their detail to the response body.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// IsKind reports whether err wraps one of the five recoverable kinds.
func IsKind(err error) bool {
	return Status(err) != fiber.StatusInternalServerError
}
