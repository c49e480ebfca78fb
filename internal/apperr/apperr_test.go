package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", ErrInvalid, fiber.StatusBadRequest},
		{"unauthenticated", ErrUnauthenticated, fiber.StatusUnauthorized},
		{"forbidden", ErrForbidden, fiber.StatusForbidden},
		{"not found", ErrNotFound, fiber.StatusNotFound},
		{"conflict", ErrConflict, fiber.StatusConflict},
		{"unknown", errors.New("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestStatusWrapped(t *testing.T) {
	err := fmt.Errorf("%w: video not found", ErrNotFound)
	assert.Equal(t, fiber.StatusNotFound, Status(err))
	assert.True(t, IsKind(err))
	assert.False(t, IsKind(errors.New("boom")))
}
