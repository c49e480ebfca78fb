// Package validate holds the small set of input validators shared by the
// handlers, instead of per-endpoint ad hoc checks.
package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/apperr"
)

// ID parses a path or body identifier.
func ID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", apperr.ErrInvalid, name)
	}
	return id, nil
}

// NonEmpty rejects missing or whitespace-only fields.
func NonEmpty(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", apperr.ErrInvalid, name)
	}
	return nil
}

// MaxLen bounds free-text fields.
func MaxLen(name, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s must be under %d characters", apperr.ErrInvalid, name, max)
	}
	return nil
}

// Username requires 3-50 lower-case alphanumeric characters, dots, dashes
// or underscores. The caller stores the normalized form.
func Username(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if len(normalized) < 3 || len(normalized) > 50 {
		return "", fmt.Errorf("%w: username must be 3-50 characters", apperr.ErrInvalid)
	}
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
		default:
			return "", fmt.Errorf("%w: username contains invalid characters", apperr.ErrInvalid)
		}
	}
	return normalized, nil
}

// Email does a structural check only; deliverability is not this layer's
// problem.
func Email(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	at := strings.Index(normalized, "@")
	if at < 1 || at == len(normalized)-1 || !strings.Contains(normalized[at:], ".") {
		return "", fmt.Errorf("%w: invalid email address", apperr.ErrInvalid)
	}
	return normalized, nil
}

// Password enforces the minimum length only; composition rules are not
// enforced server-side.
func Password(value string) error {
	if len(value) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperr.ErrInvalid)
	}
	return nil
}
