package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/token"
)

// CurrentIdentity reads the authenticated identity projection out of the
// access token claims the guard stored in context. It never touches the
// store and never exposes credential material.
func CurrentIdentity(c *fiber.Ctx) (*token.Identity, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &token.Identity{UserID: userID, Username: username, Email: email}, nil
}

// CurrentUserID is the common case: just the actor's id.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := CurrentIdentity(c)
	if err != nil {
		return uuid.Nil, err
	}
	return id.UserID, nil
}
