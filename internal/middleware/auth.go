package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/config"
	"github.com/cliptube/cliptube-backend/internal/dto"
)

// JWTProtected guards a route with the access token. The token is taken
// from the Authorization header or the access_token cookie; validation is
// signature+expiry only, no store round-trip. Rejections short-circuit
// before the handler runs.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTAccessSecret)},
		TokenLookup: "header:Authorization,cookie:access_token",
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// OptionalAuth resolves the identity when a valid access token is present
// but lets the request through either way. Public reads use it so owners
// can see their own unpublished resources; a missing or bad token just
// means an anonymous viewer.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTAccessSecret)},
		TokenLookup: "header:Authorization,cookie:access_token",
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}
