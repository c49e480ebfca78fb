package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliptube/cliptube-backend/internal/config"
	"github.com/cliptube/cliptube-backend/internal/token"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:  "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

// guardedApp wires the guard in front of a route that echoes the identity
// the guard resolved from the token.
func guardedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTProtected(cfg), func(c *fiber.Ctx) error {
		id, err := CurrentIdentity(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(id)
	})
	return app
}

func TestGuardAcceptsBearerHeader(t *testing.T) {
	cfg := testConfig()
	app := guardedApp(cfg)
	userID := uuid.New()

	pair, err := token.NewManager(cfg).Issue(token.Identity{
		UserID: userID, Username: "alice", Email: "alice@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var id token.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&id))
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "alice", id.Username)
}

func TestGuardAcceptsCookie(t *testing.T) {
	cfg := testConfig()
	app := guardedApp(cfg)

	pair, err := token.NewManager(cfg).Issue(token.Identity{UserID: uuid.New(), Username: "bob"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: pair.Access})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardRejectsMissingToken(t *testing.T) {
	app := guardedApp(testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardRejectsTamperedToken(t *testing.T) {
	cfg := testConfig()
	app := guardedApp(cfg)

	pair, err := token.NewManager(cfg).Issue(token.Identity{UserID: uuid.New(), Username: "mallory"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access+"x")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWTAccessExpiry = -1 * time.Minute
	app := guardedApp(cfg)

	pair, err := token.NewManager(cfg).Issue(token.Identity{UserID: uuid.New(), Username: "carol"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthResolvesIdentity(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	app := fiber.New()
	app.Get("/feed", OptionalAuth(cfg), func(c *fiber.Ctx) error {
		id, err := CurrentIdentity(c)
		if err != nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"anonymous": false, "user_id": id.UserID})
	})

	pair, err := token.NewManager(cfg).Issue(token.Identity{UserID: userID, Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Anonymous bool      `json:"anonymous"`
		UserID    uuid.UUID `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Anonymous)
	assert.Equal(t, userID, body.UserID)
}

// Missing or invalid tokens fall through to the handler as anonymous
// instead of short-circuiting with 401.
func TestOptionalAuthPassesThroughAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/feed", OptionalAuth(testConfig()), func(c *fiber.Ctx) error {
		if _, err := CurrentIdentity(c); err == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/feed", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Refresh tokens are signed with a different secret; presenting one to the
// guard must fail even though it is a structurally valid JWT.
func TestGuardRejectsRefreshToken(t *testing.T) {
	cfg := testConfig()
	app := guardedApp(cfg)

	pair, err := token.NewManager(cfg).Issue(token.Identity{UserID: uuid.New(), Username: "dave"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Refresh)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
