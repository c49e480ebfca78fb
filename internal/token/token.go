// Package token mints and verifies the access/refresh JWT pair. Access
// tokens are stateless; refresh tokens are additionally mirrored (hashed)
// in the user row, which is what makes rotation single-use.
package token

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/config"
)

// Identity is the projection carried inside an access token. It never
// includes credential material.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

type Pair struct {
	Access  string
	Refresh string
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		accessSecret:  []byte(cfg.JWTAccessSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessExpiry:  cfg.JWTAccessExpiry,
		refreshExpiry: cfg.JWTRefreshExpiry,
	}
}

// Issue mints a new access/refresh pair for id. It has no side effects;
// the caller persists the refresh token hash.
func (m *Manager) Issue(id Identity) (*Pair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      id.UserID.String(),
		"username": id.Username,
		"email":    id.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(m.accessExpiry).Unix(),
	})
	accessStr, err := access.SignedString(m.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(m.refreshExpiry).Unix(),
	})
	refreshStr, err := refresh.SignedString(m.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &Pair{Access: accessStr, Refresh: refreshStr}, nil
}

// VerifyAccess checks signature and expiry and returns the embedded
// identity. Any failure is ErrUnauthenticated.
func (m *Manager) VerifyAccess(raw string) (*Identity, error) {
	claims, err := m.parse(raw, m.accessSecret)
	if err != nil {
		return nil, err
	}

	userID, err := subject(claims)
	if err != nil {
		return nil, err
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Username: username, Email: email}, nil
}

// VerifyRefresh checks signature and expiry of a refresh token and returns
// the user it was issued to. It does not consult the store; the rotation
// step compares against the persisted value.
func (m *Manager) VerifyRefresh(raw string) (uuid.UUID, error) {
	claims, err := m.parse(raw, m.refreshSecret)
	if err != nil {
		return uuid.Nil, err
	}
	return subject(claims)
}

func (m *Manager) parse(raw string, secret []byte) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}
	return claims, nil
}

func subject(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, apperr.ErrUnauthenticated
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, apperr.ErrUnauthenticated
	}
	return userID, nil
}

// Hash returns the hex SHA-256 of a token. Only hashes are persisted, so a
// leaked user row never yields a usable refresh token.
func Hash(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h)
}
