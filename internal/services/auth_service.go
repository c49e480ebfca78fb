package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/config"
	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/models"
	"github.com/cliptube/cliptube-backend/internal/storage"
	"github.com/cliptube/cliptube-backend/internal/token"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type AuthService struct {
	db        *gorm.DB
	cfg       *config.Config
	tokens    *token.Manager
	presigner *storage.Presigner
}

func NewAuthService(db *gorm.DB, cfg *config.Config, tokens *token.Manager, presigner *storage.Presigner) *AuthService {
	return &AuthService{db: db, cfg: cfg, tokens: tokens, presigner: presigner}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username, err := validate.Username(req.Username)
	if err != nil {
		return nil, err
	}
	email, err := validate.Email(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: username or email already registered", apperr.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarKey, avatarURL, err := s.presigner.UploadURL(ctx, "avatars")
	if err != nil {
		return nil, err
	}
	coverKey, coverURL, err := s.presigner.UploadURL(ctx, "covers")
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:            uuid.New(),
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(req.FullName),
		Password:      string(hash),
		AvatarKey:     avatarKey,
		CoverImageKey: coverKey,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique indexes backstop the pre-check under concurrent
		// registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already registered", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &dto.RegisterResponse{
		User:         publicUser(&user),
		AvatarUpload: dto.UploadTarget{Key: avatarKey, URL: avatarURL},
		CoverUpload:  dto.UploadTarget{Key: coverKey, URL: coverURL},
	}, nil
}

// Login verifies credentials and starts a session: a fresh pair is issued
// and the refresh token hash is persisted on the user row, replacing any
// previous session.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))
	if identifier == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", apperr.ErrInvalid)
	}

	var user models.User
	if err := s.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}

	// bcrypt's compare is constant-time on the digest.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}

	pair, err := s.tokens.Issue(identityOf(&user))
	if err != nil {
		return nil, err
	}

	hash := token.Hash(pair.Refresh)
	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("refresh_token_hash", hash).Error; err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		User:         publicUser(&user),
	}, nil
}

// Refresh rotates a session. The presented refresh token must carry a
// valid signature and expiry AND its hash must still equal the stored
// value. The overwrite is a single conditional UPDATE, so of two
// concurrent calls presenting the same token exactly one wins; the loser
// observes zero rows affected and is rejected. A replayed (already
// rotated) token takes the same path, indistinguishable from expiry.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*dto.AuthResponse, error) {
	if presented == "" {
		return nil, fmt.Errorf("%w: no session", apperr.ErrUnauthenticated)
	}

	userID, err := s.tokens.VerifyRefresh(presented)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired session", apperr.ErrUnauthenticated)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("%w: invalid or expired session", apperr.ErrUnauthenticated)
	}

	pair, err := s.tokens.Issue(identityOf(&user))
	if err != nil {
		return nil, err
	}

	// Consume-then-replace: minted tokens are only handed out if this CAS
	// wins.
	res := s.db.Model(&models.User{}).
		Where("id = ? AND refresh_token_hash = ?", user.ID, token.Hash(presented)).
		Update("refresh_token_hash", token.Hash(pair.Refresh))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: invalid or expired session", apperr.ErrUnauthenticated)
	}

	return &dto.AuthResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		User:         publicUser(&user),
	}, nil
}

// Logout invalidates the stored session. The access token keeps working
// until it expires; the refresh token is dead immediately.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("refresh_token_hash", nil).Error
}

// ChangePassword re-verifies the current password, swaps the hash and
// revokes the outstanding session in one write, forcing re-login.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	if err := validate.Password(req.NewPassword); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return fmt.Errorf("%w: user", apperr.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", apperr.ErrUnauthenticated)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password":           string(hash),
			"refresh_token_hash": nil,
		}).Error
}

func identityOf(user *models.User) token.Identity {
	return token.Identity{UserID: user.ID, Username: user.Username, Email: user.Email}
}

func publicUser(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
