package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/config"
	"sevasetu/internal/core/domain"
	"sevasetu/internal/pkg/jwt"
	"sevasetu/internal/pkg/password"
)

// TokenPair bundles a freshly issued access and refresh token
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// RegisterInput carries the fields needed to create an account
type RegisterInput struct {
	Username          string
	Email             string
	Phone             string
	Password          string
	PreferredLanguage string
}

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	cfg       *config.Config
}

// NewAuthService creates an auth service
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !password.Validate(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	language := input.PreferredLanguage
	if language == "" || !domain.IsSupportedLanguage(language) {
		language = "en"
	}

	user := &models.User{
		Username:          input.Username,
		Email:             input.Email,
		Phone:             input.Phone,
		Password:          hashedPassword,
		PreferredLanguage: language,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Username)
	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked and a
// new pair is issued. Revoked or expired tokens are rejected.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, nil, domain.ErrTokenInvalid
	}

	stored, err := s.tokenRepo.GetByTokenHash(ctx, password.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrTokenInvalid
		}
		return nil, nil, err
	}
	if stored.IsRevoked() || stored.IsExpired() {
		return nil, nil, domain.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenRepo.RevokeByTokenHash(ctx, password.HashToken(refreshToken))
}

// LogoutAll revokes every active refresh token for the user
func (s *AuthService) LogoutAll(ctx context.Context, userID string) error {
	return s.tokenRepo.RevokeAllByUserID(ctx, userID)
}

// ValidateAccessToken parses and verifies an access token
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	claims, err := jwt.ValidateAccessToken(token, s.cfg.JWT.AccessSecret)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// GetUserByID loads a user by primary key
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CleanupExpiredTokens purges refresh tokens past their expiry
func (s *AuthService) CleanupExpiredTokens(ctx context.Context) error {
	return s.tokenRepo.DeleteExpired(ctx)
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Username, user.PreferredLanguage, s.cfg.JWT.AccessSecret, s.cfg.JWT.AccessExpiryMinutes)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	refreshToken, err := jwt.GenerateRefreshToken(user.ID, tokenID, s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshExpiryDays)
	if err != nil {
		return nil, err
	}

	expiresAt := jwt.GetExpiryTime(s.cfg.JWT.RefreshExpiryDays)
	if err := s.tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  time.Now().Add(time.Duration(s.cfg.JWT.AccessExpiryMinutes) * time.Minute),
		RefreshExpiresAt: expiresAt,
	}, nil
}
