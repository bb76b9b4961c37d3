package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/config"
	"sevasetu/internal/core/domain"
	"sevasetu/internal/pkg/password"
)

func newAuthFixture(t *testing.T, users ...*models.User) (*AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:        "access-test-secret",
			RefreshSecret:       "refresh-test-secret",
			AccessExpiryMinutes: 15,
			RefreshExpiryDays:   7,
		},
	}
	userRepo := newFakeUserRepo(users...)
	tokenRepo := newFakeRefreshTokenRepo()
	return NewAuthService(userRepo, tokenRepo, cfg), userRepo, tokenRepo
}

func seededUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := password.Hash("S3cret!pass")
	require.NoError(t, err)
	return &models.User{
		ID:                "u1",
		Username:          "asha",
		Email:             "asha@example.com",
		Password:          hash,
		PreferredLanguage: "hi",
	}
}

func TestRegister(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username:          "ravi",
		Email:             "ravi@example.com",
		Phone:             "9876543210",
		Password:          "S3cret!pass",
		PreferredLanguage: "ta",
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi", user.Username)
	assert.Equal(t, "ta", user.PreferredLanguage)
	assert.NotEqual(t, "S3cret!pass", user.Password, "password must be stored hashed")
	assert.True(t, password.Verify("S3cret!pass", user.Password))

	stored, err := userRepo.GetByUsername(context.Background(), "ravi")
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

func TestRegisterDefaultsUnsupportedLanguage(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username:          "ravi",
		Email:             "ravi@example.com",
		Password:          "S3cret!pass",
		PreferredLanguage: "xx",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", user.PreferredLanguage)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture(t, seededUser(t))

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "asha",
		Email:    "other@example.com",
		Password: "S3cret!pass",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	_, err = svc.Register(context.Background(), RegisterInput{
		Username: "other",
		Email:    "asha@example.com",
		Password: "S3cret!pass",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _, tokenRepo := newAuthFixture(t, seededUser(t))

	user, tokens, err := svc.Login(context.Background(), "asha", "S3cret!pass")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The refresh token is persisted hashed, never in the clear.
	stored, err := tokenRepo.GetByTokenHash(context.Background(), password.HashToken(tokens.RefreshToken))
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.UserID)
	assert.False(t, stored.IsRevoked())

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "asha", claims.Username)
	assert.Equal(t, "hi", claims.Language)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t, seededUser(t))

	_, _, err := svc.Login(context.Background(), "asha", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "S3cret!pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshTokensRotates(t *testing.T) {
	svc, _, tokenRepo := newAuthFixture(t, seededUser(t))

	_, tokens, err := svc.Login(context.Background(), "asha", "S3cret!pass")
	require.NoError(t, err)

	user, rotated, err := svc.RefreshTokens(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	old, err := tokenRepo.GetByTokenHash(context.Background(), password.HashToken(tokens.RefreshToken))
	require.NoError(t, err)
	assert.True(t, old.IsRevoked())

	// Replaying the rotated-out token must be rejected.
	_, _, err = svc.RefreshTokens(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	// The fresh token still works.
	_, _, err = svc.RefreshTokens(context.Background(), rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokensRejectsUnknownToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t, seededUser(t))

	_, _, err := svc.RefreshTokens(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestLogout(t *testing.T) {
	svc, _, tokenRepo := newAuthFixture(t, seededUser(t))

	_, tokens, err := svc.Login(context.Background(), "asha", "S3cret!pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	stored, err := tokenRepo.GetByTokenHash(context.Background(), password.HashToken(tokens.RefreshToken))
	require.NoError(t, err)
	assert.True(t, stored.IsRevoked())

	_, _, err = svc.RefreshTokens(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestLogoutAll(t *testing.T) {
	svc, _, tokenRepo := newAuthFixture(t, seededUser(t))

	_, first, err := svc.Login(context.Background(), "asha", "S3cret!pass")
	require.NoError(t, err)
	_, second, err := svc.Login(context.Background(), "asha", "S3cret!pass")
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(context.Background(), "u1"))

	for _, token := range []string{first.RefreshToken, second.RefreshToken} {
		stored, err := tokenRepo.GetByTokenHash(context.Background(), password.HashToken(token))
		require.NoError(t, err)
		assert.True(t, stored.IsRevoked())
	}
}
