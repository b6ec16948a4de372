package service

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/config"
	"moviehub/internal/middleware/auth"
	"moviehub/internal/models"
	"moviehub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.Register("alice", "alice@example.com", "s3cret-pass", "s3cret-pass")

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		// stored as a bcrypt hash, never the raw password
		assert.NotEqual(t, "s3cret-pass", user.Password)
		assert.NoError(t, auth.VerifyPassword(user.Password, "s3cret-pass"))
	})

	t.Run("CollectsEveryFailure", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByUsername", "alice").Return(&models.User{Username: "alice"}, nil)
		userRepo.On("FindByEmail", "alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)

		_, err := svc.Register("alice", "alice@example.com", "one", "two")

		var verr shared.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr, "password")
		assert.Contains(t, verr, "username")
		assert.Contains(t, verr, "email")
		userRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	knownUser := &models.User{
		ID:       "user-1",
		Username: "alice",
		Password: hashed,
		Role:     "user",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByUsername", "alice").Return(knownUser, nil)
		userRepo.On("TouchLastLogin", "user-1").Return(nil)
		tokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

		accessToken, refreshToken, user, err := svc.Login("alice", "correct-password")

		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, "user-1", user.ID)

		// the issued token round-trips through validation
		claims, err := svc.ValidateToken(context.Background(), accessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "user", claims.Role)
		assert.NotEmpty(t, claims.TokenID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByUsername", "alice").Return(knownUser, nil)

		_, _, _, err := svc.Login("alice", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		userRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := svc.Login("ghost", "whatever")

		// same error as a wrong password, no account probing
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthServiceRefreshAccessToken(t *testing.T) {
	t.Run("ValidToken", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "refresh-1").Return(&models.RefreshToken{
			ID:        "rt-1",
			UserID:    "user-1",
			Token:     "refresh-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		userRepo.On("FindByID", "user-1").Return(&models.User{ID: "user-1", Username: "alice"}, nil)

		accessToken, err := svc.RefreshAccessToken("refresh-1")

		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("RevokedToken", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "refresh-1").Return(&models.RefreshToken{
			ID:        "rt-1",
			UserID:    "user-1",
			Token:     "refresh-1",
			ExpiresAt: time.Now().Add(time.Hour),
			Revoked:   true,
		}, nil)

		_, err := svc.RefreshAccessToken("refresh-1")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ExpiredTokenIsDeleted", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "refresh-1").Return(&models.RefreshToken{
			ID:        "rt-1",
			UserID:    "user-1",
			Token:     "refresh-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		tokenRepo.On("Delete", "rt-1").Return(nil)

		_, err := svc.RefreshAccessToken("refresh-1")

		assert.ErrorIs(t, err, ErrInvalidToken)
		tokenRepo.AssertCalled(t, "Delete", "rt-1")
	})

	t.Run("UnknownToken", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockRefreshTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

		tokenRepo.On("FindByToken", "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.RefreshAccessToken("missing")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokenRepo := new(mockRefreshTokenRepo)
	svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

	tokenRepo.On("RevokeAllForUser", "user-1").Return(nil)

	err := svc.Logout(context.Background(), &shared.AuthClaims{
		UserID:    "user-1",
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})

	require.NoError(t, err)
	tokenRepo.AssertExpectations(t)
}

func TestAuthServiceValidateToken(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokenRepo := new(mockRefreshTokenRepo)
	svc := NewAuthService(userRepo, tokenRepo, nil, testAuthConfig())

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "another-secret-another-secret!!!"

		// sign a token with a different secret and validate with ours
		hashed, err := auth.HashPassword("pw")
		require.NoError(t, err)
		repo := new(mockUserRepo)
		repo.On("FindByUsername", "alice").Return(&models.User{ID: "user-1", Username: "alice", Password: hashed}, nil)
		repo.On("TouchLastLogin", "user-1").Return(nil)
		rtRepo := new(mockRefreshTokenRepo)
		rtRepo.On("Create", mock.Anything).Return(nil)
		foreign := NewAuthService(repo, rtRepo, nil, otherCfg)

		token, _, _, err := foreign.Login("alice", "pw")
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		shortCfg := testAuthConfig()
		shortCfg.AccessTokenTTL = -time.Minute

		hashed, err := auth.HashPassword("pw")
		require.NoError(t, err)
		repo := new(mockUserRepo)
		repo.On("FindByUsername", "alice").Return(&models.User{ID: "user-1", Username: "alice", Password: hashed}, nil)
		repo.On("TouchLastLogin", "user-1").Return(nil)
		rtRepo := new(mockRefreshTokenRepo)
		rtRepo.On("Create", mock.Anything).Return(nil)
		issuer := NewAuthService(repo, rtRepo, nil, shortCfg)

		token, _, _, err := issuer.Login("alice", "pw")
		require.NoError(t, err)

		_, err = issuer.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
