package service

import (
	"context"
	"errors"
	"time"

	"moviehub/internal/config"
	"moviehub/internal/middleware/auth"
	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrNameInUse          = errors.New("username already exists")
	ErrEmailInUse         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type AuthService interface {
	Register(username, email, password, password2 string) (*models.User, error)
	Login(username, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, claims *shared.AuthClaims) error
	ValidateToken(ctx context.Context, tokenString string) (*shared.AuthClaims, error)
}

// tokenClaims is the JWT payload for access tokens.
type tokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	rdb              *redis.Client // revoked access token denylist; nil disables revocation checks
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	rdb *redis.Client,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		rdb:              rdb,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates a new account. Username and email must be unique and the
// two password fields must match; every failing rule is reported.
func (s *authService) Register(username, email, password, password2 string) (*models.User, error) {
	verr := shared.ValidationErrors{}

	if password != password2 {
		verr.Add("password", "Passwords do not match")
	}
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		verr.Add("username", ErrNameInUse.Error())
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		verr.Add("email", ErrEmailInUse.Error())
	}
	if len(verr) > 0 {
		return nil, verr
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(username, password string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		// dummy compare so unknown users take the same time as bad passwords
		auth.VerifyPassword(auth.DummyHash, password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", nil, err
	}

	// best effort, login still succeeds if the timestamp write fails
	_ = s.userRepo.TouchLastLogin(user.ID)

	return accessToken, refreshToken, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(user *models.User) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(), // opaque UUID as refresh token
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

func (s *authService) RefreshAccessToken(refreshTokenString string) (string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil || refreshToken.Revoked {
		return "", ErrInvalidToken
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(refreshToken.UserID)
	if err != nil {
		return "", err
	}

	return s.generateAccessToken(user)
}

// Logout revokes every refresh token the user holds and denylists the
// presented access token until its natural expiry.
func (s *authService) Logout(ctx context.Context, claims *shared.AuthClaims) error {
	if err := s.refreshTokenRepo.RevokeAllForUser(claims.UserID); err != nil {
		return err
	}

	if s.rdb != nil && claims.TokenID != "" {
		ttl := time.Until(claims.ExpiresAt)
		if ttl > 0 {
			return s.rdb.Set(ctx, revokedTokenKey(claims.TokenID), "1", ttl).Err()
		}
	}
	return nil
}

// ValidateToken parses and verifies an access token, returning the
// principal it carries. Revoked tokens fail even before their expiry.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*shared.AuthClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.rdb != nil && claims.ID != "" {
		revoked, err := s.rdb.Exists(ctx, revokedTokenKey(claims.ID)).Result()
		if err == nil && revoked > 0 {
			return nil, ErrInvalidToken
		}
		// on a Redis error the token is accepted on signature alone, auth
		// should not hard-depend on the cache being up
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &shared.AuthClaims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}

func revokedTokenKey(jti string) string {
	return "revoked_token:" + jti
}
