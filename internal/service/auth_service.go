package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"studytrack/internal/config"
	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/logger"
	"studytrack/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	saltBytes = 16
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
)

// AuthService defines the interface for the local credential store and JWT
// issuing. Passwords live only in this service; there is no external identity
// provider.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (accessToken string, refreshToken string, user *domain.User, err error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken string, newRefreshToken string, err error)
}

type authServiceImpl struct {
	userRepo domain.UserRepository
	authCfg  config.AuthConfig
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, authCfg config.AuthConfig) (AuthService, error) {
	if authCfg.JWTSecret == "" {
		return nil, errors.New("jwt secret for auth service is not configured")
	}
	return &authServiceImpl{
		userRepo: userRepo,
		authCfg:  authCfg,
	}, nil
}

// hashPassword returns the hex digest of sha256(salt || password). The store
// is a local mock credential store, not a hardened password vault; a salted
// digest keeps plaintext out of the database without pulling in a KDF.
func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

func newSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Register creates a new user with a salted password digest. Email uniqueness
// is checked first so duplicates surface as ErrEmailTaken rather than a
// driver-specific constraint error.
func (s *authServiceImpl) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	appLogger := logger.Get()

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password, salt),
		PasswordSalt: salt,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	appLogger.Info("New user registered", zap.String("userID", user.ID), zap.String("email", user.Email))
	return user, nil
}

// Login checks the credentials and issues an access/refresh token pair.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	appLogger := logger.Get()

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	if user == nil {
		return "", "", nil, ErrInvalidCredentials
	}

	digest := hashPassword(password, user.PasswordSalt)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) != 1 {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.CreateJWT(ctx, user, s.authCfg.AccessTokenTTL, tokenTypeAccess)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, err := s.CreateJWT(ctx, user, s.authCfg.RefreshTokenTTL, tokenTypeRefresh)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	appLogger.Info("User logged in", zap.String("userID", user.ID))
	return accessToken, refreshToken, user, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	claims := dto.AuthClaims{
		UserID:    user.ID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JWTSecret))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authCfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair. The
// user is re-fetched so a deleted account cannot keep refreshing.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	claims, err := s.ValidateJWT(ctx, refreshTokenString)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", "", fmt.Errorf("%w: expected refresh token, got %s", ErrInvalidJWTToken, claims.TokenType)
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", fmt.Errorf("error fetching user for token refresh: %w", err)
	}
	if user == nil {
		return "", "", ErrInvalidJWTToken
	}

	newAccessToken, err := s.CreateJWT(ctx, user, s.authCfg.AccessTokenTTL, tokenTypeAccess)
	if err != nil {
		return "", "", fmt.Errorf("failed to create access token: %w", err)
	}
	newRefreshToken, err := s.CreateJWT(ctx, user, s.authCfg.RefreshTokenTTL, tokenTypeRefresh)
	if err != nil {
		return "", "", fmt.Errorf("failed to create refresh token: %w", err)
	}
	return newAccessToken, newRefreshToken, nil
}
