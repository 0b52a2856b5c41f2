package service

import (
	"context"
	"testing"
	"time"

	"studytrack/internal/config"
	"studytrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "test-secret-key-for-signing-tokens",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(new(MockUserRepository), config.AuthConfig{})
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, err := NewAuthService(userRepo, testAuthConfig())
	require.NoError(t, err)

	t.Run("creates user with salted digest", func(t *testing.T) {
		userRepo.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()

		var created *domain.User
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.User)
			}).Return(nil).Once()

		user, err := svc.Register(context.Background(), "new@example.com", "New User", "hunter22pass")
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, created.PasswordSalt)
		assert.NotEqual(t, "hunter22pass", created.PasswordHash)
		assert.Equal(t, hashPassword("hunter22pass", created.PasswordSalt), created.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		existing := &domain.User{ID: "user1", Email: "taken@example.com", PasswordHash: "x"}
		userRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").Return(existing, nil).Once()

		_, err := svc.Register(context.Background(), "taken@example.com", "Someone", "hunter22pass")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, err := NewAuthService(userRepo, testAuthConfig())
	require.NoError(t, err)

	salt := "abcd1234"
	user := &domain.User{
		ID:           "user1",
		Email:        "test@example.com",
		PasswordHash: hashPassword("correct-password", salt),
		PasswordSalt: salt,
	}

	t.Run("valid credentials return token pair", func(t *testing.T) {
		userRepo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()

		accessToken, refreshToken, loggedIn, err := svc.Login(context.Background(), "test@example.com", "correct-password")
		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, "user1", loggedIn.ID)

		claims, err := svc.ValidateJWT(context.Background(), accessToken)
		require.NoError(t, err)
		assert.Equal(t, "user1", claims.UserID)
		assert.Equal(t, tokenTypeAccess, claims.TokenType)

		claims, err = svc.ValidateJWT(context.Background(), refreshToken)
		require.NoError(t, err)
		assert.Equal(t, tokenTypeRefresh, claims.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()

		_, _, _, err := svc.Login(context.Background(), "test@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, nil).Once()

		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateJWT_RejectsGarbage(t *testing.T) {
	svc, err := NewAuthService(new(MockUserRepository), testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateJWT(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestValidateJWT_RejectsWrongSecret(t *testing.T) {
	svcA, err := NewAuthService(new(MockUserRepository), testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-completely-different-secret"
	svcB, err := NewAuthService(new(MockUserRepository), otherCfg)
	require.NoError(t, err)

	token, err := svcA.CreateJWT(context.Background(), &domain.User{ID: "user1"}, time.Minute, tokenTypeAccess)
	require.NoError(t, err)

	_, err = svcB.ValidateJWT(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestRefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, err := NewAuthService(userRepo, testAuthConfig())
	require.NoError(t, err)

	user := &domain.User{ID: "user1", Email: "test@example.com"}

	t.Run("valid refresh token issues new pair", func(t *testing.T) {
		refreshToken, err := svc.CreateJWT(context.Background(), user, time.Hour, tokenTypeRefresh)
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, "user1").Return(user, nil).Once()

		newAccess, newRefresh, err := svc.RefreshToken(context.Background(), refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)

		claims, err := svc.ValidateJWT(context.Background(), newAccess)
		require.NoError(t, err)
		assert.Equal(t, tokenTypeAccess, claims.TokenType)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		accessToken, err := svc.CreateJWT(context.Background(), user, time.Hour, tokenTypeAccess)
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(context.Background(), accessToken)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		refreshToken, err := svc.CreateJWT(context.Background(), user, time.Hour, tokenTypeRefresh)
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, "user1").Return(nil, nil).Once()

		_, _, err = svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
}
