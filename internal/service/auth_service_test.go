package service

import (
	"context"
	"testing"

	"github.com/237films-bot/subtrack/internal/config"
	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) IAuthService {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{
		Passphrase:    "correct horse battery staple",
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
		MaxAttempts:   5,
		BlockMinutes:  15,
	}, noopLogger{})
	require.NoError(t, err)
	return svc
}

func TestAuthLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "correct horse battery staple"}, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, 24*3600, res.ExpiresIn)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.NotEmpty(t, claims["sid"])
}

func TestAuthLoginWrongPassphrase(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Passphrase: "nope"}, "10.0.0.2")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthRateLimit(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	// Four failures stay unauthorized, the fifth flips the IP to blocked.
	for i := 0; i < 4; i++ {
		_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "nope"}, "10.0.0.3")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	}
	_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "nope"}, "10.0.0.3")
	assert.ErrorIs(t, err, apperror.ErrRateLimited)

	t.Run("blocked even with correct passphrase", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "correct horse battery staple"}, "10.0.0.3")
		assert.ErrorIs(t, err, apperror.ErrRateLimited)
	})

	t.Run("other clients unaffected", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "correct horse battery staple"}, "10.0.0.4")
		assert.NoError(t, err)
	})
}

func TestAuthSuccessResetsAttempts(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "nope"}, "10.0.0.5")
		assert.Error(t, err)
	}
	_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "correct horse battery staple"}, "10.0.0.5")
	require.NoError(t, err)

	// Counter is back to zero, so four more failures do not block.
	for i := 0; i < 4; i++ {
		_, err := svc.Login(ctx, &dto.LoginRequest{Passphrase: "nope"}, "10.0.0.5")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	}
}

func TestAuthRequiresPassphrase(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{JWTSecret: "s"}, noopLogger{})
	assert.Error(t, err)
}
