package service

import (
	"context"
	"fmt"
	"time"

	"github.com/237films-bot/subtrack/internal/config"
	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"
	"github.com/237films-bot/subtrack/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

// IAuthService gates the single-user API behind a passphrase. Failed
// attempts are counted per client IP; crossing the limit blocks that IP for
// the configured window.
type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.LoginResponse, error)
}

type authService struct {
	passphraseHash []byte
	jwtSecret      []byte
	tokenTTL       time.Duration
	maxAttempts    int
	blockWindow    time.Duration
	attempts       *cache.Cache
	logger         logger.ILogger
}

func NewAuthService(cfg config.AuthConfig, log logger.ILogger) (IAuthService, error) {
	hash := []byte(cfg.PassphraseHash)
	if len(hash) == 0 {
		if cfg.Passphrase == "" {
			return nil, fmt.Errorf("auth: neither AUTH_PASSPHRASE_HASH nor AUTH_PASSPHRASE is set")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Passphrase), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hashing passphrase: %w", err)
		}
		hash = generated
	}

	blockWindow := time.Duration(cfg.BlockMinutes) * time.Minute
	return &authService{
		passphraseHash: hash,
		jwtSecret:      []byte(cfg.JWTSecret),
		tokenTTL:       time.Duration(cfg.TokenTTLHours) * time.Hour,
		maxAttempts:    cfg.MaxAttempts,
		blockWindow:    blockWindow,
		// Expiry-on-read: once the block window passes, go-cache treats the
		// entries as gone and the IP is clean again.
		attempts: cache.New(blockWindow, 10*time.Minute),
		logger:   log,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.LoginResponse, error) {
	blockKey := "block:" + clientIP
	attemptsKey := "attempts:" + clientIP

	if _, blocked := s.attempts.Get(blockKey); blocked {
		return nil, fmt.Errorf("%w: too many failed attempts", apperror.ErrRateLimited)
	}

	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(req.Passphrase)); err != nil {
		count := 1
		if raw, found := s.attempts.Get(attemptsKey); found {
			count = raw.(int) + 1
		}
		s.attempts.Set(attemptsKey, count, s.blockWindow)

		if count >= s.maxAttempts {
			s.attempts.Set(blockKey, true, s.blockWindow)
			s.attempts.Delete(attemptsKey)
			s.logger.Warn("AuthService", "client blocked", map[string]interface{}{
				"ip":       clientIP,
				"attempts": count,
			})
			return nil, fmt.Errorf("%w: too many failed attempts", apperror.ErrRateLimited)
		}
		s.logger.Warn("AuthService", "failed login attempt", map[string]interface{}{
			"ip":       clientIP,
			"attempts": count,
		})
		return nil, fmt.Errorf("%w: invalid passphrase", apperror.ErrUnauthorized)
	}

	s.attempts.Delete(attemptsKey)

	now := time.Now()
	claims := jwt.MapClaims{
		"sid": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("auth: signing token: %w", err)
	}

	s.logger.Info("AuthService", "login succeeded", map[string]interface{}{"ip": clientIP})
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}
