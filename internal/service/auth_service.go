package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/auth"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

type AuthService struct {
	userRepo   domain.UserRepository
	jwtManager *auth.JWTManager
	log        *zap.Logger
	collector  *metrics.Collector
}

func NewAuthService(userRepo domain.UserRepository, jwtManager *auth.JWTManager, log *zap.Logger, collector *metrics.Collector) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager, log: log, collector: collector}
}

// HashPassword returns the lowercase hex SHA-256 of password, the format
// stored in users.password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckCredentials reports whether username exists and password hashes to its
// stored digest. An unknown user is not an error.
func (s *AuthService) CheckCredentials(ctx context.Context, username, password string) (bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		logStorageFailure(s.log, "failed to load user", err)
		return false, err
	}

	return user.Password == HashPassword(password), nil
}

// Login checks credentials and issues a session token pair. The username is
// trimmed, the password is used exactly as given.
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (*domain.TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		s.collector.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, errMissingCredentials
	}

	ok, err := s.CheckCredentials(ctx, username, password)
	if err != nil {
		s.collector.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if !ok {
		s.collector.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		s.log.Warn("failed login attempt", zap.String("ip", ip))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.jwtManager.GenerateTokenPair(&domain.Claims{Username: username})
	if err != nil {
		s.log.Error("failed to generate token pair", zap.Error(err))
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	s.collector.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info("user logged in", zap.String("username", username), zap.String("ip", ip))

	return pair, nil
}

// Refresh issues a new pair for a valid refresh token whose user still exists.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.userRepo.GetByUsername(ctx, claims.Username); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logStorageFailure(s.log, "failed to load user", err)
		return nil, err
	}

	return s.jwtManager.GenerateTokenPair(&domain.Claims{Username: claims.Username})
}

// ProvisionUser creates username or replaces its password.
func (s *AuthService) ProvisionUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errMissingCredentials
	}

	if err := s.userRepo.Upsert(ctx, &domain.User{Username: username, Password: HashPassword(password)}); err != nil {
		logStorageFailure(s.log, "failed to provision user", err)
		return err
	}

	s.log.Info("user provisioned", zap.String("username", username))
	return nil
}
