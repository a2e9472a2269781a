package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/config"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/auth"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

// sha256("password")
const passwordDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

func newAuthService(t *testing.T) (*AuthService, *MockUserRepository, *metrics.Collector) {
	t.Helper()
	repo := new(MockUserRepository)
	collector := newTestCollector(t)
	jwt := auth.NewJWTManager(config.JWTConfig{
		Secret:          "test-secret-that-is-long-enough-123456",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		Issuer:          "clinic-api",
	})
	return NewAuthService(repo, jwt, testLogger(), collector), repo, collector
}

func TestHashPassword(t *testing.T) {
	assert.Equal(t, passwordDigest, HashPassword("password"))
	assert.Len(t, HashPassword(""), 64)
}

func TestAuthService_CheckCredentials(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	ctx := context.Background()

	repo.On("GetByUsername", mock.Anything, "frontdesk").Return(&domain.User{Username: "frontdesk", Password: passwordDigest}, nil)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	ok, err := svc.CheckCredentials(ctx, "frontdesk", "password")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckCredentials(ctx, "frontdesk", "Password")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CheckCredentials(ctx, "frontdesk", "password ")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CheckCredentials(ctx, "ghost", "password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_CheckCredentialsStorageError(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	storageErr := &domain.StorageError{Op: "get user", Err: errors.New("unable to open database file")}
	repo.On("GetByUsername", mock.Anything, "frontdesk").Return(nil, storageErr)

	ok, err := svc.CheckCredentials(context.Background(), "frontdesk", "password")
	assert.False(t, ok)
	assert.ErrorIs(t, err, storageErr)
}

func TestAuthService_Login(t *testing.T) {
	svc, repo, collector := newAuthService(t)
	repo.On("GetByUsername", mock.Anything, "frontdesk").Return(&domain.User{Username: "frontdesk", Password: passwordDigest}, nil)

	pair, err := svc.Login(context.Background(), "  frontdesk ", "password", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.LoginAttemptsTotal.WithLabelValues("success")))

	_, err = svc.Login(context.Background(), "frontdesk", "wrong", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.LoginAttemptsTotal.WithLabelValues("failure")))
}

func TestAuthService_LoginMissingCredentials(t *testing.T) {
	svc, repo, _ := newAuthService(t)

	for _, tc := range [][2]string{{"", "password"}, {"   ", "password"}, {"frontdesk", ""}} {
		_, err := svc.Login(context.Background(), tc[0], tc[1], "")
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Enter username and password.", vErr.Message)
	}
	repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestAuthService_Refresh(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	repo.On("GetByUsername", mock.Anything, "frontdesk").Return(&domain.User{Username: "frontdesk", Password: passwordDigest}, nil).Twice()

	pair, err := svc.Login(context.Background(), "frontdesk", "password", "")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	repo.On("GetByUsername", mock.Anything, "frontdesk").Return(nil, domain.ErrUserNotFound)
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ProvisionUser(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	repo.On("Upsert", mock.Anything, &domain.User{Username: "admin", Password: passwordDigest}).Return(nil)

	require.NoError(t, svc.ProvisionUser(context.Background(), " admin ", "password"))
	repo.AssertExpectations(t)

	err := svc.ProvisionUser(context.Background(), "admin", "")
	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr)
}
