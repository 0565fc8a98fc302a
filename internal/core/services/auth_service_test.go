package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/ledgerbooks/books_backend/internal/platform/config"
	"github.com/ledgerbooks/books_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "books-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
}

func TestGenerateAccessTokenCarriesIdentity(t *testing.T) {
	cfg := testTokenConfig()
	svc := services.NewTokenService(cfg, &fakeUserRepo{})

	user := &domain.User{UserID: "u-1", OrganizationID: testOrgID}
	token, expiry, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, expiry.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, testOrgID, claims.OrganizationID)
	assert.Equal(t, "books-test", claims.Issuer)
}

func TestValidateRefreshToken(t *testing.T) {
	cfg := testTokenConfig()
	raw := "opaque-refresh-token"
	repo := &fakeUserRepo{
		users:         []domain.User{{UserID: "u-1", Email: "asha@example.com"}},
		refreshHash:   utils.HashRefreshToken(raw),
		refreshExpiry: time.Now().Add(time.Hour),
	}
	svc := services.NewTokenService(cfg, repo)

	user, err := svc.ValidateRefreshToken(context.Background(), "u-1", raw)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)

	_, err = svc.ValidateRefreshToken(context.Background(), "u-1", "not-the-token")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = svc.ValidateRefreshToken(context.Background(), "unknown", raw)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestValidateRefreshTokenExpired(t *testing.T) {
	raw := "opaque-refresh-token"
	repo := &fakeUserRepo{
		users:         []domain.User{{UserID: "u-1"}},
		refreshHash:   utils.HashRefreshToken(raw),
		refreshExpiry: time.Now().Add(-time.Minute),
	}
	svc := services.NewTokenService(testTokenConfig(), repo)

	_, err := svc.ValidateRefreshToken(context.Background(), "u-1", raw)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestGoogleLoginURLCarriesState(t *testing.T) {
	cfg := testTokenConfig()
	cfg.GoogleClientID = "client-id"
	cfg.GoogleRedirectURL = "http://localhost:8080/api/v1/auth/google/callback"
	svc := services.NewGoogleOAuthHandlerService(cfg)

	state, err := svc.GenerateStateString(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, state)

	url := svc.GetGoogleLoginURL(context.Background(), state)
	assert.Contains(t, url, "state="+state)
	assert.Contains(t, url, "client-id")
}
