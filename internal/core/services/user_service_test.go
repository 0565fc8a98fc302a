package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := services.NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), dto.RegisterRequest{
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		Password:       "s3cret-enough",
		OrganizationID: testOrgID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, testOrgID, user.OrganizationID)
	assert.NotEqual(t, "s3cret-enough", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cret-enough", user.PasswordHash))
	assert.Equal(t, user.UserID, user.CreatedBy)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "asha@example.com", repo.users[0].Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{UserID: "u-1", Email: "asha@example.com"}}}
	svc := services.NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), dto.RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "s3cret-enough",
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Messages[0], "asha@example.com")
	assert.Len(t, repo.users, 1)
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	repo := &fakeUserRepo{users: []domain.User{{UserID: "u-1", Email: "asha@example.com", PasswordHash: hash}}}
	svc := services.NewUserService(repo)

	user, err := svc.AuthenticateUser(context.Background(), "asha@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)

	_, err = svc.AuthenticateUser(context.Background(), "asha@example.com", "wrong")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	// Unknown email reads the same as a bad password.
	_, err = svc.AuthenticateUser(context.Background(), "nobody@example.com", "correct horse")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
