package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/service"
	"github.com/dom/ep-app-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUserData(t *testing.T) {
	ctx := context.Background()
	services, repos := newServices(t)

	user, _ := testutil.NewUserBuilder().Build(t, repos.User)
	testutil.NewSeizureBuilder(user.ID).Build(t, repos.Seizure)
	testutil.NewContactBuilder(user.ID).Build(t, repos.Contact)
	testutil.NewSeizureBuilder(uuid.New()).Build(t, repos.Seizure)

	data, err := services.User.GetUserData(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, data.User.Email)
	assert.Len(t, data.Seizures, 1)
	assert.Len(t, data.Contacts, 1)

	_, err = services.User.GetUserData(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	services, repos := newServices(t)
	user, password := testutil.NewUserBuilder().Build(t, repos.User)
	originalHash := user.PasswordHash

	t.Run("profile fields", func(t *testing.T) {
		birthDate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
		updated, err := services.User.Update(ctx, user.ID, service.UpdateUserInput{
			FirstName: ptr(" Jane "),
			Surname:   ptr("Doe"),
			BirthDate: &birthDate,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.FirstName)
		assert.Equal(t, "Doe", updated.Surname)
		require.NotNil(t, updated.BirthDate)
		assert.True(t, birthDate.Equal(*updated.BirthDate))
		assert.Equal(t, originalHash, updated.PasswordHash)
	})

	t.Run("same password keeps the stored hash", func(t *testing.T) {
		updated, err := services.User.Update(ctx, user.ID, service.UpdateUserInput{
			Password: ptr(password),
		})
		require.NoError(t, err)
		assert.Equal(t, originalHash, updated.PasswordHash)
	})

	t.Run("new password is hashed once", func(t *testing.T) {
		updated, err := services.User.Update(ctx, user.ID, service.UpdateUserInput{
			Password: ptr("another-secret"),
		})
		require.NoError(t, err)
		assert.NotEqual(t, originalHash, updated.PasswordHash)

		_, err = services.Auth.Login(ctx, service.LoginInput{Email: user.Email, Password: "another-secret"})
		assert.NoError(t, err)
		_, err = services.Auth.Login(ctx, service.LoginInput{Email: user.Email, Password: password})
		assert.ErrorIs(t, err, domain.ErrAuthFailed)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := services.User.Update(ctx, user.ID, service.UpdateUserInput{
			Password: ptr("abc"),
		})
		assert.ErrorIs(t, err, domain.ErrValidationFailed)
	})

	t.Run("overlong password rejected", func(t *testing.T) {
		before, err := repos.User.GetByID(ctx, user.ID)
		require.NoError(t, err)

		_, err = services.User.Update(ctx, user.ID, service.UpdateUserInput{
			Password: ptr(strings.Repeat("q", 80)),
		})
		assert.ErrorIs(t, err, domain.ErrValidationFailed)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "password", vErr.Fields[0].Field)

		after, err := repos.User.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, before.PasswordHash, after.PasswordHash)
	})

	t.Run("token survives profile updates", func(t *testing.T) {
		authenticated, err := services.Auth.Authenticate(ctx, user.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, authenticated.ID)
	})
}
