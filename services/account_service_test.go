package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/repositories"
	"github.com/dreambabycare/babycare/repositories/mocks"
)

func validForm() *models.RegisterForm {
	return &models.RegisterForm{
		Email:      " parent@example.com ",
		Password:   "correct horse",
		ParentName: "Asha",
		BabyName:   "Mira",
		BabyDOB:    "2024-03-01",
	}
}

func TestAccountService_Register(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	service := NewAccountService(repo, config.AdminConfig{}, zerolog.Nop())

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "parent@example.com" &&
			u.SubscriptionState == models.StateInactive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")) == nil
	})).RunAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = 12
		return nil
	})

	user, err := service.Register(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, 12, user.ID)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	service := NewAccountService(repo, config.AdminConfig{}, zerolog.Nop())

	form := validForm()
	form.Password = "short"

	_, err := service.Register(context.Background(), form)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "Password must be at least 8 characters")
}

func TestAccountService_RegisterDuplicate(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	service := NewAccountService(repo, config.AdminConfig{}, zerolog.Nop())

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(fmt.Errorf("user parent@example.com: %w", repositories.ErrDuplicateEmail))

	_, err := service.Register(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAccountService_Authenticate(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	repo := mocks.NewMockUserRepository(t)
	service := NewAccountService(repo, config.AdminConfig{}, zerolog.Nop())

	repo.EXPECT().GetByEmail(mock.Anything, "parent@example.com").
		Return(&models.User{ID: 1, Email: "parent@example.com", PasswordHash: hash}, nil)
	repo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").
		Return(nil, fmt.Errorf("user with email nobody@example.com: %w", repositories.ErrNotFound))

	user, err := service.Authenticate(context.Background(), "parent@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = service.Authenticate(context.Background(), "parent@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_AuthenticateAdmin(t *testing.T) {
	hash, err := HashPassword("backoffice-secret")
	require.NoError(t, err)

	service := NewAccountService(mocks.NewMockUserRepository(t), config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
		Emails:       []string{"Ops@Example.com"},
	}, zerolog.Nop())

	assert.True(t, service.AuthenticateAdmin("admin", "backoffice-secret"))
	assert.False(t, service.AuthenticateAdmin("admin", "guess"))
	assert.False(t, service.AuthenticateAdmin("root", "backoffice-secret"))
	assert.True(t, service.IsAdminEmail("ops@example.com"))
	assert.False(t, service.IsAdminEmail("parent@example.com"))

	noHash := NewAccountService(mocks.NewMockUserRepository(t), config.AdminConfig{Username: "admin"}, zerolog.Nop())
	assert.False(t, noHash.AuthenticateAdmin("admin", ""))
}
