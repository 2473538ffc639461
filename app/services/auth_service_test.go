package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "asha@test.local",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.Password) // stored hashed

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	got, token2, err := svc.Login("asha@test.local", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token2)
}

func TestRegisterMapsLegacyUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, _, err := svc.Register(RegisterInput{
		Name:     "Ben",
		Email:    "ben@test.local",
		Password: "secret123",
		Role:     "user",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(RegisterInput{Name: "A", Email: "dup@test.local", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Register(RegisterInput{Name: "B", Email: "dup@test.local", Password: "secret456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, _, err := svc.Register(RegisterInput{Name: "C", Email: "c@test.local", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login("c@test.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@test.local", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivated accounts cannot log in, even with the right password.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	_, _, err = svc.Login("c@test.local", "secret123")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, _, err := svc.Register(RegisterInput{Name: "D", Email: "d@test.local", Password: "secret123"})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(user.ID, ProfileInput{Name: "Deva", Phone: "5551234"})
	require.NoError(t, err)
	assert.Equal(t, "Deva", got.Name)
	assert.Equal(t, "5551234", got.Phone)

	// Empty fields leave existing values alone.
	got, err = svc.UpdateProfile(user.ID, ProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Deva", got.Name)

	_, err = svc.UpdateProfile(999, ProfileInput{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}
