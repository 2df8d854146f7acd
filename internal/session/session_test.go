package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "melmagia/internal/errors"
)

func TestSession_DefaultsToCustomer(t *testing.T) {
	s := New("admin123")

	assert.Equal(t, RoleCustomer, s.Role())
	assert.False(t, s.AdminAuthenticated())
}

func TestSession_Login(t *testing.T) {
	s := New("admin123")
	require.NoError(t, s.SwitchRole(RoleAdmin))

	err := s.Login("wrong")
	require.Error(t, err)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.False(t, s.AdminAuthenticated(), "authentication must stay false after a wrong secret")

	require.NoError(t, s.Login("admin123"))
	assert.True(t, s.AdminAuthenticated())
}

func TestSession_SwitchingAwayFromAdminClearsAuth(t *testing.T) {
	s := New("admin123")
	require.NoError(t, s.SwitchRole(RoleAdmin))
	require.NoError(t, s.Login("admin123"))

	require.NoError(t, s.SwitchRole(RoleCustomer))
	assert.False(t, s.AdminAuthenticated())

	// Re-entering admin requires a fresh login.
	require.NoError(t, s.SwitchRole(RoleAdmin))
	assert.False(t, s.AdminAuthenticated())
}

func TestSession_SwitchRole_Invalid(t *testing.T) {
	s := New("admin123")

	err := s.SwitchRole(Role("SUPERUSER"))
	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, RoleCustomer, s.Role())
}

func TestSession_Logout(t *testing.T) {
	s := New("admin123")
	require.NoError(t, s.SwitchRole(RoleAdmin))
	require.NoError(t, s.Login("admin123"))

	s.Logout()
	assert.False(t, s.AdminAuthenticated())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCourier.Valid())
	assert.False(t, Role("").Valid())
}
