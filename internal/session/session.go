// Package session tracks the single active demo session: which role
// surface is showing and whether the admin gate is open. The gate is a
// static shared-secret comparison, a demo lock rather than a security
// boundary: no tokens, no expiry, no hashing, no lockout.
package session

import (
	"fmt"
	"sync"

	apperrors "melmagia/internal/errors"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
	RoleCourier  Role = "COURIER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleCourier:
		return true
	}
	return false
}

type Session struct {
	mu            sync.Mutex
	role          Role
	adminSecret   string
	authenticated bool
}

func New(adminSecret string) *Session {
	return &Session{
		role:        RoleCustomer,
		adminSecret: adminSecret,
	}
}

func (s *Session) Role() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SwitchRole activates one of the three mutually exclusive surfaces.
// Any switch drops admin authentication, so re-entering the admin
// surface always requires logging in again.
func (s *Session) SwitchRole(role Role) error {
	if !role.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown role %q", role), apperrors.ValidationDetail{
			Field:   "role",
			Message: "role must be CUSTOMER, ADMIN or COURIER",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	s.authenticated = false
	return nil
}

// Login opens the admin gate when the entered secret matches. A wrong
// secret returns unauthorized and leaves the gate closed; there is no
// lockout or backoff.
func (s *Session) Login(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if password != s.adminSecret {
		return apperrors.NewUnauthorizedError("incorrect admin password")
	}
	s.authenticated = true
	return nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

func (s *Session) AdminAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}
