package service

import (
	"context"

	"lostFoundManagement/models"
)

// Session carries the current authenticated user for one interactive
// caller. It is an explicit value handed to the operations that need
// identity rather than process-global state, and it is not safe for
// concurrent use: one session per interactive process.
type Session struct {
	directory *UserDirectory
	current   *models.User
}

func NewSession(directory *UserDirectory) *Session {
	return &Session{directory: directory}
}

// Login authenticates by email and password and, on success, pins the
// returned user as the session's current user.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.current = u
	return u, nil
}

// Logout clears the current user.
func (s *Session) Logout() {
	s.current = nil
}

// CurrentUser returns the user set at login, without refreshing it from
// storage. Nil when nobody is logged in.
func (s *Session) CurrentUser() *models.User {
	return s.current
}

// RequireAdmin fails with ErrForbidden unless the current user's role is
// Admin.
func (s *Session) RequireAdmin() error {
	if !s.current.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
