package models

import "strings"

// Role values stored in users.role. Anything else normalizes to RoleUser.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User represents a registered account.
// It maps to the `users` table in SQLite. PasswordHash holds a bcrypt hash
// and is never serialized across the API boundary.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	Contact      string `db:"contact" json:"contact"`
}

// IsAdmin reports whether the user's role reads Admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// NormalizeRole maps a requested role to one of the two stored values.
// Only a case-insensitive "Admin" yields RoleAdmin.
func NormalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
