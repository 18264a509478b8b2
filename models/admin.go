package models

// DefaultAdminRole is the admin_role stored when none is supplied.
const DefaultAdminRole = "Moderator"

// Admin is a row in the `admins` table. Its presence is the authoritative
// signal that the referenced user's role reads Admin; the two are only ever
// mutated together inside one transaction.
type Admin struct {
	ID        int64  `db:"id" json:"id"`
	UserID    int64  `db:"user_id" json:"user_id"`
	AdminRole string `db:"admin_role" json:"admin_role"`
}
