package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"lostFoundManagement/models"
	"lostFoundManagement/repository"
)

// UserDirectory owns user CRUD, credential verification and the two
// compound role writes. Every write that touches both the users and admins
// tables runs inside one transaction: role and admin-row membership commit
// together or not at all.
type UserDirectory struct {
	db     *sql.DB
	users  *repository.UserRepository
	admins *repository.AdminRepository
}

func NewUserDirectory(db *sql.DB) *UserDirectory {
	return &UserDirectory{
		db:     db,
		users:  repository.NewUserRepository(db),
		admins: repository.NewAdminRepository(db),
	}
}

// Authenticate verifies the claimed credential against the stored bcrypt
// hash. An unknown email and a wrong password both fail with
// ErrInvalidCredentials.
func (d *UserDirectory) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := d.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// RegisterWithRole creates a user with a normalized role and, when that
// role is Admin, the matching admin row, in one transaction. Fails with
// ErrDuplicateEmail when the email is taken, whether caught by the
// precheck or by the UNIQUE constraint.
func (d *UserDirectory) RegisterWithRole(ctx context.Context, name, email, password, role, contact string) (int64, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return 0, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return 0, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return 0, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	existing, err := d.users.GetByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return 0, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	normalized := models.NormalizeRole(role)

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id, err := d.users.WithTx(tx).Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         normalized,
		Contact:      contact,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	if normalized == models.RoleAdmin {
		if _, err := d.admins.WithTx(tx).Create(ctx, &models.Admin{UserID: id}); err != nil {
			return 0, fmt.Errorf("create admin row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// UpdateRole changes a user's role and reconciles the admins table in the
// same transaction. The acting user is an explicit parameter and must be
// an admin; the check lives inside the operation, not at call sites.
// Promotion is idempotent with respect to an existing admin row.
func (d *UserDirectory) UpdateRole(ctx context.Context, actor *models.User, userID int64, newRole string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	normalized := models.NormalizeRole(newRole)

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := d.users.WithTx(tx).UpdateRole(ctx, userID, normalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnknownUser
		}
		return fmt.Errorf("update role: %w", err)
	}
	admins := d.admins.WithTx(tx)
	if normalized == models.RoleAdmin {
		existing, err := admins.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get admin row: %w", err)
		}
		if existing == nil {
			if _, err := admins.Create(ctx, &models.Admin{UserID: userID}); err != nil {
				return fmt.Errorf("create admin row: %w", err)
			}
		}
	} else {
		if _, err := admins.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete admin row: %w", err)
		}
	}
	return tx.Commit()
}

func (d *UserDirectory) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return d.users.GetByID(ctx, id)
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.users.GetByEmail(ctx, email)
}

func (d *UserDirectory) GetAll(ctx context.Context) ([]models.User, error) {
	return d.users.List(ctx)
}

// Update rewrites a user row as given. The caller keeps the password hash
// and role it read; this is the pass-through edit used by profile forms.
func (d *UserDirectory) Update(ctx context.Context, u *models.User) (bool, error) {
	ok, err := d.users.Update(ctx, u)
	if err != nil && isUniqueViolation(err) {
		return false, ErrDuplicateEmail
	}
	return ok, err
}

// Delete removes a user and, in the same transaction, any admin row
// referencing it. Returns false when the user did not exist.
func (d *UserDirectory) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := d.admins.WithTx(tx).DeleteByUserID(ctx, id); err != nil {
		return false, fmt.Errorf("delete admin row: %w", err)
	}
	ok, err := d.users.WithTx(tx).Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return ok, nil
}
