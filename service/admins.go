package service

import (
	"context"
	"database/sql"
	"fmt"

	"lostFoundManagement/models"
	"lostFoundManagement/repository"
)

// AdminRegistry manages admin-role membership rows. The compound
// promote/demote path lives in UserDirectory.UpdateRole, which keeps
// users.role and the admins table consistent in one transaction; the
// registry itself offers membership CRUD with referential prechecks.
type AdminRegistry struct {
	admins *repository.AdminRepository
	users  *repository.UserRepository
}

func NewAdminRegistry(db *sql.DB) *AdminRegistry {
	return &AdminRegistry{
		admins: repository.NewAdminRepository(db),
		users:  repository.NewUserRepository(db),
	}
}

// AddAdmin inserts a membership row for an existing user. Fails with
// ErrUnknownUser when the user id has no row and ErrAlreadyAdmin when a
// membership row already exists. AdminRole defaults to Moderator.
func (r *AdminRegistry) AddAdmin(ctx context.Context, a *models.Admin) (bool, error) {
	if a == nil {
		return false, &ValidationError{Field: "admin", Reason: "must not be nil"}
	}
	u, err := r.users.GetByID(ctx, a.UserID)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return false, ErrUnknownUser
	}
	existing, err := r.admins.GetByUserID(ctx, a.UserID)
	if err != nil {
		return false, fmt.Errorf("get admin row: %w", err)
	}
	if existing != nil {
		return false, ErrAlreadyAdmin
	}
	if _, err := r.admins.Create(ctx, a); err != nil {
		if isUniqueViolation(err) {
			return false, ErrAlreadyAdmin
		}
		return false, fmt.Errorf("create admin row: %w", err)
	}
	return true, nil
}

func (r *AdminRegistry) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.admins.GetByID(ctx, id)
}

func (r *AdminRegistry) GetByUserID(ctx context.Context, userID int64) (*models.Admin, error) {
	return r.admins.GetByUserID(ctx, userID)
}

func (r *AdminRegistry) GetAll(ctx context.Context) ([]models.Admin, error) {
	return r.admins.List(ctx)
}

func (r *AdminRegistry) Update(ctx context.Context, a *models.Admin) (bool, error) {
	return r.admins.Update(ctx, a)
}

func (r *AdminRegistry) Delete(ctx context.Context, id int64) (bool, error) {
	return r.admins.Delete(ctx, id)
}
