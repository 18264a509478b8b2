package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lostFoundManagement/models"
)

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *AdminRepository) WithTx(tx *sql.Tx) *AdminRepository {
	return &AdminRepository{db: tx}
}

// Create inserts an admin row. AdminRole defaults to Moderator when empty.
// The UNIQUE constraint on user_id makes a second row per user a driver error.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) (int64, error) {
	if a == nil {
		return 0, errors.New("admin is nil")
	}
	role := a.AdminRole
	if role == "" {
		role = models.DefaultAdminRole
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (user_id, admin_role) VALUES (?,?)`, a.UserID, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a models.Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, admin_role FROM admins WHERE id = ?`, id).
		Scan(&a.ID, &a.UserID, &a.AdminRole)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByUserID(ctx context.Context, userID int64) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a models.Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, admin_role FROM admins WHERE user_id = ?`, userID).
		Scan(&a.ID, &a.UserID, &a.AdminRole)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, admin_role FROM admins ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.UserID, &a.AdminRole); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the user_id and admin_role of an admin row.
func (r *AdminRepository) Update(ctx context.Context, a *models.Admin) (bool, error) {
	if a == nil {
		return false, errors.New("admin is nil")
	}
	role := a.AdminRole
	if role == "" {
		role = models.DefaultAdminRole
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET user_id = ?, admin_role = ? WHERE id = ?`, a.UserID, role, a.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteByUserID removes the admin row for a user, if one exists.
// Used by demotion and by the user-delete cascade.
func (r *AdminRepository) DeleteByUserID(ctx context.Context, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
