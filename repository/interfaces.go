package repository

import (
	"context"
	"database/sql"

	"lostFoundManagement/models"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run against either, so a service can span one transaction
// across several tables via WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserStore defines operations on User rows.
type UserStore interface {
	Create(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) (bool, error)
	UpdateRole(ctx context.Context, id int64, role string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// AdminStore defines operations on Admin rows.
type AdminStore interface {
	Create(ctx context.Context, a *models.Admin) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Update(ctx context.Context, a *models.Admin) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByUserID(ctx context.Context, userID int64) (bool, error)
}

// ReportStore defines operations on Report rows plus the read-side joins.
type ReportStore interface {
	Create(ctx context.Context, r *models.Report) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	ListAll(ctx context.Context) ([]models.Report, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Report, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListWithDetails(ctx context.Context) ([]models.ReportDetails, error)
	SearchWithDetails(ctx context.Context, query string) ([]models.ReportDetails, error)
}
