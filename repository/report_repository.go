package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lostFoundManagement/models"
)

// ReportRepository is the core repository for Report rows. Report rows are
// append-only: there is no update path, only create, read and delete.
type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ReportRepository) WithTx(tx *sql.Tx) *ReportRepository {
	return &ReportRepository{db: tx}
}

// Create inserts a report row and returns its generated id.
// report_date comes from the engine default when ReportDate is empty.
func (r *ReportRepository) Create(ctx context.Context, rep *models.Report) (int64, error) {
	if rep == nil {
		return 0, errors.New("report is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var (
		res sql.Result
		err error
	)
	if rep.ReportDate == "" {
		res, err = r.db.ExecContext(ctx,
			`INSERT INTO reports (user_id, item_id, report_type) VALUES (?,?,?)`,
			rep.ReporterID, rep.ItemID, string(rep.ReportType))
	} else {
		res, err = r.db.ExecContext(ctx,
			`INSERT INTO reports (user_id, item_id, report_type, report_date) VALUES (?,?,?,?)`,
			rep.ReporterID, rep.ItemID, string(rep.ReportType), rep.ReportDate)
	}
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, sql.ErrNoRows
	}
	return res.LastInsertId()
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var rep models.Report
	var reportType string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, item_id, report_type, report_date FROM reports WHERE id = ?`, id).
		Scan(&rep.ID, &rep.ReporterID, &rep.ItemID, &reportType, &rep.ReportDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rep.ReportType = models.Category(reportType)
	return &rep, nil
}

func (r *ReportRepository) ListAll(ctx context.Context) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, item_id, report_type, report_date FROM reports ORDER BY report_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReportRows(rows)
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID int64) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, item_id, report_type, report_date FROM reports WHERE user_id = ? ORDER BY report_date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReportRows(rows)
}

// Delete removes a report row only; the item and its subtype row stay.
// Returns false when no row matched, including on repeat deletes.
func (r *ReportRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanReportRows(rows *sql.Rows) ([]models.Report, error) {
	var out []models.Report
	for rows.Next() {
		var rep models.Report
		var reportType string
		if err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.ItemID, &reportType, &rep.ReportDate); err != nil {
			return nil, err
		}
		rep.ReportType = models.Category(reportType)
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
