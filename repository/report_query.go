package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"lostFoundManagement/models"
)

// Read-side joins for dashboard listings. One denormalized row per report;
// the subtype tables are joined conditionally on report_type so the
// location column is the last-seen location for lost reports and the found
// location for found reports.

const detailsSelect = `
SELECT r.id,
       i.name   AS item_name,
       u.name   AS user_name,
       u.contact AS user_contact,
       r.report_date,
       r.report_type AS status,
       COALESCE(l.last_seen_location, f.found_location) AS location
FROM reports r
JOIN items i ON i.id = r.item_id
JOIN users u ON u.id = r.user_id
LEFT JOIN lost_items  l ON l.item_id = r.item_id AND r.report_type = 'lost'
LEFT JOIN found_items f ON f.item_id = r.item_id AND r.report_type = 'found'`

// ListWithDetails returns every report joined with its item, reporter and
// matching subtype row, newest first.
func (r *ReportRepository) ListWithDetails(ctx context.Context) ([]models.ReportDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, detailsSelect+`
ORDER BY r.report_date DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetailRows(rows)
}

// SearchWithDetails filters the detail listing by a case-insensitive
// substring match against item name, status (report type) or location.
// An empty query returns every row; zero matches is an empty result, not
// an error.
func (r *ReportRepository) SearchWithDetails(ctx context.Context, query string) ([]models.ReportDetails, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return r.ListWithDetails(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// SQLite LIKE is case-insensitive for ASCII; lower() both sides keeps
	// the comparison predictable regardless of case_sensitive_like.
	pattern := "%" + strings.ToLower(q) + "%"
	rows, err := r.db.QueryContext(ctx, detailsSelect+`
WHERE lower(i.name) LIKE ?
   OR lower(r.report_type) LIKE ?
   OR lower(COALESCE(l.last_seen_location, f.found_location, '')) LIKE ?
ORDER BY r.report_date DESC, r.id DESC`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetailRows(rows)
}

func scanDetailRows(rows *sql.Rows) ([]models.ReportDetails, error) {
	var out []models.ReportDetails
	for rows.Next() {
		var d models.ReportDetails
		var location sql.NullString
		if err := rows.Scan(&d.ReportID, &d.ItemName, &d.UserName, &d.UserContact, &d.ReportDate, &d.Status, &location); err != nil {
			return nil, err
		}
		d.Location = location.String
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
