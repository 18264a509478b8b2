package models

// Report is the append-only audit record linking a reporting user to an
// item at a point in time. ReportType always equals the item's category.
type Report struct {
	ID         int64    `db:"id" json:"id"`
	ReporterID int64    `db:"user_id" json:"user_id"`
	ItemID     int64    `db:"item_id" json:"item_id"`
	ReportType Category `db:"report_type" json:"report_type"`
	ReportDate string   `db:"report_date" json:"report_date"`
}

// ReportDetails is the denormalized dashboard row joining a report with its
// item, reporter and subtype detail. It is derived, never persisted.
// Location is the last-seen location for lost reports and the found
// location for found reports.
type ReportDetails struct {
	ReportID    int64  `json:"report_id"`
	ItemName    string `json:"item_name"`
	UserName    string `json:"user_name"`
	UserContact string `json:"user_contact"`
	ReportDate  string `json:"report_date"`
	Status      string `json:"status"`
	Location    string `json:"location"`
}
