package service

import (
	"context"
	"database/sql"
	"fmt"

	"lostFoundManagement/models"
	"lostFoundManagement/repository"
)

// ReportWorkflow orchestrates the multi-step create-report write: an item,
// its category subtype row and the report that ties them to a user are one
// unit of work. All three inserts share one transaction; a failure at any
// step leaves no orphan item behind.
type ReportWorkflow struct {
	db      *sql.DB
	users   *repository.UserRepository
	items   *repository.ItemRepository
	lost    *repository.LostItemRepository
	found   *repository.FoundItemRepository
	reports *repository.ReportRepository
}

func NewReportWorkflow(db *sql.DB) *ReportWorkflow {
	return &ReportWorkflow{
		db:      db,
		users:   repository.NewUserRepository(db),
		items:   repository.NewItemRepository(db),
		lost:    repository.NewLostItemRepository(db),
		found:   repository.NewFoundItemRepository(db),
		reports: repository.NewReportRepository(db),
	}
}

// CreateReportParams carries everything a new report needs. Exactly one of
// the lost/found field groups applies, selected by Category. ImagePath is
// the already-stored path from the image boundary, optional.
type CreateReportParams struct {
	ReporterID  int64
	Category    models.Category
	Name        string
	Description string

	// lost
	LastSeenLocation string
	LastSeenDate     string

	// found
	FoundLocation   string
	FoundDate       string
	StorageLocation string

	AdditionalDetails string
	ImagePath         string
}

func (p *CreateReportParams) validate() error {
	if !p.Category.Valid() {
		return &ValidationError{Field: "category", Reason: `must be "lost" or "found"`}
	}
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	switch p.Category {
	case models.CategoryLost:
		if p.LastSeenLocation == "" {
			return &ValidationError{Field: "last_seen_location", Reason: "required for lost reports"}
		}
	case models.CategoryFound:
		if p.FoundLocation == "" {
			return &ValidationError{Field: "found_location", Reason: "required for found reports"}
		}
	}
	return nil
}

// CreateReport validates, then inserts the item, the matching subtype row
// and the report inside one transaction. The returned report carries both
// the report id and the item id, the user-facing reference numbers.
func (w *ReportWorkflow) CreateReport(ctx context.Context, p CreateReportParams) (*models.Report, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	reporter, err := w.users.GetByID(ctx, p.ReporterID)
	if err != nil {
		return nil, fmt.Errorf("get reporter: %w", err)
	}
	if reporter == nil {
		return nil, ErrUnknownUser
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	itemID, err := w.items.WithTx(tx).Create(ctx, &models.Item{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		OwnerID:     p.ReporterID,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	switch p.Category {
	case models.CategoryLost:
		err = w.lost.WithTx(tx).Create(ctx, &models.LostItem{
			ItemID:            itemID,
			LastSeenLocation:  p.LastSeenLocation,
			LastSeenDate:      p.LastSeenDate,
			AdditionalDetails: p.AdditionalDetails,
			ImagePath:         p.ImagePath,
		})
	case models.CategoryFound:
		err = w.found.WithTx(tx).Create(ctx, &models.FoundItem{
			ItemID:            itemID,
			FoundLocation:     p.FoundLocation,
			FoundDate:         p.FoundDate,
			StorageLocation:   p.StorageLocation,
			AdditionalDetails: p.AdditionalDetails,
			ImagePath:         p.ImagePath,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("create %s detail: %w", p.Category, err)
	}

	reportID, err := w.reports.WithTx(tx).Create(ctx, &models.Report{
		ReporterID: p.ReporterID,
		ItemID:     itemID,
		ReportType: p.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	rep, err := w.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("read back report: %w", err)
	}
	if rep == nil {
		return nil, fmt.Errorf("created report not found: id=%d", reportID)
	}
	return rep, nil
}

// DeleteReport removes the report row only; the item and its subtype row
// stay. False means nothing matched, on the first and every later call.
func (w *ReportWorkflow) DeleteReport(ctx context.Context, reportID int64) (bool, error) {
	return w.reports.Delete(ctx, reportID)
}

// GetItem returns the category-neutral item record, or nil when absent.
func (w *ReportWorkflow) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	return w.items.GetByID(ctx, itemID)
}

// GetLostItemDetails returns the lost-side detail row for an item.
func (w *ReportWorkflow) GetLostItemDetails(ctx context.Context, itemID int64) (*models.LostItem, error) {
	return w.lost.GetByItemID(ctx, itemID)
}

// GetFoundItemDetails returns the found-side detail row for an item.
func (w *ReportWorkflow) GetFoundItemDetails(ctx context.Context, itemID int64) (*models.FoundItem, error) {
	return w.found.GetByItemID(ctx, itemID)
}

// ReportQuery is the read side used by dashboards and admin views.
type ReportQuery struct {
	reports *repository.ReportRepository
}

func NewReportQuery(db *sql.DB) *ReportQuery {
	return &ReportQuery{reports: repository.NewReportRepository(db)}
}

// ListAllWithDetails returns one denormalized row per report for listing.
func (q *ReportQuery) ListAllWithDetails(ctx context.Context) ([]models.ReportDetails, error) {
	return q.reports.ListWithDetails(ctx)
}

// Search filters the detail listing by a case-insensitive substring match
// against item name, status or location. Empty query returns all rows.
func (q *ReportQuery) Search(ctx context.Context, query string) ([]models.ReportDetails, error) {
	return q.reports.SearchWithDetails(ctx, query)
}

func (q *ReportQuery) ListAll(ctx context.Context) ([]models.Report, error) {
	return q.reports.ListAll(ctx)
}

func (q *ReportQuery) ListByUser(ctx context.Context, userID int64) ([]models.Report, error) {
	return q.reports.ListByUser(ctx, userID)
}

func (q *ReportQuery) GetByID(ctx context.Context, reportID int64) (*models.Report, error) {
	return q.reports.GetByID(ctx, reportID)
}
