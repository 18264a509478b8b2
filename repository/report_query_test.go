package repository

import (
	"context"
	"database/sql"
	"testing"

	"lostFoundManagement/models"
)

// seedReport wires a full item/subtype/report triple for the query tests.
func seedReport(t *testing.T, d *sql.DB, owner int64, name string, category models.Category, location string) int64 {
	t.Helper()
	ctx := context.Background()
	itemID := seedItem(t, d, owner, name, category)
	switch category {
	case models.CategoryLost:
		if err := NewLostItemRepository(d).Create(ctx, &models.LostItem{ItemID: itemID, LastSeenLocation: location}); err != nil {
			t.Fatalf("seed lost detail: %v", err)
		}
	case models.CategoryFound:
		if err := NewFoundItemRepository(d).Create(ctx, &models.FoundItem{ItemID: itemID, FoundLocation: location}); err != nil {
			t.Fatalf("seed found detail: %v", err)
		}
	}
	id, err := NewReportRepository(d).Create(ctx, &models.Report{ReporterID: owner, ItemID: itemID, ReportType: category})
	if err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return id
}

func TestReportRepository_ListWithDetails(t *testing.T) {
	d := openTestDB(t, "reportquery")
	repo := NewReportRepository(d)
	ctx := context.Background()

	owner := seedUser(t, d, "Rhea", "rhea@x.com")
	lostID := seedReport(t, d, owner, "Blue Backpack", models.CategoryLost, "North Gate")
	foundID := seedReport(t, d, owner, "Silver Watch", models.CategoryFound, "Gym Lobby")

	list, err := repo.ListWithDetails(ctx)
	if err != nil {
		t.Fatalf("list with details: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 detail rows, got %d", len(list))
	}
	byID := map[int64]models.ReportDetails{}
	for _, dtl := range list {
		byID[dtl.ReportID] = dtl
	}
	lostRow, ok := byID[lostID]
	if !ok || lostRow.ItemName != "Blue Backpack" || lostRow.Status != "lost" || lostRow.Location != "North Gate" {
		t.Fatalf("unexpected lost row: %+v", lostRow)
	}
	if lostRow.UserName != "Rhea" || lostRow.UserContact != "555-0000" || lostRow.ReportDate == "" {
		t.Fatalf("reporter fields missing: %+v", lostRow)
	}
	foundRow, ok := byID[foundID]
	if !ok || foundRow.Status != "found" || foundRow.Location != "Gym Lobby" {
		t.Fatalf("unexpected found row: %+v", foundRow)
	}
}

func TestReportRepository_SearchWithDetails(t *testing.T) {
	d := openTestDB(t, "reportsearch")
	repo := NewReportRepository(d)
	ctx := context.Background()

	owner := seedUser(t, d, "Sam", "sam@x.com")
	seedReport(t, d, owner, "Blue Backpack", models.CategoryLost, "North Gate")
	seedReport(t, d, owner, "Silver Watch", models.CategoryFound, "Gym Lobby")

	// Empty query returns the same rows as the full listing
	all, err := repo.ListWithDetails(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	empty, err := repo.SearchWithDetails(ctx, "   ")
	if err != nil || len(empty) != len(all) {
		t.Fatalf("empty query: %v len=%d want=%d", err, len(empty), len(all))
	}

	// Case-insensitive item name match
	rows, err := repo.SearchWithDetails(ctx, "bAcKpAcK")
	if err != nil || len(rows) != 1 || rows[0].ItemName != "Blue Backpack" {
		t.Fatalf("name search: %v %+v", err, rows)
	}

	// Status match
	rows, err = repo.SearchWithDetails(ctx, "FOUND")
	if err != nil || len(rows) != 1 || rows[0].Status != "found" {
		t.Fatalf("status search: %v %+v", err, rows)
	}

	// Location match
	rows, err = repo.SearchWithDetails(ctx, "gym")
	if err != nil || len(rows) != 1 || rows[0].Location != "Gym Lobby" {
		t.Fatalf("location search: %v %+v", err, rows)
	}

	// Zero matches is an empty result, not an error
	rows, err = repo.SearchWithDetails(ctx, "no-such-thing")
	if err != nil || len(rows) != 0 {
		t.Fatalf("no-match search: %v len=%d", err, len(rows))
	}
}
