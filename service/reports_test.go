package service

import (
	"context"
	"errors"
	"testing"

	"lostFoundManagement/internal/testutil"
	"lostFoundManagement/models"
)

func TestReportWorkflow_CreateLostReport(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "wf_lost")
	wf := NewReportWorkflow(d)
	ctx := context.Background()

	reporter := testutil.SeedUser(t, d, "Dana", "dana@x.com", "pw", "User", "555-0100")

	rep, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:       reporter.ID,
		Category:         models.CategoryLost,
		Name:             "Red Scarf",
		Description:      "wool, tasselled",
		LastSeenLocation: "Bus Stop 4",
		LastSeenDate:     "2024-06-10",
	})
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	if rep.ID == 0 || rep.ItemID == 0 || rep.ReportType != models.CategoryLost || rep.ReportDate == "" {
		t.Fatalf("unexpected report: %+v", rep)
	}

	// All three rows readable afterwards
	item, err := wf.GetItem(ctx, rep.ItemID)
	if err != nil || item == nil || item.Name != "Red Scarf" || item.OwnerID != reporter.ID {
		t.Fatalf("item: %v %+v", err, item)
	}
	detail, err := wf.GetLostItemDetails(ctx, rep.ItemID)
	if err != nil || detail == nil || detail.LastSeenLocation != "Bus Stop 4" {
		t.Fatalf("lost detail: %v %+v", err, detail)
	}
	if other, _ := wf.GetFoundItemDetails(ctx, rep.ItemID); other != nil {
		t.Fatalf("lost item must have no found detail: %+v", other)
	}
}

func TestReportWorkflow_CreateFoundReport(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "wf_found")
	wf := NewReportWorkflow(d)
	ctx := context.Background()

	reporter := testutil.SeedUser(t, d, "Eli", "eli@x.com", "pw", "User", "")

	rep, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:      reporter.ID,
		Category:        models.CategoryFound,
		Name:            "Water Bottle",
		FoundLocation:   "Room 201",
		FoundDate:       "2024-06-11",
		StorageLocation: "Lost Property Office",
	})
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	detail, err := wf.GetFoundItemDetails(ctx, rep.ItemID)
	if err != nil || detail == nil || detail.StorageLocation != "Lost Property Office" {
		t.Fatalf("found detail: %v %+v", err, detail)
	}
}

func TestReportWorkflow_Validation(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "wf_validate")
	wf := NewReportWorkflow(d)
	ctx := context.Background()

	reporter := testutil.SeedUser(t, d, "Fay", "fay@x.com", "pw", "User", "")

	cases := []struct {
		name   string
		params CreateReportParams
	}{
		{"bad category", CreateReportParams{ReporterID: reporter.ID, Category: "stolen", Name: "x", LastSeenLocation: "y"}},
		{"empty name", CreateReportParams{ReporterID: reporter.ID, Category: models.CategoryLost, LastSeenLocation: "y"}},
		{"lost without location", CreateReportParams{ReporterID: reporter.ID, Category: models.CategoryLost, Name: "x"}},
		{"found without location", CreateReportParams{ReporterID: reporter.ID, Category: models.CategoryFound, Name: "x"}},
	}
	for _, tc := range cases {
		var verr *ValidationError
		if _, err := wf.CreateReport(ctx, tc.params); !errors.As(err, &verr) {
			t.Errorf("%s: want ValidationError, got %v", tc.name, err)
		}
	}

	// Unknown reporter is a referential error, not a validation one
	if _, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:       9999,
		Category:         models.CategoryLost,
		Name:             "x",
		LastSeenLocation: "y",
	}); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("want ErrUnknownUser, got %v", err)
	}
}

func TestReportWorkflow_CreateRollsBackOnReportFailure(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "wf_rollback")
	wf := NewReportWorkflow(d)
	ctx := context.Background()

	reporter := testutil.SeedUser(t, d, "Gus", "gus@x.com", "pw", "User", "")

	// Break the last write of the three-step chain
	if _, err := d.Exec(`DROP TABLE reports`); err != nil {
		t.Fatalf("drop reports: %v", err)
	}
	if _, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:       reporter.ID,
		Category:         models.CategoryLost,
		Name:             "Orphan Candidate",
		LastSeenLocation: "Hall",
	}); err == nil {
		t.Fatalf("expected create to fail")
	}

	// Neither the item nor its detail row may survive
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if n != 0 {
		t.Fatalf("orphan item left behind: count=%d", n)
	}
	if err := d.QueryRow(`SELECT COUNT(*) FROM lost_items`).Scan(&n); err != nil {
		t.Fatalf("count lost_items: %v", err)
	}
	if n != 0 {
		t.Fatalf("orphan detail left behind: count=%d", n)
	}
}

func TestReportWorkflow_DeleteReport(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "wf_delete")
	wf := NewReportWorkflow(d)
	ctx := context.Background()

	reporter := testutil.SeedUser(t, d, "Hal", "hal@x.com", "pw", "User", "")
	rep, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:       reporter.ID,
		Category:         models.CategoryLost,
		Name:             "Umbrella",
		LastSeenLocation: "Foyer",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := wf.DeleteReport(ctx, rep.ID)
	if err != nil || !ok {
		t.Fatalf("delete: %v ok=%v", err, ok)
	}
	// Item stays behind; only the report is removed
	if item, _ := wf.GetItem(ctx, rep.ItemID); item == nil {
		t.Fatalf("item should survive report delete")
	}
	ok, err = wf.DeleteReport(ctx, rep.ID)
	if err != nil || ok {
		t.Fatalf("second delete should report false, got ok=%v err=%v", ok, err)
	}
}

func TestReportQuery_ListAndSearch(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "wf_query")
	wf := NewReportWorkflow(d)
	q := NewReportQuery(d)
	ctx := context.Background()

	reporter := testutil.SeedUser(t, d, "Ivy", "ivy@x.com", "pw", "User", "555-0123")
	lost, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:       reporter.ID,
		Category:         models.CategoryLost,
		Name:             "Green Notebook",
		LastSeenLocation: "Lecture Hall B",
	})
	if err != nil {
		t.Fatalf("create lost: %v", err)
	}
	if _, err := wf.CreateReport(ctx, CreateReportParams{
		ReporterID:    reporter.ID,
		Category:      models.CategoryFound,
		Name:          "Gloves",
		FoundLocation: "Bike Shed",
	}); err != nil {
		t.Fatalf("create found: %v", err)
	}

	details, err := q.ListAllWithDetails(ctx)
	if err != nil || len(details) != 2 {
		t.Fatalf("list with details: %v len=%d", err, len(details))
	}
	for _, row := range details {
		if row.UserName != "Ivy" || row.UserContact != "555-0123" {
			t.Fatalf("reporter fields wrong: %+v", row)
		}
	}

	hits, err := q.Search(ctx, "notebook")
	if err != nil || len(hits) != 1 || hits[0].ReportID != lost.ID || hits[0].Location != "Lecture Hall B" {
		t.Fatalf("search: %v %+v", err, hits)
	}

	mine, err := q.ListByUser(ctx, reporter.ID)
	if err != nil || len(mine) != 2 {
		t.Fatalf("list by user: %v len=%d", err, len(mine))
	}
	got, err := q.GetByID(ctx, lost.ID)
	if err != nil || got == nil || got.ItemID != lost.ItemID {
		t.Fatalf("get by id: %v %+v", err, got)
	}
}
