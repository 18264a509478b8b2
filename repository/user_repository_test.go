package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"lostFoundManagement/internal/db"
	"lostFoundManagement/models"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func seedUser(t *testing.T, d *sql.DB, name, email string) int64 {
	t.Helper()
	id, err := NewUserRepository(d).Create(context.Background(), &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleUser,
		Contact:      "555-0000",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return id
}

func TestUserRepository_CRUDAndQueries(t *testing.T) {
	d := openTestDB(t, "userrepo")
	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	id, err := repo.Create(ctx, &models.User{
		Name:         "Alice",
		Email:        "alice@x.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		Contact:      "555-0100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected generated id")
	}

	// GetByID
	g, err := repo.GetByID(ctx, id)
	if err != nil || g == nil || g.Name != "Alice" || g.Role != models.RoleUser {
		t.Fatalf("get by id: %v %+v", err, g)
	}

	// GetByEmail
	g2, err := repo.GetByEmail(ctx, "alice@x.com")
	if err != nil || g2 == nil || g2.ID != id {
		t.Fatalf("get by email: %v %+v", err, g2)
	}

	// Missing email reads as nil, not an error
	missing, err := repo.GetByEmail(ctx, "nobody@x.com")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing email, got %+v err=%v", missing, err)
	}

	// List
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}

	// Update
	g.Contact = "555-0199"
	ok, err := repo.Update(ctx, g)
	if err != nil || !ok {
		t.Fatalf("update: %v ok=%v", err, ok)
	}
	g3, _ := repo.GetByID(ctx, id)
	if g3.Contact != "555-0199" {
		t.Fatalf("contact not updated: %+v", g3)
	}

	// UpdateRole
	if err := repo.UpdateRole(ctx, id, models.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}
	g4, _ := repo.GetByID(ctx, id)
	if g4.Role != models.RoleAdmin {
		t.Fatalf("role not updated: %+v", g4)
	}
	if err := repo.UpdateRole(ctx, 9999, models.RoleAdmin); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for missing user, got %v", err)
	}

	// Delete
	ok, err = repo.Delete(ctx, id)
	if err != nil || !ok {
		t.Fatalf("delete: %v ok=%v", err, ok)
	}
	gone, err := repo.GetByID(ctx, id)
	if err != nil || gone != nil {
		t.Fatalf("expected user deleted, got: %+v err=%v", gone, err)
	}
	ok, err = repo.Delete(ctx, id)
	if err != nil || ok {
		t.Fatalf("second delete should report false, got ok=%v err=%v", ok, err)
	}
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	d := openTestDB(t, "userrepo_dup")
	repo := NewUserRepository(d)
	ctx := context.Background()

	seedUser(t, d, "Bob", "bob@x.com")
	_, err := repo.Create(ctx, &models.User{
		Name:         "Bobby",
		Email:        "bob@x.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
	})
	if err == nil {
		t.Fatalf("expected unique violation for duplicate email")
	}
}
