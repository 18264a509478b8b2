package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lostFoundManagement/models"
)

// ItemRepository handles the category-neutral item rows. The per-category
// detail rows live in LostItemRepository and FoundItemRepository.
type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ItemRepository) WithTx(tx *sql.Tx) *ItemRepository {
	return &ItemRepository{db: tx}
}

// Create inserts an item and returns its generated id.
// Status defaults to 'open' when empty; created_at comes from the engine.
func (r *ItemRepository) Create(ctx context.Context, it *models.Item) (int64, error) {
	if it == nil {
		return 0, errors.New("item is nil")
	}
	if it.Status == "" {
		it.Status = models.ItemStatusOpen
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO items (name, description, category, user_id, status) VALUES (?,?,?,?,?)`,
		it.Name, it.Description, string(it.Category), it.OwnerID, it.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var it models.Item
	var category string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, category, user_id, status, created_at FROM items WHERE id = ?`, id).
		Scan(&it.ID, &it.Name, &it.Description, &category, &it.OwnerID, &it.Status, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	it.Category = models.Category(category)
	return &it, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, category, user_id, status, created_at FROM items WHERE user_id = ? ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Item
	for rows.Next() {
		var it models.Item
		var category string
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &category, &it.OwnerID, &it.Status, &it.CreatedAt); err != nil {
			return nil, err
		}
		it.Category = models.Category(category)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets the status of an item. Returns sql.ErrNoRows when the
// item does not exist.
func (r *ItemRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
