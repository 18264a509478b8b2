package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lostFoundManagement/models"
)

// LostItemRepository handles the lost-side detail rows, keyed 1:1 by item id.
type LostItemRepository struct {
	db DBTX
}

func NewLostItemRepository(db DBTX) *LostItemRepository {
	return &LostItemRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *LostItemRepository) WithTx(tx *sql.Tx) *LostItemRepository {
	return &LostItemRepository{db: tx}
}

// Create inserts the lost detail row for an item. Returns sql.ErrNoRows when
// the insert affects no rows.
func (r *LostItemRepository) Create(ctx context.Context, li *models.LostItem) error {
	if li == nil {
		return errors.New("lost item is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO lost_items (item_id, last_seen_location, last_seen_date, additional_details, image_path) VALUES (?,?,?,?,?)`,
		li.ItemID, li.LastSeenLocation, nullable(li.LastSeenDate), nullable(li.AdditionalDetails), nullable(li.ImagePath))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LostItemRepository) GetByItemID(ctx context.Context, itemID int64) (*models.LostItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var li models.LostItem
	var date, details, image sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT item_id, last_seen_location, last_seen_date, additional_details, image_path FROM lost_items WHERE item_id = ?`, itemID).
		Scan(&li.ItemID, &li.LastSeenLocation, &date, &details, &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	li.LastSeenDate = date.String
	li.AdditionalDetails = details.String
	li.ImagePath = image.String
	return &li, nil
}
