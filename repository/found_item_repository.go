package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lostFoundManagement/models"
)

// FoundItemRepository handles the found-side detail rows, keyed 1:1 by item id.
type FoundItemRepository struct {
	db DBTX
}

func NewFoundItemRepository(db DBTX) *FoundItemRepository {
	return &FoundItemRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *FoundItemRepository) WithTx(tx *sql.Tx) *FoundItemRepository {
	return &FoundItemRepository{db: tx}
}

// Create inserts the found detail row for an item. Returns sql.ErrNoRows when
// the insert affects no rows.
func (r *FoundItemRepository) Create(ctx context.Context, fi *models.FoundItem) error {
	if fi == nil {
		return errors.New("found item is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO found_items (item_id, found_location, found_date, storage_location, additional_details, image_path) VALUES (?,?,?,?,?,?)`,
		fi.ItemID, fi.FoundLocation, nullable(fi.FoundDate), nullable(fi.StorageLocation), nullable(fi.AdditionalDetails), nullable(fi.ImagePath))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FoundItemRepository) GetByItemID(ctx context.Context, itemID int64) (*models.FoundItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var fi models.FoundItem
	var date, storage, details, image sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT item_id, found_location, found_date, storage_location, additional_details, image_path FROM found_items WHERE item_id = ?`, itemID).
		Scan(&fi.ItemID, &fi.FoundLocation, &date, &storage, &details, &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	fi.FoundDate = date.String
	fi.StorageLocation = storage.String
	fi.AdditionalDetails = details.String
	fi.ImagePath = image.String
	return &fi, nil
}
