package models

// Category tells whether an item was posted as lost or found. It decides
// which subtype table carries the item's detail row.
type Category string

const (
	CategoryLost  Category = "lost"
	CategoryFound Category = "found"
)

// Valid reports whether c is one of the two known categories.
func (c Category) Valid() bool {
	return c == CategoryLost || c == CategoryFound
}

// ItemStatusOpen is the status items start in.
const ItemStatusOpen = "open"

// Item is the category-neutral record of a possession involved in a report.
// Exactly one subtype row (LostItem or FoundItem) exists per item, keyed by
// ItemID and selected by Category.
type Item struct {
	ID          int64    `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	Category    Category `db:"category" json:"category"`
	OwnerID     int64    `db:"user_id" json:"user_id"`
	Status      string   `db:"status" json:"status"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
}

// LostItem is the lost-side detail row for an item.
// AdditionalDetails is free text; the reporting surface uses it for reward notes.
type LostItem struct {
	ItemID            int64  `db:"item_id" json:"item_id"`
	LastSeenLocation  string `db:"last_seen_location" json:"last_seen_location"`
	LastSeenDate      string `db:"last_seen_date" json:"last_seen_date"`
	AdditionalDetails string `db:"additional_details" json:"additional_details,omitempty"`
	ImagePath         string `db:"image_path" json:"image_path,omitempty"`
}

// FoundItem is the found-side detail row for an item.
type FoundItem struct {
	ItemID            int64  `db:"item_id" json:"item_id"`
	FoundLocation     string `db:"found_location" json:"found_location"`
	FoundDate         string `db:"found_date" json:"found_date"`
	StorageLocation   string `db:"storage_location" json:"storage_location,omitempty"`
	AdditionalDetails string `db:"additional_details" json:"additional_details,omitempty"`
	ImagePath         string `db:"image_path" json:"image_path,omitempty"`
}
