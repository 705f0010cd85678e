package models

import (
	"time"

	"github.com/google/uuid"
)

// Label is a scanned wine-label photo. Wine holds the structured record the
// vision model extracted, serialized as JSON.
type Label struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	FileName  string    `db:"file_name"`
	FileSize  int64     `db:"file_size"`
	FileURL   string    `db:"file_url"`
	Wine      []byte    `db:"wine"`
	CreatedAt time.Time `db:"created_at"`
}
