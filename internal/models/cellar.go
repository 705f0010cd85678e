package models

import (
	"time"

	"github.com/google/uuid"
)

// CellarEntry is a wine the user saved to their personal cellar.
type CellarEntry struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Name       string    `db:"name"`
	Type       string    `db:"type"`
	Region     string    `db:"region"`
	Vintage    string    `db:"vintage"`
	PriceRange string    `db:"price_range"`
	ABV        string    `db:"abv"`
	Rating     string    `db:"rating"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
}
