package models

import (
	"time"

	"github.com/google/uuid"
)

// WineStyle buckets the curated catalog and routes keyword fallbacks.
type WineStyle string

const (
	StyleRed       WineStyle = "red"
	StyleWhite     WineStyle = "white"
	StyleSparkling WineStyle = "sparkling"
	StyleRose      WineStyle = "rose"
	StyleMixed     WineStyle = "mixed"
)

// CuratedWine is a catalog row backing the browse endpoint. The same data
// ships compiled into the binary as the fallback tier.
type CuratedWine struct {
	ID          uuid.UUID `db:"id"`
	Style       WineStyle `db:"style"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Region      string    `db:"region"`
	Vintage     string    `db:"vintage"`
	Description string    `db:"description"`
	PriceRange  string    `db:"price_range"`
	ABV         string    `db:"abv"`
	Rating      string    `db:"rating"`
	CreatedAt   time.Time `db:"created_at"`
}
