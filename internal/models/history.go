package models

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationSource distinguishes provider-backed results from the
// curated fallback tier.
type RecommendationSource string

const (
	SourceAI       RecommendationSource = "ai"
	SourceFallback RecommendationSource = "fallback"
)

// HistoryEntry is an append-only record of one recommendation request.
// Recommendations holds the returned wine list serialized as JSON.
type HistoryEntry struct {
	ID              uuid.UUID            `db:"id"`
	UserID          uuid.UUID            `db:"user_id"`
	Query           string               `db:"query"`
	Recommendations []byte               `db:"recommendations"`
	Source          RecommendationSource `db:"source"`
	CreatedAt       time.Time            `db:"created_at"`
}
