package dto

// Wine is the recommendation record as it appears on the wire and inside
// persisted history entries. Field names are part of the public contract
// consumed by the web client.
type Wine struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	Vintage     string `json:"vintage,omitempty"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"`
	ABV         string `json:"abv"`
	Rating      string `json:"rating"`
	MatchReason string `json:"matchReason,omitempty"`
}

type RecommendRequest struct {
	Query string `json:"query"`
}

// RecommendationResult is the 200 body of POST /api/v1/recommendations.
// Source is "ai" when the provider produced the list and "fallback" when the
// curated tier did.
type RecommendationResult struct {
	Recommendations []*Wine `json:"recommendations"`
	Query           string  `json:"query"`
	Timestamp       string  `json:"timestamp"`
	Source          string  `json:"source"`
}

type HistoryEntryResponse struct {
	ID              string  `json:"id"`
	Query           string  `json:"query"`
	Recommendations []*Wine `json:"recommendations"`
	Source          string  `json:"source"`
	CreatedAt       string  `json:"created_at"`
}
