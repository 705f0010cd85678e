package service

import (
	"testing"

	"cork/internal/models"
	"cork/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCatalog_KeywordRouting(t *testing.T) {
	catalog := NewFallbackCatalog(&config.RecommendConfig{FallbackMode: "keyword"})

	tests := []struct {
		query    string
		wantName string
	}{
		{"red wine", "Penfolds Bin 389 Cabernet Shiraz"},
		{"a big cabernet please", "Penfolds Bin 389 Cabernet Shiraz"},
		{"white wine", "Leeuwin Estate Art Series Chardonnay"},
		{"crisp riesling", "Leeuwin Estate Art Series Chardonnay"},
		{"sparkling for a party", "House of Arras Grand Vintage"},
		{"something with bubbles", "House of Arras Grand Vintage"},
		{"dry rosé", "Turkey Flat Rosé"},
		{"something fruity", "Penfolds Bin 28 Kalimna Shiraz"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			wines := catalog.Select(tt.query)
			require.Len(t, wines, 3)
			assert.Equal(t, tt.wantName, wines[0].Name)
		})
	}
}

func TestFallbackCatalog_SingleMode(t *testing.T) {
	catalog := NewFallbackCatalog(&config.RecommendConfig{FallbackMode: "single"})

	red := catalog.Select("red wine")
	white := catalog.Select("white wine")

	require.Len(t, red, 3)
	assert.Equal(t, red, white, "single mode ignores the query")
}

func TestFallbackCatalog_AllEntriesComplete(t *testing.T) {
	catalog := NewFallbackCatalog(&config.RecommendConfig{FallbackMode: "keyword"})

	for _, query := range []string{"red", "white", "sparkling", "rose", "anything"} {
		for _, wine := range catalog.Select(query) {
			assert.NotEmpty(t, wine.Name)
			assert.NotEmpty(t, wine.Type)
			assert.NotEmpty(t, wine.Region)
			assert.NotEmpty(t, wine.Description)
			assert.NotEmpty(t, wine.PriceRange)
			assert.NotEmpty(t, wine.ABV)
			assert.NotEmpty(t, wine.Rating)
		}
	}
}

func TestCuratedWines_ForSeeding(t *testing.T) {
	wines := CuratedWines()

	// Four style sets of three, mixed set excluded
	require.Len(t, wines, 12)

	styles := make(map[models.WineStyle]int)
	ids := make(map[string]bool)
	for _, wine := range wines {
		styles[wine.Style]++
		assert.NotEqual(t, models.StyleMixed, wine.Style)
		assert.NotEmpty(t, wine.Name)
		assert.False(t, ids[wine.ID.String()], "ids are unique")
		ids[wine.ID.String()] = true
	}

	assert.Equal(t, 3, styles[models.StyleRed])
	assert.Equal(t, 3, styles[models.StyleWhite])
	assert.Equal(t, 3, styles[models.StyleSparkling])
	assert.Equal(t, 3, styles[models.StyleRose])
}
