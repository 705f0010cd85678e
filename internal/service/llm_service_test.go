package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wineArrayJSON = `[
  {"name": "Penfolds Bin 28 Kalimna Shiraz", "type": "Shiraz", "region": "South Australia", "vintage": "2020", "description": "Ripe plum and spice.", "priceRange": "$40-$50 AUD", "abv": "14.5%", "rating": "93/100", "matchReason": "Matches the request for a bold red"},
  {"name": "Wynns Black Label", "type": "Cabernet Sauvignon", "region": "Coonawarra", "vintage": "2020", "description": "Cassis and cedar.", "priceRange": "$40-$50 AUD", "abv": "13.7%", "rating": "94/100"}
]`

func TestParseWineList_CleanJSON(t *testing.T) {
	wines, err := parseWineList(wineArrayJSON)
	require.NoError(t, err)

	require.Len(t, wines, 2)
	assert.Equal(t, "Penfolds Bin 28 Kalimna Shiraz", wines[0].Name)
	assert.Equal(t, "Shiraz", wines[0].Type)
	assert.Equal(t, "Matches the request for a bold red", wines[0].MatchReason)
}

func TestParseWineList_MarkdownFenced(t *testing.T) {
	content := "```json\n" + wineArrayJSON + "\n```"

	wines, err := parseWineList(content)
	require.NoError(t, err)
	assert.Len(t, wines, 2)
}

func TestParseWineList_CommentaryAroundJSON(t *testing.T) {
	content := "Here are my recommendations:\n" + wineArrayJSON + "\nEnjoy!"

	wines, err := parseWineList(content)
	require.NoError(t, err)
	assert.Len(t, wines, 2)
}

func TestParseWineList_DropsEntriesMissingIdentity(t *testing.T) {
	content := `[
	  {"name": "Real Wine", "type": "Shiraz"},
	  {"name": "", "type": "Shiraz"},
	  {"name": "No Type Wine", "type": "  "}
	]`

	wines, err := parseWineList(content)
	require.NoError(t, err)

	require.Len(t, wines, 1)
	assert.Equal(t, "Real Wine", wines[0].Name)
}

func TestParseWineList_Invalid(t *testing.T) {
	for _, content := range []string{
		"I cannot help with that request.",
		"[{broken json",
		"[]",
		`[{"name": "", "type": ""}]`,
	} {
		_, err := parseWineList(content)
		assert.Error(t, err, "content: %s", content)
	}
}

func TestParseWine_SingleObject(t *testing.T) {
	content := `The label reads:
{"name": "Grosset Polish Hill Riesling", "type": "Riesling", "region": "Clare Valley", "vintage": "2022", "description": "Bone-dry with lime.", "priceRange": "", "abv": "12.7%", "rating": ""}`

	wine, err := parseWine(content)
	require.NoError(t, err)

	assert.Equal(t, "Grosset Polish Hill Riesling", wine.Name)
	assert.Equal(t, "2022", wine.Vintage)
}

func TestParseWine_NotALabel(t *testing.T) {
	_, err := parseWine(`{"name": ""}`)
	assert.Error(t, err)

	_, err = parseWine("no json here")
	assert.Error(t, err)
}
