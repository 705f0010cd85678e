package service

import (
	"strings"
	"time"

	"cork/internal/dto"
	"cork/internal/models"
	"cork/pkg/config"

	"github.com/google/uuid"
)

// FallbackCatalog is the deterministic tier behind the AI provider: a fixed
// set of curated wines, compiled into the binary, so the recommendation path
// can always answer without touching the network. In "keyword" mode the
// query is routed to a style-specific set; in "single" mode every query gets
// the default set.
type FallbackCatalog struct {
	mode string
	sets map[models.WineStyle][]*dto.Wine
}

func NewFallbackCatalog(cfg *config.RecommendConfig) *FallbackCatalog {
	return &FallbackCatalog{
		mode: cfg.FallbackMode,
		sets: curatedSets,
	}
}

// Select returns the curated set for the query. Same query in, same wines
// out: this path is pure data and must never fail.
func (f *FallbackCatalog) Select(query string) []*dto.Wine {
	if f.mode != "keyword" {
		return f.sets[models.StyleMixed]
	}

	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "sparkling") || strings.Contains(q, "bubbles") || strings.Contains(q, "champagne"):
		return f.sets[models.StyleSparkling]
	case strings.Contains(q, "rosé") || strings.Contains(q, "rose"):
		return f.sets[models.StyleRose]
	case strings.Contains(q, "red") || strings.Contains(q, "shiraz") || strings.Contains(q, "cabernet"):
		return f.sets[models.StyleRed]
	case strings.Contains(q, "white") || strings.Contains(q, "chardonnay") || strings.Contains(q, "riesling"):
		return f.sets[models.StyleWhite]
	default:
		return f.sets[models.StyleMixed]
	}
}

// CuratedWines flattens the fallback datasets into catalog rows for seeding.
// The mixed set is a selection of the style sets, so it is skipped to avoid
// duplicate names in the catalog table.
func CuratedWines() []*models.CuratedWine {
	now := time.Now()
	var wines []*models.CuratedWine
	for _, style := range []models.WineStyle{models.StyleRed, models.StyleWhite, models.StyleSparkling, models.StyleRose} {
		for _, w := range curatedSets[style] {
			wines = append(wines, &models.CuratedWine{
				ID:          uuid.New(),
				Style:       style,
				Name:        w.Name,
				Type:        w.Type,
				Region:      w.Region,
				Vintage:     w.Vintage,
				Description: w.Description,
				PriceRange:  w.PriceRange,
				ABV:         w.ABV,
				Rating:      w.Rating,
				CreatedAt:   now,
			})
		}
	}
	return wines
}

var curatedSets = map[models.WineStyle][]*dto.Wine{
	models.StyleRed: {
		{
			Name:        "Penfolds Bin 389 Cabernet Shiraz",
			Type:        "Cabernet Shiraz",
			Region:      "South Australia",
			Vintage:     "2019",
			Description: "Dark plum and blackcurrant with mocha oak, a generous mid-palate and firm, ripe tannins. Often called 'Baby Grange' for its barrel lineage.",
			PriceRange:  "$80-$100 AUD",
			ABV:         "14.5%",
			Rating:      "95/100",
			MatchReason: "A benchmark Australian red blend that suits most red wine requests",
		},
		{
			Name:        "Henschke Mount Edelstone Shiraz",
			Type:        "Shiraz",
			Region:      "Eden Valley, South Australia",
			Vintage:     "2018",
			Description: "Single-vineyard old-vine Shiraz with blackberry, sage and cracked pepper, silky tannins and remarkable length.",
			PriceRange:  "$180-$220 AUD",
			ABV:         "14.0%",
			Rating:      "96/100",
			MatchReason: "Old-vine Eden Valley Shiraz for drinkers after something special",
		},
		{
			Name:        "Wynns Black Label Cabernet Sauvignon",
			Type:        "Cabernet Sauvignon",
			Region:      "Coonawarra, South Australia",
			Vintage:     "2020",
			Description: "Classic terra rossa Cabernet: cassis, bay leaf and cedar, medium-bodied with fine-grained tannins and a long savoury finish.",
			PriceRange:  "$40-$50 AUD",
			ABV:         "13.7%",
			Rating:      "94/100",
			MatchReason: "Outstanding value Coonawarra Cabernet with decades of cellaring pedigree",
		},
	},
	models.StyleWhite: {
		{
			Name:        "Leeuwin Estate Art Series Chardonnay",
			Type:        "Chardonnay",
			Region:      "Margaret River, Western Australia",
			Vintage:     "2020",
			Description: "Powerful yet precise Chardonnay with white peach, grapefruit and struck-match complexity over creamy French oak.",
			PriceRange:  "$90-$120 AUD",
			ABV:         "13.5%",
			Rating:      "97/100",
			MatchReason: "Australia's most celebrated Chardonnay, ideal for white wine lovers",
		},
		{
			Name:        "Grosset Polish Hill Riesling",
			Type:        "Riesling",
			Region:      "Clare Valley, South Australia",
			Vintage:     "2022",
			Description: "Bone-dry Riesling with lime blossom, slate and searing natural acidity; built to age for twenty years.",
			PriceRange:  "$55-$65 AUD",
			ABV:         "12.7%",
			Rating:      "96/100",
			MatchReason: "The definitive Clare Valley Riesling for crisp, dry white drinkers",
		},
		{
			Name:        "Shaw + Smith Sauvignon Blanc",
			Type:        "Sauvignon Blanc",
			Region:      "Adelaide Hills, South Australia",
			Vintage:     "2023",
			Description: "Fresh and aromatic with passionfruit, lemongrass and a clean mineral finish. Drink young and cold.",
			PriceRange:  "$25-$30 AUD",
			ABV:         "12.5%",
			Rating:      "91/100",
			MatchReason: "An easy-drinking aromatic white at an everyday price",
		},
	},
	models.StyleSparkling: {
		{
			Name:        "House of Arras Grand Vintage",
			Type:        "Sparkling Chardonnay Pinot Noir",
			Region:      "Tasmania",
			Vintage:     "2014",
			Description: "Traditional-method Tasmanian sparkling with brioche, citrus curd and oyster-shell minerality from long lees ageing.",
			PriceRange:  "$70-$90 AUD",
			ABV:         "12.5%",
			Rating:      "95/100",
			MatchReason: "Australia's answer to vintage Champagne",
		},
		{
			Name:        "Chandon Australia Vintage Brut",
			Type:        "Sparkling Brut",
			Region:      "Yarra Valley, Victoria",
			Vintage:     "2019",
			Description: "Fine persistent bead with green apple, nougat and a dry, refreshing finish. Reliable celebration pour.",
			PriceRange:  "$40-$50 AUD",
			ABV:         "12.5%",
			Rating:      "90/100",
			MatchReason: "Dependable traditional-method sparkling for any occasion",
		},
		{
			Name:        "Jansz Premium Cuvée",
			Type:        "Sparkling Cuvée",
			Region:      "Tasmania",
			Description: "Non-vintage Tasmanian cuvée with strawberry, honeysuckle and a creamy mousse. Great aperitif style.",
			PriceRange:  "$25-$30 AUD",
			ABV:         "12.0%",
			Rating:      "89/100",
			MatchReason: "Affordable Tasmanian fizz that overdelivers",
		},
	},
	models.StyleRose: {
		{
			Name:        "Turkey Flat Rosé",
			Type:        "Grenache Rosé",
			Region:      "Barossa Valley, South Australia",
			Vintage:     "2023",
			Description: "Pale salmon Grenache rosé with wild strawberry, rose petal and a bone-dry savoury finish.",
			PriceRange:  "$20-$25 AUD",
			ABV:         "12.5%",
			Rating:      "90/100",
			MatchReason: "A dry, food-friendly rosé from old Barossa Grenache",
		},
		{
			Name:        "Charles Melton Rose of Virginia",
			Type:        "Grenache Rosé",
			Region:      "Barossa Valley, South Australia",
			Vintage:     "2022",
			Description: "Deeper-hued rosé with raspberry, musk and spice; one of Australia's longest-standing serious rosés.",
			PriceRange:  "$25-$30 AUD",
			ABV:         "13.0%",
			Rating:      "92/100",
			MatchReason: "A richer rosé style with a cult following",
		},
		{
			Name:        "La Prova Aglianico Rosato",
			Type:        "Aglianico Rosato",
			Region:      "Adelaide Hills, South Australia",
			Vintage:     "2023",
			Description: "Italian-variety rosato with sour cherry, blood orange and zesty acidity. Made for warm evenings.",
			PriceRange:  "$22-$28 AUD",
			ABV:         "12.0%",
			Rating:      "89/100",
			MatchReason: "An alternative-variety rosé for the adventurous",
		},
	},
	models.StyleMixed: {
		{
			Name:        "Penfolds Bin 28 Kalimna Shiraz",
			Type:        "Shiraz",
			Region:      "South Australia",
			Vintage:     "2020",
			Description: "Warm-climate Shiraz with ripe plum, dark chocolate and sweet spice, matured in seasoned American oak.",
			PriceRange:  "$40-$50 AUD",
			ABV:         "14.5%",
			Rating:      "93/100",
			MatchReason: "A crowd-pleasing Australian red to start with",
		},
		{
			Name:        "Vasse Felix Filius Chardonnay",
			Type:        "Chardonnay",
			Region:      "Margaret River, Western Australia",
			Vintage:     "2022",
			Description: "Bright Margaret River Chardonnay with nectarine, grapefruit pith and subtle cashew oak.",
			PriceRange:  "$30-$35 AUD",
			ABV:         "13.0%",
			Rating:      "92/100",
			MatchReason: "A polished white from one of Margaret River's founding estates",
		},
		{
			Name:        "Jim Barry The Lodge Hill Riesling",
			Type:        "Riesling",
			Region:      "Clare Valley, South Australia",
			Vintage:     "2023",
			Description: "Vibrant dry Riesling with lime juice, green apple and a chalky, refreshing finish.",
			PriceRange:  "$20-$25 AUD",
			ABV:         "12.0%",
			Rating:      "91/100",
			MatchReason: "A fresh, versatile white for everyday drinking",
		},
	},
}
