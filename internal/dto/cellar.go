package dto

type AddCellarEntryRequest struct {
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type" validate:"required"`
	Region     string `json:"region"`
	Vintage    string `json:"vintage"`
	PriceRange string `json:"priceRange"`
	ABV        string `json:"abv"`
	Rating     string `json:"rating"`
	Notes      string `json:"notes"`
}

type CellarEntryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Region     string `json:"region"`
	Vintage    string `json:"vintage,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	ABV        string `json:"abv,omitempty"`
	Rating     string `json:"rating,omitempty"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}
