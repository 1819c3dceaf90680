package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Price carries the formatted price variants the backend accepts. Catalog
// responses use different keys depending on the source.
type Price struct {
	FormattedPrice string `json:"formattedPrice,omitempty"`
	FormattedValue string `json:"formattedValue,omitempty"`
	Formatted      string `json:"formatted,omitempty"`
	CurrencyIso    string `json:"currencyIso,omitempty"`
}

// Display returns the first non-empty formatted value.
func (p Price) Display() string {
	switch {
	case p.FormattedPrice != "":
		return p.FormattedPrice
	case p.FormattedValue != "":
		return p.FormattedValue
	default:
		return p.Formatted
	}
}

// Image is a product image reference.
type Image struct {
	URL      string `json:"url,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Src      string `json:"src,omitempty"`
}

// Link returns the first non-empty image location.
func (i Image) Link() string {
	switch {
	case i.URL != "":
		return i.URL
	case i.ImageURL != "":
		return i.ImageURL
	default:
		return i.Src
	}
}

// Product is a catalog item as returned by wishlist and quiz endpoints.
type Product struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Price  Price   `json:"price"`
	Images []Image `json:"images"`
}
