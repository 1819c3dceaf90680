package types

// ------------------------------
// Request Types
// ------------------------------

// WishlistItemRequest adds a product to the caller's wishlist.
type WishlistItemRequest struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Price  Price   `json:"price"`
	Images []Image `json:"images"`
}

// QuizAnswers holds the style quiz answers. The backend owns the schema, so
// the client passes them through untouched.
type QuizAnswers map[string]any
