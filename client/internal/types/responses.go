package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// MessageResponse is the acknowledgement body of mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// WishlistResponse wraps the wishlist listing.
type WishlistResponse struct {
	Items []Product `json:"items"`
}

// QuizResult is the style recommendation produced for a quiz submission.
type QuizResult struct {
	Status             string      `json:"status"`
	Input              QuizAnswers `json:"input,omitempty"`
	Recommendation     string      `json:"recommendation"`
	Products           []Product   `json:"products"`
	CategoriesSearched []string    `json:"categories_searched,omitempty"`
}

// ErrorResponse is the error body produced by the backend framework. Detail
// is a string for handled errors and a list of field errors for rejected
// request bodies.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// Message flattens Detail into one line.
func (r ErrorResponse) Message() string {
	switch d := r.Detail.(type) {
	case nil:
		return ""
	case string:
		return d
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
