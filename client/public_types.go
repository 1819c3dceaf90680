package client

import "github.com/emansarahafi/Dressly/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	WishlistItemRequest = types.WishlistItemRequest
	QuizAnswers         = types.QuizAnswers

	// Domain entities
	Product = types.Product
	Price   = types.Price
	Image   = types.Image

	// Responses
	MessageResponse  = types.MessageResponse
	WishlistResponse = types.WishlistResponse
	QuizResult       = types.QuizResult
)
