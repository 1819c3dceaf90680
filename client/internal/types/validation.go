package types

import (
	"fmt"
	"strings"
)

// ValidateProductCode rejects codes that cannot address a wishlist entry.
func ValidateProductCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("product code is required")
	}
	return nil
}

// ValidateWishlistItem checks the fields the backend requires.
func ValidateWishlistItem(req WishlistItemRequest) error {
	if err := ValidateProductCode(req.Code); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	return nil
}
