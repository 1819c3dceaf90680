package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/emansarahafi/Dressly/client/internal/types"
)

// AddToWishlist saves a product for the authenticated user. The backend
// answers 200 both for new items and for items already present.
func AddToWishlist(ctx context.Context, httpClient HTTPClient, baseURL string, req types.WishlistItemRequest) (*types.MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateWishlistItem(req); err != nil {
		return nil, err
	}
	if req.Images == nil {
		// the backend rejects "images": null
		req.Images = []types.Image{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(baseURL, "/wishlist"), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Authorization header is added by the transport

	resp, err := do(httpClient, httpReq, "add to wishlist")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := expectStatus(resp, http.StatusOK, "add to wishlist"); err != nil {
		return nil, err
	}

	var msg types.MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListWishlist returns the authenticated user's saved products.
func ListWishlist(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(baseURL, "/wishlist"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := do(httpClient, httpReq, "list wishlist")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := expectStatus(resp, http.StatusOK, "list wishlist"); err != nil {
		return nil, err
	}

	var wr types.WishlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, err
	}
	return wr.Items, nil
}

// RemoveFromWishlist deletes a product by code. A missing item yields an
// error matching ErrNotFound.
func RemoveFromWishlist(ctx context.Context, httpClient HTTPClient, baseURL, productCode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateProductCode(productCode); err != nil {
		return err
	}
	u := endpoint(baseURL, "/wishlist/"+url.PathEscape(productCode))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := do(httpClient, httpReq, "remove from wishlist")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return expectStatus(resp, http.StatusOK, "remove from wishlist")
}
