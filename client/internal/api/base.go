package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/emansarahafi/Dressly/client/internal/auth"
	clienterrors "github.com/emansarahafi/Dressly/client/internal/errors"
	"github.com/emansarahafi/Dressly/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxErrorBody bounds how much of a failed response is kept for debugging.
const maxErrorBody = 4 << 10

// endpoint joins baseURL and path with exactly one slash.
func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// do sends req and classifies transport failures. Credential lookup failures
// are returned unchanged so callers can match auth.ErrLookup.
func do(httpClient HTTPClient, req *http.Request, operation string) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, auth.ErrLookup) {
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
		return nil, clienterrors.NewNetworkError(operation, err)
	}
	return resp, nil
}

// expectStatus returns a classified error when resp.StatusCode != want.
func expectStatus(resp *http.Response, want int, operation string) error {
	if resp.StatusCode == want {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var er types.ErrorResponse
	_ = json.Unmarshal(body, &er)
	return clienterrors.NewHTTPError(resp.StatusCode, string(body), er.Message(), operation)
}
