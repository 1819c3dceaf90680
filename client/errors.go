package client

import (
	"errors"

	"github.com/emansarahafi/Dressly/client/internal/auth"
	clienterrors "github.com/emansarahafi/Dressly/client/internal/errors"
)

// ErrTokenLookup is returned, wrapped, when the credential store cannot be
// read. The request is not sent in that case.
var ErrTokenLookup = auth.ErrLookup

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrUnauthorized = clienterrors.ErrUnauthorized
	ErrNotFound     = clienterrors.ErrNotFound
)

// APIError describes a non-success response or a transport failure.
type APIError = clienterrors.ClassifiedError

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
