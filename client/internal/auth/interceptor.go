// Package auth attaches the stored bearer credential to outgoing requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emansarahafi/Dressly/client/store"
)

const (
	// TokenKey is the storage key the credential is read from.
	TokenKey = "token"
	// HeaderName is the request header the credential is written to.
	HeaderName = "Authorization"
	// Scheme prefixes the credential in HeaderName.
	Scheme = "Bearer"
)

// ErrLookup wraps every failure to read the credential.
var ErrLookup = errors.New("credential lookup failed")

// Lookup returns the current credential. ok is false when none is stored.
type Lookup func(ctx context.Context) (token string, ok bool, err error)

// FromStore reads key from s on every call. An empty value counts as absent.
func FromStore(s store.Store, key string) Lookup {
	return func(ctx context.Context) (string, bool, error) {
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			return "", false, err
		}
		if !ok || v == "" {
			return "", false, nil
		}
		return v, true, nil
	}
}

// Static always returns token; an empty token is treated as absent.
func Static(token string) Lookup {
	return func(context.Context) (string, bool, error) {
		return token, token != "", nil
	}
}

// None never returns a credential.
func None() Lookup { return Static("") }

// Outcome describes what Apply did to a request.
type Outcome string

const (
	Attached Outcome = "attached"
	Absent   Outcome = "absent"
	Failed   Outcome = "error"
)

// Interceptor sets the Authorization header from its Lookup.
type Interceptor struct {
	lookup Lookup
}

// NewInterceptor returns an Interceptor reading credentials from lookup.
// A nil lookup never attaches anything.
func NewInterceptor(lookup Lookup) *Interceptor {
	if lookup == nil {
		lookup = None()
	}
	return &Interceptor{lookup: lookup}
}

// Apply reads the credential once and, when present, sets
// "Authorization: Bearer <token>" on h, replacing any previous value.
// A nil h is replaced by a new map holding only that header. When the
// credential is absent or the lookup fails, h is returned untouched.
func (i *Interceptor) Apply(ctx context.Context, h http.Header) (http.Header, Outcome, error) {
	token, ok, err := i.lookup(ctx)
	if err != nil {
		return h, Failed, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	if !ok {
		return h, Absent, nil
	}
	if h == nil {
		h = make(http.Header, 1)
	}
	h.Set(HeaderName, Scheme+" "+token)
	return h, Attached, nil
}
