package client

// This file defines functional options that configure the Client during
// construction.

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emansarahafi/Dressly/client/internal/auth"
	"github.com/emansarahafi/Dressly/client/store"
)

// Option configures a Client during construction in New.
//
// Options are applied before the credential transport wrapper is installed,
// so transport-related options (WithTransport, WithDebugLogging) end up
// underneath it. Later options win.
type Option func(*Client) error

// WithBaseURL sets the base URL verbatim. An empty value keeps DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		c.baseURL = baseURL
		return nil
	}
}

// WithTokenStore reads the credential from s under TokenKey on every request.
func WithTokenStore(s store.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("token store must not be nil")
		}
		c.lookup = auth.FromStore(s, auth.TokenKey)
		return nil
	}
}

// WithTokenLookup installs a custom credential lookup. The function is called
// once per request; returning ok=false leaves the request unauthenticated and
// returning an error aborts it.
func WithTokenLookup(lookup func(ctx context.Context) (token string, ok bool, err error)) Option {
	return func(c *Client) error {
		if lookup == nil {
			return fmt.Errorf("token lookup must not be nil")
		}
		c.lookup = auth.Lookup(lookup)
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithTransport replaces the base transport requests are sent through. Debug
// logging enabled by an earlier option stays in front of rt.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport must not be nil")
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			c.http.Transport = &debugTransport{base: rt}
			return nil
		}
		c.http.Transport = rt
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. The Authorization value is redacted.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, ok := c.http.Transport.(*debugTransport); !ok {
				c.http.Transport = &debugTransport{base: c.http.Transport}
			}
		}
		return nil
	}
}
