package client

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/emansarahafi/Dressly/client/internal/api"
	"github.com/emansarahafi/Dressly/client/internal/auth"
	"github.com/emansarahafi/Dressly/client/store"
	"github.com/emansarahafi/Dressly/internal/config"
)

// DefaultBaseURL is used when no base URL override is configured.
const DefaultBaseURL = config.DefaultAPIURL

// TokenKey is the storage key holding the bearer credential.
const TokenKey = auth.TokenKey

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a configured HTTP client for the Dressly API. The base URL is
// fixed at construction. Every request issued through R or HTTPClient reads
// the stored credential first and, when one exists, carries
// "Authorization: Bearer <token>".
//
// A Client is safe for concurrent use and has no teardown.
type Client struct {
	baseURL string
	lookup  auth.Lookup
	ic      *auth.Interceptor

	http *http.Client
	rest *resty.Client
}

// New constructs a Client. Without WithBaseURL (or with an empty one) the
// base URL is DefaultBaseURL. Without WithTokenStore or WithTokenLookup no
// credential is ever attached.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	c.baseURL = config.ResolveAPIURL(c.baseURL)
	c.ic = auth.NewInterceptor(c.lookup)

	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	// resty shares the base transport; the interceptor runs as a request
	// middleware there instead of a transport wrapper.
	c.rest = resty.NewWithClient(&http.Client{Transport: base, Timeout: c.http.Timeout}).
		SetBaseURL(c.baseURL).
		SetLogger(restyLogger{}).
		OnBeforeRequest(c.beforeRequest)

	c.http.Transport = &bearerTransport{base: base, apply: c.intercept}

	return c
}

// NewFromEnv builds a Client from DRESSLY_* environment variables: the API
// URL override, the token file backing the credential store, the HTTP
// timeout and debug logging. Options given here are applied last.
func NewFromEnv(opts ...Option) *Client {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("invalid client configuration, using defaults")
		cfg = &config.Config{APIURL: os.Getenv("DRESSLY_API_URL")}
		cfg.ResolveDefaults()
	}

	base := []Option{
		WithBaseURL(cfg.APIURL),
		WithTokenStore(store.NewFileStore(cfg.TokenFile)),
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
	}
	return New(append(base, opts...)...)
}

var defaultClient = sync.OnceValue(func() *Client { return NewFromEnv() })

// Default returns the process-wide Client built from the environment on
// first use.
func Default() *Client { return defaultClient() }

// BaseURL returns the base URL every relative request path resolves against.
func (c *Client) BaseURL() string { return c.baseURL }

// Resolve joins path onto the base URL. Absolute URLs are returned unchanged.
func (c *Client) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// R starts a request on the shared resty client. Relative URLs resolve
// against BaseURL.
func (c *Client) R() *resty.Request { return c.rest.R() }

// HTTPClient returns the net/http client used by the typed endpoints. Its
// transport attaches the credential before every round trip.
func (c *Client) HTTPClient() *http.Client { return c.http }

func (c *Client) beforeRequest(_ *resty.Client, r *resty.Request) error {
	h, err := c.intercept(r.Context(), r.Header)
	if err != nil {
		return err
	}
	r.Header = h
	return nil
}

func (c *Client) intercept(ctx context.Context, h http.Header) (http.Header, error) {
	h, outcome, err := c.ic.Apply(ctx, h)
	credentialsTotal.WithLabelValues(string(outcome)).Inc()
	if err != nil {
		log.Error().Err(err).Msg("credential lookup failed, request not sent")
		return h, err
	}
	return h, nil
}

// --------------------------------------------------------------------
// Wishlist operations - delegated to internal/api
// --------------------------------------------------------------------

// AddToWishlist saves a product for the authenticated user.
func (c *Client) AddToWishlist(ctx context.Context, req WishlistItemRequest) (*MessageResponse, error) {
	return api.AddToWishlist(ctx, c.http, c.baseURL, req)
}

// ListWishlist returns the authenticated user's saved products.
func (c *Client) ListWishlist(ctx context.Context) ([]Product, error) {
	return api.ListWishlist(ctx, c.http, c.baseURL)
}

// RemoveFromWishlist deletes a saved product by code.
func (c *Client) RemoveFromWishlist(ctx context.Context, productCode string) error {
	return api.RemoveFromWishlist(ctx, c.http, c.baseURL, productCode)
}

// --------------------------------------------------------------------
// Quiz operations - delegated to internal/api
// --------------------------------------------------------------------

// SubmitQuiz posts quiz answers and returns the style recommendation.
func (c *Client) SubmitQuiz(ctx context.Context, answers QuizAnswers) (*QuizResult, error) {
	return api.SubmitQuiz(ctx, c.http, c.baseURL, answers)
}
