package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// debugTransport logs each request and response with zerolog at debug level.
//
// Enable with DRESSLY_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// Bodies are logged in full; the Authorization value is replaced by its
// scheme and a placeholder. Do not enable in production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := dumpRequestRedacted(req); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// dumpRequestRedacted dumps req with the credential masked. req is restored
// before returning.
func dumpRequestRedacted(req *http.Request) ([]byte, error) {
	saved, had := req.Header["Authorization"]
	if had {
		req.Header["Authorization"] = []string{redact(req.Header.Get("Authorization"))}
		defer func() { req.Header["Authorization"] = saved }()
	}
	return httputil.DumpRequestOut(req, true)
}

func redact(v string) string {
	if scheme, _, ok := strings.Cut(v, " "); ok {
		return scheme + " [REDACTED]"
	}
	return "[REDACTED]"
}

// debugLoggingRequested reports whether DRESSLY_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("DRESSLY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
