package api

import (
	"fmt"
	"net/http"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{ err error }

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) {
	if e.err != nil {
		return nil, e.err
	}
	return nil, fmt.Errorf("boom")
}
