package client

import (
	"context"
	"net/http"
)

// bearerTransport runs the credential interceptor on a clone of each request
// before handing it to base.
type bearerTransport struct {
	base  http.RoundTripper
	apply func(context.Context, http.Header) (http.Header, error)
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	h, err := t.apply(req.Context(), cloned.Header)
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	cloned.Header = h
	return t.base.RoundTrip(cloned)
}
