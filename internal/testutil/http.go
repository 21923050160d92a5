package testutil

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripperFunc adapts a function into an http.RoundTripper so tests can
// stub upstream responses without a live server.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// StubClient returns an *http.Client whose transport is the given function.
func StubClient(fn RoundTripperFunc) *http.Client {
	return &http.Client{Transport: fn}
}

// JSONResponse builds an *http.Response carrying the given body.
func JSONResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

// RouteClient dispatches by URL path so a single stub can serve several
// endpoints. Unmatched paths return 404.
func RouteClient(routes map[string]string) *http.Client {
	return StubClient(func(req *http.Request) (*http.Response, error) {
		if body, ok := routes[req.URL.Path]; ok {
			return JSONResponse(http.StatusOK, body), nil
		}
		return JSONResponse(http.StatusNotFound, `{"message":"not found"}`), nil
	})
}
