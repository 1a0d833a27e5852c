package httpx

import (
	"bytes"
	"context"
	"net/http"
)

// Do sends a single HTTP request with a buffered body. There is no retry:
// the gateway contract is single-shot and callers surface every failure.
// Callers must close the returned response body.
func Do(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header = headers.Clone()

	return client.Do(req)
}

// DoJSON is Do with JSON content negotiation headers applied.
func DoJSON(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	h := headers.Clone()
	if h == nil {
		h = make(http.Header)
	}
	if h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	if h.Get("Accept") == "" {
		h.Set("Accept", "application/json")
	}
	return Do(ctx, client, method, url, body, h)
}
