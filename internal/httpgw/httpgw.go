// Package httpgw carries request envelopes to a directly reachable Tool
// Gateway over HTTP.
package httpgw

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bindery-dev/toolgate/internal/httpx"
	"github.com/bindery-dev/toolgate/internal/transport"
)

const Mode = "http"

const invokePath = "/tools/invoke"

const defaultTimeout = 20 * time.Second

type Gateway struct {
	baseURL string
	client  *http.Client
}

func New(s transport.Settings) (transport.Transport, error) {
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		return nil, transport.ConfigError(Mode, "gateway base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, transport.ConfigError(Mode, "invalid gateway base URL: "+err.Error())
	}

	client := s.HTTPClient
	if client == nil {
		timeout := s.HTTPTimeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Gateway{baseURL: base, client: client}, nil
}

func (g *Gateway) Name() string { return Mode }

func (g *Gateway) Invoke(ctx context.Context, payload []byte) (json.RawMessage, error) {
	resp, err := httpx.DoJSON(ctx, g.client, http.MethodPost, g.baseURL+invokePath, payload, nil)
	if err != nil {
		return nil, &transport.Error{Transport: Mode, Code: classifyNetworkErr(err), Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &transport.Error{Transport: Mode, Code: "read_error", Status: resp.StatusCode, Message: err.Error(), Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &transport.Error{
			Transport: Mode,
			Code:      "http_error",
			Status:    resp.StatusCode,
			Message:   "gateway returned " + resp.Status,
		}
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &transport.Error{Transport: Mode, Code: "decode_error", Status: resp.StatusCode, Message: err.Error(), Cause: err}
	}

	return json.RawMessage(body), nil
}

func classifyNetworkErr(err error) string {
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	return "network_error"
}
