// Package toolgate is a client for the Tool Gateway's versioned invoke
// contract. It reaches the gateway either directly over HTTP or through the
// gateway's Bedrock AgentCore hosted runtime; callers see the same call
// surface either way.
package toolgate

import (
	"fmt"

	"github.com/bindery-dev/toolgate/internal/agentcore"
	"github.com/bindery-dev/toolgate/internal/httpgw"
	"github.com/bindery-dev/toolgate/internal/transport"
)

func init() {
	// Registration failures here mean duplicate modes, which is a
	// programming error.
	if err := transport.Register(httpgw.Mode, httpgw.New); err != nil {
		panic(err)
	}
	if err := transport.Register(agentcore.Mode, agentcore.New); err != nil {
		panic(err)
	}
}

type Client struct {
	cfg       Config
	transport transport.Transport
}

// New builds a client for the configured transport mode. Missing settings
// the selected transport requires are reported here, before any call is
// made.
func New(cfg Config) (*Client, error) {
	cfg = normalizeConfig(cfg)

	factory, ok := transport.Get(cfg.Mode)
	if !ok {
		return nil, &Error{
			Kind:    KindConfiguration,
			Message: fmt.Sprintf("unknown transport mode %q", cfg.Mode),
		}
	}

	t, err := factory(transport.Settings{
		BaseURL:       cfg.BaseURL,
		HTTPTimeout:   cfg.HTTPTimeout,
		HTTPClient:    cfg.HTTPClient,
		RuntimeARN:    cfg.RuntimeARN,
		Qualifier:     cfg.Qualifier,
		Region:        cfg.Region,
		InvokeTimeout: cfg.InvokeTimeout,
	})
	if err != nil {
		return nil, mapTransportError(err)
	}

	return &Client{cfg: cfg, transport: t}, nil
}

// FromEnv builds a client from the TOOL_GATEWAY_* environment.
func FromEnv() (*Client, error) {
	return New(ConfigFromEnv())
}

// Transport reports the active transport mode.
func (c *Client) Transport() string {
	return c.transport.Name()
}
