package toolgate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type InvokeRequest struct {
	Tool  ToolDef
	Input map[string]any

	// Identity overrides the client's configured identity for this call.
	// Nil fields keep the configured value.
	Identity Identity

	// Timeout bounds the whole call. Zero means the transport's own bound
	// is the only limit.
	Timeout time.Duration
}

// InvokeTool runs the full build/dispatch/validate pipeline for one tool
// call and returns the tool's result field verbatim. Each call is
// single-shot: nothing is retried and no state survives the call.
func (c *Client) InvokeTool(ctx context.Context, req InvokeRequest) (json.RawMessage, error) {
	env, err := buildEnvelope(req.Tool, req.Input, c.cfg.Identity.merge(req.Identity))
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}

	ctx, cancel := applyTimeout(ctx, req.Timeout)
	defer cancel()

	raw, err := c.transport.Invoke(ctx, payload)
	if err != nil {
		return nil, mapTransportError(err)
	}

	respEnv, err := decodeEnvelope(c.transport.Name(), raw)
	if err != nil {
		return nil, err
	}

	return validateEnvelope(req.Tool, respEnv)
}

// SearchKB queries the gateway's knowledge-base search tool and returns its
// result records in gateway order.
func (c *Client) SearchKB(ctx context.Context, query string) ([]map[string]any, error) {
	raw, err := c.InvokeTool(ctx, InvokeRequest{
		Tool:  SearchKBTool,
		Input: map[string]any{"query": query},
	})
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("malformed tool response: %q is not an array of records", SearchKBTool.ResultField),
			Cause:   err,
		}
	}
	return results, nil
}
