package toolgate

import (
	"encoding/json"
	"fmt"
)

const toolFailureFallback = "Tool call failed"

func buildEnvelope(tool ToolDef, input map[string]any, id Identity) (RequestEnvelope, error) {
	if tool.Name == "" {
		return RequestEnvelope{}, fmt.Errorf("tool name is required")
	}
	if input == nil {
		input = map[string]any{}
	}
	if err := validateToolInput(tool, input); err != nil {
		return RequestEnvelope{}, fmt.Errorf("invalid input for %s: %w", tool.Name, err)
	}
	return RequestEnvelope{
		ContractVersion: ContractVersion,
		ToolName:        tool.Name,
		Input:           input,
		TenantID:        id.TenantID,
		UserID:          id.UserID,
		CorrelationID:   id.CorrelationID,
	}, nil
}

// validateEnvelope checks a decoded response envelope and extracts the
// tool's result field. The order is fixed: an untrusted contract version
// means no other field can be trusted, so it is checked first even when the
// envelope otherwise looks like a clean success or a tool failure.
func validateEnvelope(tool ToolDef, env ResponseEnvelope) (json.RawMessage, error) {
	if env.ContractVersion != ContractVersion {
		return nil, &Error{
			Kind:    KindContractMismatch,
			Message: fmt.Sprintf("gateway contract version mismatch: got %q, want %q", env.ContractVersion, ContractVersion),
		}
	}

	if !env.OK {
		msg := toolFailureFallback
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return nil, &Error{Kind: KindToolFailure, Message: msg}
	}

	result, ok := env.Output[tool.ResultField]
	if !ok {
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("malformed tool response: missing %q", tool.ResultField),
		}
	}

	return result, nil
}

func decodeEnvelope(transportName string, raw json.RawMessage) (ResponseEnvelope, error) {
	var env ResponseEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ResponseEnvelope{}, &Error{
			Kind:      KindTransport,
			Transport: transportName,
			Message:   "undecodable response envelope: " + err.Error(),
			Cause:     err,
		}
	}
	return env, nil
}
