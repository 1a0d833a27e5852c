package toolgate

import "encoding/json"

// ContractVersion is the frozen handshake between this client and the Tool
// Gateway. Both request and response envelopes must carry it verbatim.
const ContractVersion = "v1"

// RequestEnvelope is the versioned wrapper sent to the gateway. Identity
// fields are nullable and serialize as JSON null when absent, which is what
// the gateway expects.
type RequestEnvelope struct {
	ContractVersion string         `json:"contract_version"`
	ToolName        string         `json:"tool_name"`
	Input           map[string]any `json:"input"`
	TenantID        *string        `json:"tenant_id"`
	UserID          *string        `json:"user_id"`
	CorrelationID   *string        `json:"correlation_id"`
}

// ResponseEnvelope is the versioned wrapper returned by the gateway. Output
// values stay raw so result fields are handed back to callers byte-for-byte.
type ResponseEnvelope struct {
	ContractVersion string                     `json:"contract_version"`
	OK              bool                       `json:"ok"`
	Output          map[string]json.RawMessage `json:"output"`
	Error           *EnvelopeError             `json:"error"`
}

type EnvelopeError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ToolDef describes a remote tool: its gateway name, the field of the output
// object that carries its result, and an optional JSON Schema its input must
// satisfy before anything goes on the wire.
type ToolDef struct {
	Name        string
	ResultField string
	InputSchema Schema
}

type Schema struct {
	JSON json.RawMessage
}

func JSONSchema(b []byte) Schema {
	return Schema{JSON: b}
}

// SearchKBTool is the knowledge-base search tool exposed by the gateway.
var SearchKBTool = ToolDef{
	Name:        "search_kb",
	ResultField: "results",
	InputSchema: JSONSchema([]byte(`{"type":"object","properties":{"query":{"type":"string","minLength":1}},"required":["query"],"additionalProperties":false}`)),
}

// Identity is the optional caller context propagated into every request
// envelope. Nil fields serialize as null.
type Identity struct {
	TenantID      *string
	UserID        *string
	CorrelationID *string
}

func (id Identity) merge(over Identity) Identity {
	out := id
	if over.TenantID != nil {
		out.TenantID = over.TenantID
	}
	if over.UserID != nil {
		out.UserID = over.UserID
	}
	if over.CorrelationID != nil {
		out.CorrelationID = over.CorrelationID
	}
	return out
}
