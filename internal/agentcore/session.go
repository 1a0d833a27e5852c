package agentcore

import (
	"strings"

	"github.com/google/uuid"
)

const sessionPrefix = "session-"

// NewSessionID returns a fresh runtime session identifier. The hosted
// runtime rejects session ids shorter than 33 characters; the prefix plus
// 32 hex characters of a v4 UUID is always 40.
func NewSessionID() string {
	return sessionPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
