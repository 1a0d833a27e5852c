package transport

import "fmt"

type Error struct {
	Transport string
	Code      string
	Status    int
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Transport != "" && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Transport, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Transport != "" {
		return fmt.Sprintf("%s: error", e.Transport)
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }

// ConfigError marks a missing or unusable setting detected before any
// network attempt.
func ConfigError(transport, msg string) *Error {
	return &Error{Transport: transport, Code: "config_error", Message: msg}
}
