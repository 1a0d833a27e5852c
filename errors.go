package toolgate

import "errors"

type ErrorKind string

const (
	// KindConfiguration: a required setting for the selected transport is
	// missing or unusable. Raised before any network attempt.
	KindConfiguration ErrorKind = "configuration"
	// KindTransport: network or stream failure, non-2xx gateway status, or
	// an undecodable transport response.
	KindTransport ErrorKind = "transport"
	// KindContractMismatch: the response's contract version does not match
	// this client's. Nothing else in the envelope is trusted.
	KindContractMismatch ErrorKind = "contract_mismatch"
	// KindToolFailure: the gateway explicitly reported a tool failure.
	KindToolFailure ErrorKind = "tool_failure"
	// KindMalformedResponse: the gateway reported success but the expected
	// result field is absent.
	KindMalformedResponse ErrorKind = "malformed_response"
)

type Error struct {
	Kind      ErrorKind
	Transport string
	Status    int
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Transport != "" && e.Message != "" {
		return e.Transport + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Cause }

func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfiguration
}

func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

func IsContractMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindContractMismatch
}

func IsToolFailure(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindToolFailure
}

func IsMalformedResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindMalformedResponse
}
