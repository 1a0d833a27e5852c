package toolgate

import (
	"errors"

	"github.com/bindery-dev/toolgate/internal/transport"
)

func mapTransportError(err error) error {
	if err == nil {
		return nil
	}
	var te *transport.Error
	if errors.As(err, &te) {
		kind := KindTransport
		if te.Code == "config_error" {
			kind = KindConfiguration
		}
		return &Error{
			Kind:      kind,
			Transport: te.Transport,
			Status:    te.Status,
			Message:   te.Message,
			Cause:     te.Cause,
		}
	}
	return err
}
