package toolgate

import (
	"context"
	"time"
)

// applyTimeout bounds one gateway call. Zero or negative means no extra
// bound beyond what the transport itself enforces.
func applyTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
