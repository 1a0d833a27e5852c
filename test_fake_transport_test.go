package toolgate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bindery-dev/toolgate/internal/transport"
)

type fakeTransport struct {
	mu sync.Mutex

	payloads [][]byte

	invoke func(call int, payload []byte) (json.RawMessage, error)
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Invoke(ctx context.Context, payload []byte) (json.RawMessage, error) {
	_ = ctx
	f.mu.Lock()
	f.payloads = append(f.payloads, append([]byte(nil), payload...))
	call := len(f.payloads) - 1
	fn := f.invoke
	f.mu.Unlock()
	if fn == nil {
		return nil, fmt.Errorf("fakeTransport.Invoke not configured")
	}
	return fn(call, payload)
}

func (f *fakeTransport) Payloads() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.payloads))
	copy(out, f.payloads)
	return out
}

// respond configures the fake to return the same raw body for every call.
func (f *fakeTransport) respond(body string) {
	f.invoke = func(call int, payload []byte) (json.RawMessage, error) {
		_ = call
		_ = payload
		return json.RawMessage(body), nil
	}
}

func registerFakeTransport(t *testing.T, ft transport.Transport) string {
	t.Helper()
	mode := "fake_" + strings.ToLower(strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	err := transport.Register(mode, func(transport.Settings) (transport.Transport, error) {
		return ft, nil
	})
	if err != nil {
		t.Fatalf("register transport: %v", err)
	}
	return mode
}

func newFakeClient(t *testing.T, ft *fakeTransport) *Client {
	t.Helper()
	mode := registerFakeTransport(t, ft)
	c, err := New(Config{Mode: mode})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
