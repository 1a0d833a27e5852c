package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Transport carries one serialized request envelope to the Tool Gateway and
// returns the raw JSON body of the gateway's response. Implementations
// perform exactly one outbound call per Invoke and keep no state between
// calls.
type Transport interface {
	Name() string
	Invoke(ctx context.Context, payload []byte) (json.RawMessage, error)
}

// Settings is the transport-facing slice of the client configuration.
// Each factory reads only the fields relevant to its transport.
type Settings struct {
	// HTTP transport.
	BaseURL     string
	HTTPTimeout time.Duration
	HTTPClient  *http.Client

	// Hosted-runtime transport.
	RuntimeARN    string
	Qualifier     string
	Region        string
	InvokeTimeout time.Duration
}

// Factory builds a transport from settings. Factories must not perform
// network activity; configuration problems they can detect up front are
// returned as errors.
type Factory func(Settings) (Transport, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

func (r *Registry) Register(mode string, f Factory) error {
	if mode == "" {
		return fmt.Errorf("transport mode is required")
	}
	if f == nil {
		return fmt.Errorf("transport factory for %q is nil", mode)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[mode]; exists {
		return fmt.Errorf("transport %q already registered", mode)
	}

	r.factories[mode] = f
	return nil
}

func (r *Registry) Get(mode string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[mode]
	return f, ok
}

var defaultRegistry = NewRegistry()

func Register(mode string, f Factory) error {
	return defaultRegistry.Register(mode, f)
}

func Get(mode string) (Factory, bool) {
	return defaultRegistry.Get(mode)
}
