package toolgate

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bindery-dev/toolgate/internal/agentcore"
	"github.com/bindery-dev/toolgate/internal/httpgw"
)

const (
	DefaultBaseURL     = "http://localhost:8080"
	DefaultHTTPTimeout = 20 * time.Second
)

type Config struct {
	// Mode selects the transport: httpgw.Mode (default) or agentcore.Mode.
	Mode string

	// HTTP transport.
	BaseURL     string
	HTTPTimeout time.Duration
	HTTPClient  *http.Client

	// Hosted-runtime transport.
	RuntimeARN    string
	Qualifier     string
	Region        string
	InvokeTimeout time.Duration

	// Identity is attached to every request envelope unless overridden
	// per call.
	Identity Identity
}

func normalizeConfig(cfg Config) Config {
	if cfg.Mode == "" {
		cfg.Mode = httpgw.Mode
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.Qualifier == "" {
		cfg.Qualifier = agentcore.DefaultQualifier
	}
	if cfg.Region == "" {
		cfg.Region = agentcore.DefaultRegion
	}
	return cfg
}

// ConfigFromEnv builds a Config from the TOOL_GATEWAY_* environment,
// matching the variables the gateway's other clients use.
func ConfigFromEnv() Config {
	return Config{
		Mode:       os.Getenv("TOOL_GATEWAY_MODE"),
		BaseURL:    os.Getenv("TOOL_GATEWAY_URL"),
		RuntimeARN: os.Getenv("TOOL_GATEWAY_RUNTIME_ARN"),
		Qualifier:  os.Getenv("TOOL_GATEWAY_QUALIFIER"),
		Region:     regionFromEnv(),
		Identity: Identity{
			TenantID:      envString("TENANT_ID"),
			UserID:        envString("USER_ID"),
			CorrelationID: envString("CORRELATION_ID"),
		},
	}
}

func regionFromEnv() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return os.Getenv("AWS_DEFAULT_REGION")
}

func envString(key string) *string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}
