// Package agentcore carries request envelopes to a Tool Gateway hosted as a
// Bedrock AgentCore runtime, via the InvokeAgentRuntime streaming API.
package agentcore

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"

	"github.com/bindery-dev/toolgate/internal/transport"
)

const Mode = "agentcore"

const (
	DefaultQualifier = "DEFAULT"
	DefaultRegion    = "us-east-1"

	// InvokeAgentRuntime has no documented bound on the stream read, so
	// the whole invoke is capped here unless the caller overrides it.
	defaultInvokeTimeout = 60 * time.Second
)

// invokeAPI is the slice of the AgentCore data-plane client used here.
type invokeAPI interface {
	InvokeAgentRuntime(ctx context.Context, params *bedrockagentcore.InvokeAgentRuntimeInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.InvokeAgentRuntimeOutput, error)
}

type Runtime struct {
	arn           string
	qualifier     string
	region        string
	invokeTimeout time.Duration

	// The SDK client is built on first use so that constructing the
	// transport never touches credential providers.
	api      invokeAPI
	initOnce sync.Once
	initErr  error
}

func New(s transport.Settings) (transport.Transport, error) {
	if s.RuntimeARN == "" {
		return nil, transport.ConfigError(Mode, "runtime ARN is required in agentcore mode")
	}

	qualifier := s.Qualifier
	if qualifier == "" {
		qualifier = DefaultQualifier
	}
	region := s.Region
	if region == "" {
		region = DefaultRegion
	}
	invokeTimeout := s.InvokeTimeout
	if invokeTimeout <= 0 {
		invokeTimeout = defaultInvokeTimeout
	}

	return &Runtime{
		arn:           s.RuntimeARN,
		qualifier:     qualifier,
		region:        region,
		invokeTimeout: invokeTimeout,
	}, nil
}

func (r *Runtime) Name() string { return Mode }

func (r *Runtime) Invoke(ctx context.Context, payload []byte) (json.RawMessage, error) {
	if r.arn == "" {
		return nil, transport.ConfigError(Mode, "runtime ARN is required in agentcore mode")
	}

	api, err := r.ensureAPI(ctx)
	if err != nil {
		return nil, transport.ConfigError(Mode, "load AWS config: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, r.invokeTimeout)
	defer cancel()

	out, err := api.InvokeAgentRuntime(ctx, &bedrockagentcore.InvokeAgentRuntimeInput{
		AgentRuntimeArn:  aws.String(r.arn),
		RuntimeSessionId: aws.String(NewSessionID()),
		Qualifier:        aws.String(r.qualifier),
		ContentType:      aws.String("application/json"),
		Payload:          payload,
	})
	if err != nil {
		return nil, &transport.Error{Transport: Mode, Code: "invoke_error", Message: err.Error(), Cause: err}
	}
	if out == nil || out.Response == nil {
		return nil, &transport.Error{Transport: Mode, Code: "invoke_error", Message: "runtime returned an empty response stream"}
	}
	defer out.Response.Close()

	body, err := io.ReadAll(out.Response)
	if err != nil {
		return nil, &transport.Error{Transport: Mode, Code: "stream_error", Message: err.Error(), Cause: err}
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &transport.Error{Transport: Mode, Code: "decode_error", Message: err.Error(), Cause: err}
	}

	return json.RawMessage(body), nil
}

func (r *Runtime) ensureAPI(ctx context.Context) (invokeAPI, error) {
	r.initOnce.Do(func() {
		if r.api != nil {
			return
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(r.region))
		if err != nil {
			r.initErr = err
			return
		}
		r.api = bedrockagentcore.NewFromConfig(cfg)
	})
	if r.initErr != nil {
		return nil, r.initErr
	}
	return r.api, nil
}
