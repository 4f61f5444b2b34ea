package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/viant/resilient/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/resilient/executor"

// Executor runs request specs with retry; it holds no per-call state and is safe for concurrent use
type Executor struct {
	transport  Transport
	maxRetries int
	sleep      Sleeper
	logger     logger.Logger
	tracer     trace.Tracer
}

// Execute runs spec and returns the response body.
func (e *Executor) Execute(ctx context.Context, spec *RequestSpec, options ...ExecuteOption) ([]byte, error) {
	c := &call{maxRetries: e.maxRetries}
	for _, opt := range options {
		opt(c)
	}
	request, err := spec.build()
	if err != nil {
		return nil, err
	}
	ctx, span := e.tracer.Start(ctx, "executor.Execute", trace.WithAttributes(
		attribute.String("http.request.method", request.Method),
		attribute.String("url.full", request.URL.String()),
	))
	defer span.End()

	state := &retryState{maxAttempts: c.maxRetries + 1}
	data, err := e.execute(ctx, request, state)
	span.SetAttributes(attribute.Int("retry.attempts", state.attempt))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return data, nil
}

func (e *Executor) execute(ctx context.Context, request *http.Request, state *retryState) ([]byte, error) {
	for {
		data, err := e.attempt(ctx, request)
		state.next()
		if err == nil {
			return data, nil
		}
		if !IsRetryable(err) || state.exhausted() {
			return nil, err
		}
		delay := Delay(state.attempt - 1)
		e.logger.Warning(ctx, fmt.Sprintf("attempt %d/%d for %v failed: %v, retrying in %v", state.attempt, state.maxAttempts, request.URL, err, delay))
		if err = e.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func (e *Executor) attempt(ctx context.Context, request *http.Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	response, err := e.transport.Send(ctx, request.Clone(ctx))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if IsConnectivity(err) {
			return nil, &ConnectivityError{Err: err}
		}
		return nil, err
	}
	if response.StatusCode < http.StatusOK || response.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: response.StatusCode}
	}
	return response.Body, nil
}

// Fetch retrieves raw bytes with GET
func (e *Executor) Fetch(ctx context.Context, URL string) ([]byte, error) {
	return e.Execute(ctx, &RequestSpec{Method: MethodGet, URL: URL})
}

// Decode unmarshals JSON data into target
func (e *Executor) Decode(data []byte, target interface{}) error {
	if err := json.Unmarshal(data, target); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// ExecuteJSON runs spec and decodes the body into T
func ExecuteJSON[T any](ctx context.Context, e *Executor, spec *RequestSpec, options ...ExecuteOption) (*T, error) {
	data, err := e.Execute(ctx, spec, options...)
	if err != nil {
		return nil, err
	}
	ret := new(T)
	if err = e.Decode(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// New creates an executor, by default with NewHTTPTransport and DefaultMaxRetries
func New(options ...Option) *Executor {
	ret := &Executor{
		maxRetries: DefaultMaxRetries,
		sleep:      sleep,
		logger:     logger.Nop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.transport == nil {
		ret.transport = NewHTTPTransport()
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer(tracerName)
	}
	return ret
}
