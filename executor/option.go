package executor

import (
	"github.com/viant/resilient/logger"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxRetries is the retry budget used when none is configured
const DefaultMaxRetries = 3

// Option represents executor option
type Option func(e *Executor)

// WithTransport sets transport provider
func WithTransport(transport Transport) Option {
	return func(e *Executor) {
		e.transport = transport
	}
}

// WithMaxRetries sets default retry budget, negative values are ignored
func WithMaxRetries(maxRetries int) Option {
	return func(e *Executor) {
		if maxRetries >= 0 {
			e.maxRetries = maxRetries
		}
	}
}

// WithSleeper sets backoff sleeper
func WithSleeper(sleeper Sleeper) Option {
	return func(e *Executor) {
		e.sleep = sleeper
	}
}

// WithLogger sets logger
func WithLogger(log logger.Logger) Option {
	return func(e *Executor) {
		e.logger = log
	}
}

// WithTracer sets tracer
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Executor) {
		e.tracer = tracer
	}
}

// ExecuteOption overrides executor defaults for a single call
type ExecuteOption func(c *call)

type call struct {
	maxRetries int
}

// Retries overrides retry budget for a call
func Retries(maxRetries int) ExecuteOption {
	return func(c *call) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
	}
}
