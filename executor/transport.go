package executor

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultRequestTimeout bounds connecting and waiting for response headers
	DefaultRequestTimeout = 30 * time.Second
	// DefaultResourceTimeout bounds the whole exchange including body transfer
	DefaultResourceTimeout = 60 * time.Second
)

// Response is a fully received transport response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends a request and returns the complete response; errors are raw transport failures
type Transport interface {
	Send(ctx context.Context, request *http.Request) (*Response, error)
}

// TransportFunc adapts a function to Transport
type TransportFunc func(ctx context.Context, request *http.Request) (*Response, error)

func (f TransportFunc) Send(ctx context.Context, request *http.Request) (*Response, error) {
	return f(ctx, request)
}

// HTTPTransport sends requests with net/http
type HTTPTransport struct {
	client          *http.Client
	resourceTimeout time.Duration
}

type TransportOption func(t *HTTPTransport)

// WithHTTPClient sets the underlying client
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// WithRoundTripper replaces the underlying client round tripper, i.e. to add authorization
func WithRoundTripper(roundTripper http.RoundTripper) TransportOption {
	return func(t *HTTPTransport) {
		client := *t.client
		client.Transport = roundTripper
		t.client = &client
	}
}

// WithResourceTimeout sets overall per request deadline
func WithResourceTimeout(timeout time.Duration) TransportOption {
	return func(t *HTTPTransport) {
		t.resourceTimeout = timeout
	}
}

func (t *HTTPTransport) Send(ctx context.Context, request *http.Request) (*Response, error) {
	if t.resourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.resourceTimeout)
		defer cancel()
	}
	response, err := t.client.Do(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return &Response{StatusCode: response.StatusCode, Header: response.Header, Body: body}, nil
}

// NewRoundTripper returns http transport with request level timeouts
func NewRoundTripper(requestTimeout time.Duration) http.RoundTripper {
	dialer := &net.Dialer{Timeout: requestTimeout, KeepAlive: 30 * time.Second}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: requestTimeout,
		ExpectContinueTimeout: time.Second,
	}
}

// NewHTTPTransport creates a transport with 30s request and 60s resource timeouts
func NewHTTPTransport(options ...TransportOption) *HTTPTransport {
	ret := &HTTPTransport{
		client:          &http.Client{Transport: NewRoundTripper(DefaultRequestTimeout)},
		resourceTimeout: DefaultResourceTimeout,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
