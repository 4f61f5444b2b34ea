// Package catalog provides a typed client for the movie collection API.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/resilient/executor"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the collection API base URL
	DefaultBaseURL = "https://api.webflow.com/v2/"
	// APIVersion is sent with every request
	APIVersion = "1.0.0"
)

// Client fetches collections through a retrying executor
type Client struct {
	executor *executor.Executor
	baseURL  string
	headers  map[string]string
}

// Option represents client option
type Option func(c *Client)

// WithBaseURL sets API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHeader adds a request header
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// FetchMovieCollection returns items of the collection
func (c *Client) FetchMovieCollection(ctx context.Context, collectionID string) (*MovieCollection, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("collection id was empty")
	}
	spec := &executor.RequestSpec{
		Method:  executor.MethodGet,
		URL:     c.baseURL + "collections/" + url.PathEscape(collectionID) + "/items",
		Headers: c.headers,
	}
	ret, err := executor.ExecuteJSON[MovieCollection](ctx, c.executor, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection %v: %w", collectionID, err)
	}
	return ret, nil
}

// BearerTransport authorizes requests with a static bearer token
func BearerTransport(token string, base http.RoundTripper) http.RoundTripper {
	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   base,
	}
}

// New creates a client, exec should carry a transport built with BearerTransport
func New(exec *executor.Executor, options ...Option) *Client {
	ret := &Client{
		executor: exec,
		baseURL:  DefaultBaseURL,
		headers: map[string]string{
			"Accept":         "application/json",
			"accept-version": APIVersion,
		},
	}
	for _, opt := range options {
		opt(ret)
	}
	if !strings.HasSuffix(ret.baseURL, "/") {
		ret.baseURL += "/"
	}
	return ret
}
