package executor

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Method represents HTTP method
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// RequestSpec describes one logical fetch, it is owned by the caller and never mutated by the executor
type RequestSpec struct {
	Method  Method
	URL     string
	Headers map[string]string
	// Params are query encoded for read operations, values are rendered with fmt.Sprint
	Params map[string]interface{}
}

func (s *RequestSpec) method() Method {
	if s.Method == "" {
		return MethodGet
	}
	return Method(strings.ToUpper(string(s.Method)))
}

// build validates spec and creates transport request
func (s *RequestSpec) build() (*http.Request, error) {
	URL, err := url.Parse(s.URL)
	if err != nil {
		return nil, &InvalidAddressError{URL: s.URL, Err: err}
	}
	if URL.Scheme == "" || URL.Host == "" {
		return nil, &InvalidAddressError{URL: s.URL}
	}
	method := s.method()
	switch method {
	case MethodGet:
		if len(s.Params) > 0 {
			query := URL.Query()
			for k, v := range s.Params {
				query.Set(k, fmt.Sprint(v))
			}
			URL.RawQuery = query.Encode()
		}
	default:
		return nil, &UnsupportedMethodError{Method: method}
	}
	request, err := http.NewRequest(string(method), URL.String(), nil)
	if err != nil {
		return nil, &InvalidAddressError{URL: s.URL, Err: err}
	}
	for k, v := range s.Headers {
		request.Header.Add(k, v)
	}
	if request.Header.Get("Cache-Control") == "" {
		request.Header.Set("Cache-Control", "no-cache")
	}
	return request, nil
}
