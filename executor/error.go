package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
)

// InvalidAddressError reports a malformed request URL
type InvalidAddressError struct {
	URL string
	Err error
}

func (e *InvalidAddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid address %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid address %q", e.URL)
}

func (e *InvalidAddressError) Unwrap() error { return e.Err }

// ConnectivityError wraps a transport level failure, it is the only retryable error
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity error: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// HTTPError reports a response with status outside of 2xx
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError reports a body that does not match the declared shape
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnsupportedMethodError reports a method the executor does not implement
type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method: %v", e.Method)
}

// IsRetryable returns true for connectivity-class failures
func IsRetryable(err error) bool {
	var connErr *ConnectivityError
	return errors.As(err, &connErr)
}

// IsConnectivity reports whether a raw transport error is a connectivity-class fault:
// timeout, lost or refused connection, unreachable host or DNS failure.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	for _, errno := range connectivityErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return false
}

var connectivityErrnos = []error{
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ECONNABORTED,
	syscall.EHOSTUNREACH,
	syscall.ENETUNREACH,
	syscall.ENETDOWN,
	syscall.EPIPE,
	syscall.ETIMEDOUT,
}
