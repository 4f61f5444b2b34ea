// Package executor performs a single logical network fetch with bounded
// exponential backoff.
//
// Only connectivity-class failures (timeouts, lost or refused connections,
// unreachable hosts, DNS failures) are retried. Non-2xx responses, decode
// failures, malformed addresses and unsupported methods are terminal and are
// returned to the caller as typed errors:
//
//	data, err := exec.Execute(ctx, &executor.RequestSpec{URL: "https://api.example.com/items"})
//	var httpErr *executor.HTTPError
//	if errors.As(err, &httpErr) {
//		// httpErr.StatusCode
//	}
//
// The delay before retry n (0-indexed) is min(2^n, 10) seconds.
package executor
