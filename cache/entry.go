package cache

import (
	"net/url"
	"strings"

	"github.com/viant/resilient/executor"
)

// Entry represents cached content, Data must not be modified
type Entry struct {
	Key  string
	Data []byte
	Cost int64
}

// Stats reports cache counters
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
	Cost      int64
}

// CanonicalKey returns the fully resolved URL used as cache key
func CanonicalKey(URL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(URL))
	if err != nil {
		return "", &executor.InvalidAddressError{URL: URL, Err: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", &executor.InvalidAddressError{URL: URL}
	}
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed.String(), nil
}
