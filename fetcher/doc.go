// Package fetcher implements the rfetch command: it loads a resource through the
// retrying executor and the bounded content cache, optionally validates it as JSON
// and writes it to stdout or any afs destination URL.
package fetcher
