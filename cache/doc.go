// Package cache memoizes raw byte fetches (primarily images) keyed by
// canonical URL.
//
// The cache is bounded by entry count and by total byte cost. When either
// limit is exceeded after an insert, least recently used entries are evicted
// until both limits hold. Failed or cancelled fetches are never stored, and
// concurrent misses for the same URL share a single fetch.
package cache
