package cache

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/viant/resilient/logger"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves raw bytes for a URL, executor.Executor implements it
type Fetcher interface {
	Fetch(ctx context.Context, URL string) ([]byte, error)
}

// Cache is a bounded LRU content cache
type Cache struct {
	fetcher    Fetcher
	maxEntries int
	maxCost    int64
	coalesce   bool
	logger     logger.Logger

	mu    sync.Mutex
	ll    *list.List // front is most recently used
	items map[string]*list.Element
	cost  int64

	group     singleflight.Group
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// Load returns content for URL, fetching it on a miss.
// Fetch errors are returned verbatim and nothing is cached for them.
func (c *Cache) Load(ctx context.Context, URL string) ([]byte, error) {
	key, err := CanonicalKey(URL)
	if err != nil {
		return nil, err
	}
	if data, ok := c.get(key); ok {
		c.hits.Add(1)
		return data, nil
	}
	c.misses.Add(1)
	if !c.coalesce {
		return c.fetch(ctx, key)
	}
	for {
		result := c.group.DoChan(key, func() (interface{}, error) {
			return c.fetch(ctx, key)
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case shared := <-result:
			if shared.Err != nil {
				// the caller that started the shared fetch was cancelled, fetch again with our own context
				if shared.Shared && isContextErr(shared.Err) && ctx.Err() == nil {
					if data, ok := c.get(key); ok {
						return data, nil
					}
					continue
				}
				return nil, shared.Err
			}
			return shared.Val.([]byte), nil
		}
	}
}

func (c *Cache) fetch(ctx context.Context, key string) ([]byte, error) {
	if data, ok := c.get(key); ok {
		return data, nil
	}
	data, err := c.fetcher.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if !c.Add(key, data) {
		c.logger.Debug(ctx, fmt.Sprintf("%v (%d bytes) exceeds cache cost limit, not stored", key, len(data)))
	}
	return data, nil
}

// Get returns cached content without I/O and marks it as recently used
func (c *Cache) Get(URL string) ([]byte, bool) {
	key, err := CanonicalKey(URL)
	if err != nil {
		return nil, false
	}
	return c.get(key)
}

func (c *Cache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	element, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(element)
	return element.Value.(*Entry).Data, true
}

// Add stores content for URL and evicts least recently used entries to respect limits.
// It returns false when content alone exceeds the cost limit or the URL is invalid.
// Existing entries are immutable, adding a present key only marks it as recently used.
func (c *Cache) Add(URL string, data []byte) bool {
	key, err := CanonicalKey(URL)
	if err != nil {
		return false
	}
	cost := int64(len(data))
	if c.maxCost > 0 && cost > c.maxCost {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if element, ok := c.items[key]; ok {
		c.ll.MoveToFront(element)
		return true
	}
	c.items[key] = c.ll.PushFront(&Entry{Key: key, Data: data, Cost: cost})
	c.cost += cost
	c.evict()
	return true
}

// evict must be called with lock held
func (c *Cache) evict() {
	for c.ll.Len() > 0 && c.overLimit() {
		oldest := c.ll.Back()
		c.removeElement(oldest)
		c.evictions.Add(1)
	}
}

func (c *Cache) overLimit() bool {
	if c.maxEntries > 0 && c.ll.Len() > c.maxEntries {
		return true
	}
	return c.maxCost > 0 && c.cost > c.maxCost
}

func (c *Cache) removeElement(element *list.Element) {
	entry := c.ll.Remove(element).(*Entry)
	delete(c.items, entry.Key)
	c.cost -= entry.Cost
}

// Remove deletes URL entry, it returns true if entry was present
func (c *Cache) Remove(URL string) bool {
	key, err := CanonicalKey(URL)
	if err != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	element, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElement(element)
	return true
}

// Clear removes all entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = map[string]*list.Element{}
	c.cost = 0
}

// Len returns number of entries
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Cost returns total cached bytes
func (c *Cache) Cost() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cost
}

// Keys returns keys from most to least recently used
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := make([]string, 0, c.ll.Len())
	for element := c.ll.Front(); element != nil; element = element.Next() {
		ret = append(ret, element.Value.(*Entry).Key)
	}
	return ret
}

// Stats returns cache counters
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	entries, cost := c.ll.Len(), c.cost
	c.mu.Unlock()
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   entries,
		Cost:      cost,
	}
}

// isContextErr matches bare caller cancellation, transport timeouts arrive wrapped in executor.ConnectivityError
func isContextErr(err error) bool {
	return err == context.Canceled || err == context.DeadlineExceeded
}

// New creates a cache backed by fetcher with default limits of 100 entries and 50 MiB
func New(fetcher Fetcher, options ...Option) *Cache {
	ret := &Cache{
		fetcher:    fetcher,
		maxEntries: DefaultMaxEntries,
		maxCost:    DefaultMaxCost,
		coalesce:   true,
		logger:     logger.Nop(),
		ll:         list.New(),
		items:      map[string]*list.Element{},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
