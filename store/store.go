package store

import (
	"context"

	"github.com/viant/resilient/internal/collection"
)

// Key identifies a persisted value
type Key string

const (
	// LastUploadedDeviceToken holds the last push token successfully registered with the promotion SDK
	LastUploadedDeviceToken Key = "apnLastUploadedDeviceToken"
	// DeviceIdentifier holds a locally generated device identifier surfaced read-only to the profile screen
	DeviceIdentifier Key = "deviceIdentifier"
)

// Store is a pluggable persistence layer for small string values.
// The in-memory default is fine for CLI tools and tests; use file or sqlite backends to survive restarts.
type Store interface {
	Get(ctx context.Context, key Key) (string, bool, error)
	Set(ctx context.Context, key Key, value string) error
}

type MemoryStoreOption func(*memoryStore)

// WithValue seeds the memory store
func WithValue(key Key, value string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.values.Put(key, value)
	}
}

type memoryStore struct {
	values *collection.SyncMap[Key, string]
}

func (m *memoryStore) Get(_ context.Context, key Key) (string, bool, error) {
	value, ok := m.values.Get(key)
	return value, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key Key, value string) error {
	m.values.Put(key, value)
	return nil
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: collection.NewSyncMap[Key, string]()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
