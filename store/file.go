package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FileStore persists values as a JSON snapshot at an afs URL (local path,
// file://, mem:// or any registered storage). Every Set rewrites the snapshot.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[Key]string
}

type fileSnapshot struct {
	Values map[string]string `json:"values"`
}

// NewFileStore creates a Store persisted at URL, existing content is loaded eagerly
func NewFileStore(ctx context.Context, URL string) (*FileStore, error) {
	ret := &FileStore{
		URL:    URL,
		fs:     afs.New(),
		values: map[Key]string{},
	}
	if err := ret.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load store %v: %w", URL, err)
	}
	return ret, nil
}

func (f *FileStore) Get(_ context.Context, key Key) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key Key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.values[key]
	f.values[key] = value
	if err := f.save(ctx); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return fmt.Errorf("failed to persist %v: %w", key, err)
	}
	return nil
}

// ---- persistence ----

func (f *FileStore) save(ctx context.Context) error {
	snap := fileSnapshot{Values: make(map[string]string, len(f.values))}
	for k, v := range f.values {
		snap.Values[string(k)] = v
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	location, ok := localPath(f.URL)
	if !ok {
		return f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data))
	}
	tmp := location + ".tmp"
	if err = f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Rename(tmp, location)
}

// localPath returns file system path for plain paths and file:// URLs
func localPath(URL string) (string, bool) {
	if !strings.Contains(URL, "://") {
		return URL, true
	}
	if url.Scheme(URL, file.Scheme) != file.Scheme {
		return "", false
	}
	return url.Path(URL), true
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	for k, v := range snap.Values {
		f.values[Key(k)] = v
	}
	return nil
}
