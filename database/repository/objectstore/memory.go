package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
)

// MemoryStore keeps objects in process. URLs point at BaseURL + path.
type MemoryStore struct {
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
}

// NewMemoryStore returns an empty MemoryStore serving URLs under baseURL.
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		BaseURL: baseURL,
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *MemoryStore) Put(_ context.Context, path, contentType string, r io.Reader) (Object, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return Object{}, fmt.Errorf("memory storage: read %s: %w", path, err)
	}
	s.mu.Lock()
	s.objects[path] = buf.Bytes()
	s.types[path] = contentType
	s.mu.Unlock()
	return Object{Path: path, URL: s.BaseURL + "/" + (&url.URL{Path: path}).EscapedPath()}, nil
}

func (s *MemoryStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[path]; !ok {
		return fmt.Errorf("memory storage: delete %s: object does not exist", path)
	}
	delete(s.objects, path)
	delete(s.types, path)
	return nil
}

// Get returns a stored object's bytes and content type.
func (s *MemoryStore) Get(path string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[path]
	return b, s.types[path], ok
}
