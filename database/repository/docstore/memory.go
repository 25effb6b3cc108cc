package docstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used for local development and tests.
// It keeps insertion order so unordered queries are deterministic.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Add(_ context.Context, collection string, data map[string]any) (string, error) {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], Document{ID: id, Data: clone(data)})
	return id, nil
}

func (s *MemoryStore) Query(_ context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	var out []Document
	for _, d := range s.collections[collection] {
		ok, err := matches(d, q.Filters)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if ok {
			out = append(out, Document{ID: d.ID, Data: clone(d.Data)})
		}
	}
	s.mu.RUnlock()

	if len(q.Orders) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range q.Orders {
				c := compare(out[i].Data[o.Field], out[j].Data[o.Field])
				if c == 0 {
					continue
				}
				if o.Direction == Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	if out == nil {
		out = []Document{}
	}
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.collections[collection] {
		if d.ID != id {
			continue
		}
		for k, v := range data {
			s.collections[collection][i].Data[k] = v
		}
		return nil
	}
	return fmt.Errorf("memory: update %s/%s: %w", collection, id, ErrNotFound)
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// Len returns the number of documents in a collection.
func (s *MemoryStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func matches(d Document, filters []Filter) (bool, error) {
	for _, f := range filters {
		v, present := d.Data[f.Field]
		if !present {
			return false, nil
		}
		c := compare(v, f.Value)
		var ok bool
		switch f.Op {
		case OpEqual:
			ok = c == 0
		case OpNotEqual:
			ok = c != 0
		case OpLess:
			ok = c < 0
		case OpLessEqual:
			ok = c <= 0
		case OpGreater:
			ok = c > 0
		case OpGreaterEqual:
			ok = c >= 0
		default:
			return false, fmt.Errorf("memory: unsupported operator %q", f.Op)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// compare orders values the way the hosted store does for the types this
// application writes: numbers numerically, times chronologically, everything
// else by its string form. Missing values sort first.
func compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
