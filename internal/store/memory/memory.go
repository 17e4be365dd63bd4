// internal/store/memory/memory.go
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/spf13/cast"

	"github.com/forgepeptides/forge-backend/internal/store"
)

// Store is an in-memory store.Store for tests and ephemeral environments.
// Documents are kept in insertion order per collection and deep-copied on
// the way in and out, so callers never share memory with the store.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]store.Document
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string][]store.Document)}
}

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneDocument(doc)
	id, ok := stored["_id"].(string)
	if !ok || id == "" {
		id = store.NewID()
		stored["_id"] = id
	}

	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *Store) Find(ctx context.Context, collection string, query store.Query) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]store.Document, 0)
	for _, doc := range s.collections[collection] {
		if matches(doc, query) {
			docs = append(docs, cloneDocument(doc))
		}
	}
	return docs, nil
}

func (s *Store) FindByID(ctx context.Context, collection, id string) (store.Document, error) {
	if !store.IsValidID(id) {
		return nil, store.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] == id {
			return cloneDocument(doc), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, doc := range s.collections[collection] {
		v, ok := doc[field].(string)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.collections[collection])), nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// matches applies the same filter semantics the production store uses:
// equality for plain values, inclusive bounds for store.Range values.
func matches(doc store.Document, query store.Query) bool {
	for field, cond := range query {
		value, ok := doc[field]
		if !ok {
			return false
		}

		switch c := cond.(type) {
		case store.Range:
			num, err := toNumber(value)
			if err != nil {
				return false
			}
			if c.Min != nil {
				min, err := toNumber(c.Min)
				if err != nil || num < min {
					return false
				}
			}
			if c.Max != nil {
				max, err := toNumber(c.Max)
				if err != nil || num > max {
					return false
				}
			}
		default:
			if !equal(value, cond) {
				return false
			}
		}
	}
	return true
}

func equal(a, b interface{}) bool {
	if a == b {
		return true
	}
	an, aerr := toNumber(a)
	bn, berr := toNumber(b)
	return aerr == nil && berr == nil && an == bn
}

var errNotNumeric = errors.New("value is not numeric")

// toNumber coerces the numeric types documents round-trip through
// (int, int32, int64, float64) into a comparable form. Strings are not
// numbers here.
func toNumber(v interface{}) (float64, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return cast.ToFloat64E(v)
	default:
		return 0, errNotNumeric
	}
}

func cloneDocument(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case store.Document:
		return cloneDocument(val)
	case map[string]interface{}:
		return map[string]interface{}(cloneDocument(val))
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, item := range val {
			out = append(out, cloneValue(item))
		}
		return out
	default:
		return v
	}
}
