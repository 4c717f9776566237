// ABOUTME: Key/value extended attribute storage keyed by file path.
// ABOUTME: Defines the Store contract and an in-memory implementation.

package xattrs

import (
	"errors"
	"slices"
	"sort"
	"sync"
)

var (
	// ErrNoAttribute is returned by Get and Remove when the key is absent.
	ErrNoAttribute = errors.New("attribute not found")
	// ErrUnsupported is returned on platforms without extended attributes.
	ErrUnsupported = errors.New("extended attributes not supported")
)

// Store reads and writes extended attributes of files.
type Store interface {
	Get(path, key string) ([]byte, error)
	// Set creates or replaces the value of key.
	Set(path, key string, value []byte) error
	Remove(path, key string) error
	List(path string) ([]string, error)
}

// MemStore keeps attributes in memory. The zero value is ready to use.
type MemStore struct {
	mu    sync.Mutex
	files map[string]map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Get(path, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.files[path][key]
	if !ok {
		return nil, ErrNoAttribute
	}
	return slices.Clone(v), nil
}

func (m *MemStore) Set(path, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.files == nil {
		m.files = make(map[string]map[string][]byte)
	}
	attrs, ok := m.files[path]
	if !ok {
		attrs = make(map[string][]byte)
		m.files[path] = attrs
	}
	attrs[key] = slices.Clone(value)
	return nil
}

func (m *MemStore) Remove(path, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path][key]; !ok {
		return ErrNoAttribute
	}
	delete(m.files[path], key)
	return nil
}

func (m *MemStore) List(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.files[path]))
	for k := range m.files[path] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Has reports whether key is present on path.
func Has(s Store, path, key string) (bool, error) {
	keys, err := s.List(path)
	if err != nil {
		return false, err
	}
	return slices.Contains(keys, key), nil
}
