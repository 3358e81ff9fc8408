// ABOUTME: In-memory implementation of the Store interface.
// ABOUTME: Backs unit tests; same JSON and notification semantics as Badger.
package kv

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is a map-backed Store with the same observable behavior
// as the Badger store. It exists so ledger and stats logic can be
// tested in isolation from a real database.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	obs  observers
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Read(key string, v any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if json.Unmarshal(raw, v) != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Write(key string, v any) error {
	data, err := marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	s.obs.notify(key)
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	s.obs.notify(key)
	return nil
}

func (s *MemoryStore) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) Subscribe(key string, fn func(key string)) (cancel func()) {
	return s.obs.subscribe(key, fn)
}

func (s *MemoryStore) Close() error { return nil }

// Corrupt overwrites the raw payload at key, bypassing JSON encoding.
// Test helper for the lenient-read policy.
func (s *MemoryStore) Corrupt(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}
