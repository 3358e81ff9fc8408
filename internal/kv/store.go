// ABOUTME: Key-value store contract used by ledger, stats and registry.
// ABOUTME: JSON values, lenient reads, and per-key change notifications.
package kv

import "encoding/json"

// Store is a persistent string-keyed store holding JSON-serializable
// values. Change notifications are best-effort, at-least-once re-read
// hints; they carry no payload beyond the key.
type Store interface {
	// Read unmarshals the value at key into v. It returns false when the
	// key is absent. A corrupt payload is treated as absent, not as an
	// error: the caller falls back to its default.
	Read(key string, v any) (bool, error)
	// Write serializes v and persists it, then notifies observers of key.
	Write(key string, v any) error
	// Remove deletes the entry and notifies observers of key.
	Remove(key string) error
	// Keys returns all stored keys with the given prefix ("" for all).
	Keys(prefix string) ([]string, error)
	// Subscribe registers fn to run after every Write or Remove of key.
	// An empty key observes all keys. The returned function cancels the
	// subscription; call it on teardown.
	Subscribe(key string, fn func(key string)) (cancel func())
	// Close releases the underlying store.
	Close() error
}

// Read returns the value stored at key, or def when the key is absent,
// the payload is corrupt, or the read fails. This is the single lenient
// read path the rest of the code uses.
func Read[T any](s Store, key string, def T) T {
	var v T
	ok, err := s.Read(key, &v)
	if err != nil || !ok {
		return def
	}
	return v
}

// Write persists v at key.
func Write[T any](s Store, key string, v T) error {
	return s.Write(key, v)
}

func marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
