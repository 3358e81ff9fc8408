// ABOUTME: Badger-backed implementation of the Store interface.
// ABOUTME: JSON values, lenient corrupt-payload reads, native prefix watching.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/pb"
)

// BadgerStore persists JSON values in a local Badger database. Badger
// holds a directory lock, so only one process opens it writable at a
// time; a second CLI invocation fails fast at Open rather than racing.
type BadgerStore struct {
	db  *badger.DB
	obs observers
}

// Open opens or creates a Badger database at the given directory.
func Open(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Read(key string, v any) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %q: %w", key, err)
	}
	if json.Unmarshal(raw, v) != nil {
		// Corrupt payload: treat as absent so the caller's default wins.
		return false, nil
	}
	return true, nil
}

func (s *BadgerStore) Write(key string, v any) error {
	data, err := marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	s.obs.notify(key)
	return nil
}

func (s *BadgerStore) Remove(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	s.obs.notify(key)
	return nil
}

func (s *BadgerStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

func (s *BadgerStore) Subscribe(key string, fn func(key string)) (cancel func()) {
	return s.obs.subscribe(key, fn)
}

// Watch blocks and invokes fn for every key changed by any writer in
// this process, using Badger's native subscription, until ctx is done.
func (s *BadgerStore) Watch(ctx context.Context, prefix string, fn func(key string)) error {
	match := pb.Match{Prefix: []byte(prefix)}
	err := s.db.Subscribe(ctx, func(kvs *badger.KVList) error {
		for _, item := range kvs.Kv {
			fn(string(item.Key))
		}
		return nil
	}, []pb.Match{match})
	if err == context.Canceled {
		return nil
	}
	return err
}

func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
