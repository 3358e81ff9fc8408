// ABOUTME: Observer registry dispatching change notifications per key.
// ABOUTME: Shared by the Badger and in-memory store implementations.
package kv

import "sync"

type observer struct {
	id  int
	key string // "" observes every key
	fn  func(key string)
}

// observers is an explicit subscription registry. Callbacks run
// synchronously after a successful write or remove, in registration
// order. They must treat the notification as a re-read hint only.
type observers struct {
	mu     sync.Mutex
	nextID int
	subs   []observer
}

func (o *observers) subscribe(key string, fn func(key string)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, observer{id: id, key: key, fn: fn})
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) notify(key string) {
	o.mu.Lock()
	matched := make([]func(string), 0, len(o.subs))
	for _, s := range o.subs {
		if s.key == "" || s.key == key {
			matched = append(matched, s.fn)
		}
	}
	o.mu.Unlock()

	for _, fn := range matched {
		fn(key)
	}
}
