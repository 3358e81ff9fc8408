// ABOUTME: Tests for the in-memory store and the generic read/write helpers.
// ABOUTME: Covers the lenient corrupt-read policy and change notifications.
package kv

import (
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryReadWrite(t *testing.T) {
	s := NewMemory()
	if err := s.Write("k", payload{Name: "run", Count: 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got payload
	found, err := s.Read("k", &got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !found {
		t.Fatal("Read: key not found after write")
	}
	if got.Name != "run" || got.Count != 3 {
		t.Errorf("Read = %+v", got)
	}
}

func TestMemoryReadMissing(t *testing.T) {
	s := NewMemory()
	var got payload
	found, err := s.Read("absent", &got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if found {
		t.Error("Read reported a missing key as found")
	}
}

func TestMemoryReadCorrupt(t *testing.T) {
	s := NewMemory()
	s.Corrupt("k", []byte("{not json"))
	var got payload
	found, err := s.Read("k", &got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if found {
		t.Error("corrupt payload should read as absent")
	}
}

func TestGenericReadDefault(t *testing.T) {
	s := NewMemory()
	got := Read(s, "absent", []string{"a", "b"})
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("Read default = %v", got)
	}

	s.Corrupt("bad", []byte("?"))
	if got := Read(s, "bad", 42); got != 42 {
		t.Errorf("Read corrupt default = %d, want 42", got)
	}

	if err := Write(s, "n", 7); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := Read(s, "n", 0); got != 7 {
		t.Errorf("Read = %d, want 7", got)
	}
}

func TestMemoryRemove(t *testing.T) {
	s := NewMemory()
	if err := s.Write("k", 1); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	var n int
	found, _ := s.Read("k", &n)
	if found {
		t.Error("key still present after Remove")
	}
}

func TestMemoryKeysPrefix(t *testing.T) {
	s := NewMemory()
	for _, k := range []string{"1404-06-19", "1404-06-20", "extraData"} {
		if err := s.Write(k, 1); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	keys, err := s.Keys("1404-")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("Keys(1404-) = %v, want 2 entries", keys)
	}
	if keys[0] != "1404-06-19" || keys[1] != "1404-06-20" {
		t.Errorf("Keys not sorted: %v", keys)
	}
}

func TestSubscribe(t *testing.T) {
	s := NewMemory()

	var exact, wildcard []string
	cancelExact := s.Subscribe("a", func(key string) { exact = append(exact, key) })
	cancelAll := s.Subscribe("", func(key string) { wildcard = append(wildcard, key) })
	defer cancelAll()

	_ = s.Write("a", 1)
	_ = s.Write("b", 2)
	_ = s.Remove("a")

	if len(exact) != 2 {
		t.Errorf("exact subscriber got %v, want [a a]", exact)
	}
	if len(wildcard) != 3 {
		t.Errorf("wildcard subscriber got %v, want 3 events", wildcard)
	}

	cancelExact()
	_ = s.Write("a", 3)
	if len(exact) != 2 {
		t.Error("subscriber notified after cancel")
	}
}
