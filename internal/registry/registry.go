// ABOUTME: Exercise type registry, a small user-extensible label set.
// ABOUTME: Seeded with defaults, insertion-ordered, no removal operation.
package registry

import (
	"fmt"
	"strings"

	"github.com/varzesh/fitlog/internal/kv"
	"github.com/varzesh/fitlog/internal/models"
)

// TypesKey is the storage key holding the ordered type list.
const TypesKey = "exerciseTypes"

// Registry manages the set of exercise category labels.
type Registry struct {
	store kv.Store
}

// New returns a registry over the given store.
func New(store kv.Store) *Registry {
	return &Registry{store: store}
}

// List returns the type labels in insertion order. A missing or corrupt
// entry yields the seeded defaults.
func (r *Registry) List() []string {
	return kv.Read(r.store, TypesKey, append([]string(nil), models.DefaultExerciseTypes...))
}

// Add appends a new type label. The label is trimmed; duplicates are
// rejected by exact comparison.
func (r *Registry) Add(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return &models.ValidationError{Field: "exerciseType", Reason: "must not be empty"}
	}
	types := r.List()
	for _, t := range types {
		if t == label {
			return models.ErrDuplicateType
		}
	}
	if err := r.store.Write(TypesKey, append(types, label)); err != nil {
		return fmt.Errorf("save exercise types: %w", err)
	}
	return nil
}

// Contains reports whether the label is a registered type.
func (r *Registry) Contains(label string) bool {
	label = strings.TrimSpace(label)
	for _, t := range r.List() {
		if t == label {
			return true
		}
	}
	return false
}
