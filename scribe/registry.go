package scribe

import (
	"sort"
	"sync"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
)

// Registry maps property kinds to scribes.
type Registry struct {
	scribes map[vcard.Kind]Scribe
	mu      sync.RWMutex
}

// NewRegistry returns a registry holding the built-in scribes, including
// the catch-all scribe for Raw properties.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, s := range Builtins() {
		r.scribes[s.Kind()] = s
	}
	return r
}

// NewEmptyRegistry returns a registry with no scribes.
func NewEmptyRegistry() *Registry {
	return &Registry{scribes: make(map[vcard.Kind]Scribe)}
}

// Register binds s to its kind, replacing any earlier scribe for it.
func (r *Registry) Register(s Scribe) error {
	if s == nil {
		return errors.InvalidInput(errors.PhaseRegister, "nil scribe")
	}
	kind := s.Kind()
	if kind == "" {
		return errors.New(errors.PhaseRegister, errors.KindInvalidInput).
			Detail("scribe %T has an empty kind", s).
			Build()
	}

	r.mu.Lock()
	r.scribes[kind] = s
	r.mu.Unlock()
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(s Scribe) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Unregister removes the scribe for kind and reports whether one existed.
func (r *Registry) Unregister(kind vcard.Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.scribes[kind]
	delete(r.scribes, kind)
	return ok
}

// HasScribeFor reports whether p's kind has a scribe.
func (r *Registry) HasScribeFor(p vcard.Property) bool {
	if p == nil {
		return false
	}
	r.mu.RLock()
	_, ok := r.scribes[p.Kind()]
	r.mu.RUnlock()
	return ok
}

// Resolve returns the scribe for p's kind.
func (r *Registry) Resolve(p vcard.Property) (Scribe, error) {
	if p == nil {
		return nil, errors.InvalidInput(errors.PhasePrepare, "nil property")
	}
	r.mu.RLock()
	s, ok := r.scribes[p.Kind()]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.UnregisteredProperty([]string{string(p.Kind())})
	}
	return s, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []vcard.Kind {
	r.mu.RLock()
	kinds := make([]vcard.Kind, 0, len(r.scribes))
	for k := range r.scribes {
		kinds = append(kinds, k)
	}
	r.mu.RUnlock()

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
