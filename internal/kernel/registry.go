// Package kernel implements Flint's kernel registry: a two-level
// store mapping kernel names to per-key records, the static argument
// classifier that derives each record's signature, and the registrar
// that expands one kernel template over many data types.
package kernel

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores kernel records by name and compound key.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	kernels map[string]map[Key]Kernel
}

// Global is the process-wide registry the built-in kernels register
// into from init.
var Global = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[string]map[Key]Kernel)}
}

// Register inserts a record under (name, key). An existing record for
// the same pair is overwritten; later registrations deliberately
// override earlier ones.
func (r *Registry) Register(name string, key Key, k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byKey, ok := r.kernels[name]
	if !ok {
		byKey = make(map[Key]Kernel)
		r.kernels[name] = byKey
	}
	byKey[key] = k
}

// Lookup returns the record for (name, key). Unknown names and keys
// return an error wrapping ErrNotFound.
func (r *Registry) Lookup(name string, key Key) (Kernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKey, ok := r.kernels[name]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	k, ok := byKey[key]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %q has no kernel for %s", ErrNotFound, name, key)
	}
	return k, nil
}

// Has reports whether a record exists for (name, key).
func (r *Registry) Has(name string, key Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kernels[name][key]
	return ok
}

// Kernels returns a copy of all records registered under name.
// Unknown names return an empty map.
func (r *Registry) Kernels(name string) map[Key]Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Key]Kernel, len(r.kernels[name]))
	for key, k := range r.kernels[name] {
		out[key] = k
	}
	return out
}

// Keys returns the keys registered under name, ordered by Compare.
func (r *Registry) Keys(name string) []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.kernels[name]))
	for key := range r.kernels[name] {
		keys = append(keys, key)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	return keys
}

// Names returns all registered kernel names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.kernels))
	for name := range r.kernels {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the total number of records across all names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, byKey := range r.kernels {
		n += len(byKey)
	}
	return n
}
