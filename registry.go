package enumerate

import (
	"sort"
	"sync"

	"github.com/xy-planning-network/enumerate/logger"
)

// Default is the process-wide Registry enumerations seal into when no
// other Registry is supplied.
//
// Code that wants isolation, tests especially, should construct its own
// Registry with [NewRegistry] and pass it to [Seal] instead.
var Default = NewRegistry()

// A Registry maps registration names to the sealed, ordered members
// registered under them.
//
// A Registry is written only by [Seal] and is read-only thereafter;
// the expected discipline is that all sealing happens during
// single-threaded initialization, before concurrent readers start.
// The Registry nonetheless guards itself, so it is safe for concurrent
// use throughout.
type Registry struct {
	mu     sync.RWMutex
	groups map[string][]*Member
	log    logger.Logger
}

// A RegistryOption configures a Registry when constructing a new one.
type RegistryOption func(*Registry)

// WithLogger has the Registry debug-log each successful sealing to l.
// Failures are never logged; they surface to the caller of [Seal].
func WithLogger(l logger.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry constructs an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{groups: make(map[string][]*Member)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lookup returns the members sealed under name in ordinal order.
// The second return is false when name has never been sealed.
//
// The returned slice is a fresh copy on every call; mutating it does not
// affect the Registry.
func (r *Registry) Lookup(name string) ([]*Member, bool) {
	r.mu.RLock()
	members, ok := r.groups[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	vals := make([]*Member, len(members))
	copy(vals, members)

	return vals, true
}

// Names returns every registration name in the Registry in lexicographic
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)

	return names
}

// Count returns the number of enumerations sealed into the Registry.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.groups)
}
