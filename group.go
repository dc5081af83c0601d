package enumerate

import (
	"fmt"

	"github.com/xy-planning-network/enumerate/logger"
)

// A Declaration binds a symbolic property name to the member declared
// under it. The order of a declaration list is significant: it fixes
// member ordinals (redeclaring members in a different order produces
// different ordinals).
type Declaration[M Enumerable] struct {
	Name   string
	Member M
}

// A Group is a sealed enumeration: the closed, ordered set of every
// member of one [Kind], registered under a unique name.
//
// A Group only comes into existence through [Seal], fully validated and
// immutable. It is safe for concurrent use without synchronization.
type Group[M Enumerable] struct {
	name    string
	kind    *Kind
	members []M
}

// Seal finalizes a closed set of members and registers it with r under
// name, returning the sealed [Group].
//
// Sealing walks decls in order, assigning each member an ordinal equal to
// its position and a property name equal to its declaration name, then
// latches kind shut so no further members can be constructed from it.
// A nil r seals into [Default].
//
// Sealing is all-or-nothing. On any failure the registry is untouched,
// no member is modified, and kind remains open:
//   - [ErrDuplicateName] when name is already registered with r.
//   - [ErrDuplicateDescription] when two declarations share a description;
//     the error names the offending Kind.
//   - [ErrSealed] when kind, or any declared member, was already sealed.
//   - [ErrNotValid] when name is empty, kind is nil, a declaration name is
//     empty or repeated, a member is missing, or a member belongs to a
//     different Kind.
//
// Seal is intended to run exactly once per Kind, during single-threaded
// initialization, conventionally from the composite literal or function
// that declares the enumeration's package-level members.
func Seal[M Enumerable](r *Registry, name string, kind *Kind, decls []Declaration[M]) (*Group[M], error) {
	if r == nil {
		r = Default
	}

	if name == "" {
		return nil, fmt.Errorf("%w: empty registration name", ErrNotValid)
	}

	if kind == nil {
		return nil, fmt.Errorf("%w: nil Kind for %q", ErrNotValid, name)
	}

	// A name collision outranks every other failure, so a repeated sealing
	// reports the same error whether or not it reuses the original Kind.
	// The check under the write lock below remains the authoritative one.
	r.mu.RLock()
	_, exists := r.groups[name]
	r.mu.RUnlock()
	if exists {
		return nil, fmt.Errorf("%w: %q already registered", ErrDuplicateName, name)
	}

	if kind.Sealed() {
		return nil, fmt.Errorf("%w: %s cannot seal twice", ErrSealed, kind.name)
	}

	// Validate everything up front; members are only written once the
	// whole declaration list is known good.
	names := make(map[string]struct{}, len(decls))
	descs := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		m := d.Member.core()
		switch {
		case d.Name == "":
			return nil, fmt.Errorf("%w: empty declaration name in %q", ErrNotValid, name)
		case m == nil:
			return nil, fmt.Errorf("%w: no member declared under %q in %q", ErrNotValid, d.Name, name)
		case m.kind != kind:
			return nil, fmt.Errorf("%w: member %q in %q belongs to %s, not %s", ErrNotValid, d.Name, name, m.kind.name, kind.name)
		case m.propName != "":
			return nil, fmt.Errorf("%w: member %s redeclared as %q in %q", ErrSealed, m, d.Name, name)
		}

		if _, ok := names[d.Name]; ok {
			return nil, fmt.Errorf("%w: declaration %q repeated in %q", ErrNotValid, d.Name, name)
		}
		names[d.Name] = struct{}{}

		if _, ok := descs[m.description]; ok {
			return nil, fmt.Errorf("%w: %q appears twice in %s", ErrDuplicateDescription, m.description, kind.name)
		}
		descs[m.description] = struct{}{}
	}

	members := make([]M, len(decls))
	cores := make([]*Member, len(decls))

	r.mu.Lock()
	if _, exists := r.groups[name]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %q already registered", ErrDuplicateName, name)
	}

	for i, d := range decls {
		m := d.Member.core()
		m.ordinal = i
		m.propName = d.Name
		members[i] = d.Member
		cores[i] = m
	}
	kind.sealed.Store(true)
	r.groups[name] = cores
	r.mu.Unlock()

	if r.log != nil {
		r.log.Debug(fmt.Sprintf("sealed %q with %d members", name, len(members)), &logger.LogContext{
			Data: map[string]any{"kind": kind.name},
		})
	}

	return &Group[M]{name: name, kind: kind, members: members}, nil
}

// Name returns the registration name the Group was sealed under.
func (g *Group[M]) Name() string { return g.name }

// Kind returns the Kind every member of the Group was constructed from.
func (g *Group[M]) Kind() *Kind { return g.kind }

// Len returns the number of members in the Group.
func (g *Group[M]) Len() int { return len(g.members) }

// Values returns all members of the Group in ordinal order.
//
// The returned slice is a fresh copy on every call; mutating it does not
// affect the Group or any registry.
func (g *Group[M]) Values() []M {
	vals := make([]M, len(g.members))
	copy(vals, g.members)

	return vals
}

// ByPropName returns the member declared under the provided property
// name. The second return is false when no member matches; a miss is an
// expected outcome, not an error.
func (g *Group[M]) ByPropName(name string) (M, bool) {
	for _, m := range g.members {
		if m.PropertyName() == name {
			return m, true
		}
	}

	var none M
	return none, false
}

// ByDescription returns the member carrying the provided description.
// The second return is false when no member matches; a miss is an
// expected outcome, not an error.
func (g *Group[M]) ByDescription(description string) (M, bool) {
	for _, m := range g.members {
		if m.Description() == description {
			return m, true
		}
	}

	var none M
	return none, false
}

// String returns the registration name.
//
// String implements [fmt.Stringer].
func (g *Group[M]) String() string { return g.name }
