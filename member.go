package enumerate

import (
	"fmt"
	"sync/atomic"
)

// unassigned marks a Member ordinal before its Kind is sealed.
const unassigned = -1

// A Kind is the identity of one variety of enumeration member.
// All members of a closed set are constructed from the same Kind,
// and sealing the set latches the Kind shut: once sealed, a Kind
// constructs no further members, ever.
//
// The latch trips exactly once, as a side effect of [Seal]; it never
// resets.
type Kind struct {
	name   string
	sealed atomic.Bool
}

// NewKind constructs a Kind named name.
//
// The name identifies the member variety in diagnostics, e.g., the "Season"
// in "Season.WINTER". It is conventionally the same as the registration
// name the set is later sealed under.
func NewKind(name string) *Kind { return &Kind{name: name} }

// Name returns the name the Kind was constructed with.
func (k *Kind) Name() string { return k.name }

// Sealed asserts whether the Kind has been sealed and therefore
// refuses to construct new members.
func (k *Kind) Sealed() bool { return k.sealed.Load() }

// New constructs a Member of this Kind with the provided description.
//
// New fails with [ErrSealed] once the Kind has been sealed,
// preventing rogue members from joining a closed set after the fact.
func (k *Kind) New(description string) (*Member, error) {
	if k.Sealed() {
		return nil, fmt.Errorf("%w: %s accepts no new members", ErrSealed, k.name)
	}

	return &Member{kind: k, description: description, ordinal: unassigned}, nil
}

// A Member is one named constant in a closed set.
//
// A Member begins life holding only its description.
// [Seal] assigns its ordinal and property name exactly once;
// no write to a Member ever happens outside that one step,
// so a sealed Member is immutable.
type Member struct {
	kind        *Kind
	description string
	ordinal     int
	propName    string
}

// Description returns the human-readable description supplied at
// construction. Descriptions are pairwise distinct within a sealed set.
func (m *Member) Description() string { return m.description }

// Kind returns the Kind the Member was constructed from.
func (m *Member) Kind() *Kind { return m.kind }

// Ordinal returns the Member's 0-based position within its set,
// fixed by declaration order at sealing time.
// Ordinal returns -1 until the Member's Kind is sealed.
func (m *Member) Ordinal() int { return m.ordinal }

// PropertyName returns the symbolic name the Member was declared under,
// e.g., "WINTER". PropertyName returns "" until the Member's Kind is sealed.
func (m *Member) PropertyName() string { return m.propName }

// String formats the Member for diagnostics by combining its Kind's name
// and its property name, e.g., "Season.WINTER".
//
// String implements [fmt.Stringer].
func (m *Member) String() string {
	if m.propName == "" {
		return m.kind.name + ".<unsealed>"
	}

	return m.kind.name + "." + m.propName
}

func (m *Member) core() *Member { return m }
