package enumerate

// Enumerable is the interface implemented by enumeration members: named,
// strongly-typed constant values belonging to a closed set.
//
// Only types embedding a [*Member] satisfy Enumerable; the embedded Member
// supplies every method, including the unexported anchor. Declaring a
// distinct embedding type per enumeration gives each closed set its own
// Go type, so lookups on a [Group] return typed members.
type Enumerable interface {
	Description() string
	Ordinal() int
	PropertyName() string
	String() string

	// core anchors the interface to this package's Member.
	core() *Member
}
