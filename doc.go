/*
Package enumerate provides closed, finite sets of named, strongly-typed
constant values, with richer behavior than a bare const block: each member
carries a human-readable description, a stable 0-based ordinal, and the
symbolic name it was declared under, and each set supports lookup by
either.

# Declaring an enumeration

An enumeration is declared in three steps:
construct a [Kind], construct members from it,
and seal the ordered declarations with [Seal].

	type Season struct{ *enumerate.Member }

	var (
		seasonKind = enumerate.NewKind("Season")

		Spring = Season{must(seasonKind.New("Spring"))}
		Summer = Season{must(seasonKind.New("Summer"))}
		Fall   = Season{must(seasonKind.New("Fall"))}
		Winter = Season{must(seasonKind.New("Winter"))}

		Seasons = must(enumerate.Seal(nil, "Season", seasonKind, []enumerate.Declaration[Season]{
			{Name: "SPRING", Member: Spring},
			{Name: "SUMMER", Member: Summer},
			{Name: "FALL", Member: Fall},
			{Name: "WINTER", Member: Winter},
		}))
	)

	// must panics on err, the conventional treatment for declarations
	// that run at package load.
	func must[T any](v T, err error) T {
		if err != nil {
			panic(err)
		}
		return v
	}

Sealing assigns ordinals in declaration order, validates that descriptions
are pairwise distinct, registers the set under its name, and latches the
Kind shut so no further Season can ever be constructed. After sealing,
Spring.Ordinal() is 0, Winter.PropertyName() is "WINTER", and
Spring.String() is "Season.SPRING".

# Registries

Sealed sets register with a [Registry], keyed by a unique registration
name. [Default] is the conventional process-wide registry; construct a
fresh Registry with [NewRegistry] when isolation matters, as in tests.
*/
package enumerate
