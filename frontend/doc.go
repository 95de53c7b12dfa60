// Package frontend declares a small PLONKish constraint-system builder.
//
// A circuit is described in two phases. Configure declares the shape: advice
// (private) and instance (public) columns, selectors, and gates, where a gate
// is a named set of polynomial identities over column queries that must vanish
// at every selector-enabled row. Synthesize assigns witness values into rows of
// those columns through a Layouter, grouped in named regions for diagnostics.
//
// Witness values are carried by Value, a maybe-known wrapper: the same
// synthesis code runs in a structure-only pass (all values unknown) and in a
// witness pass (values resolved), with Map/Zip combinators propagating
// unknown-ness.
package frontend
