// Package dispatch builds the ordered type dispatch table used by the encoder.
//
// Every registered entry names a type, the set of its ancestor types, a
// runtime predicate and a handler. Build orders the entries so that every
// type precedes all of its registered ancestors, so a value accepted by
// several predicates always reaches its most specific handler:
//
//	ancestor graph            dispatch order
//	bool -> int -> long       bool, int, long, ...
//
// Ancestors may name types that are never registered (an abstract root,
// for instance); they take part in the ordering and are then filtered out.
// Types unrelated by ancestry keep their registration order, so when two
// unrelated predicates accept the same value the earlier registration wins.
//
// The table is immutable after Build and safe for concurrent Lookup.
//
// This package is internal to the encoder.
package dispatch
