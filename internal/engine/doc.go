// Package engine provides the host-side boundary the wire codec is exposed
// through: a predicate registry, a stream handle table, and the argument
// marshaling between terms and native values.
//
// The engine is deliberately minimal. It dispatches registered two-argument
// predicates, resolves stream handles, and unifies out-arguments; everything
// else belongs to the codec or the host embedding this package.
//
// A Machine is single-threaded: one goroutine owns it and its streams for
// the duration of each call.
package engine
