// Package term provides the term representation shared by all termwire
// packages.
//
// This package contains type definitions only. All other internal packages
// import term; term imports nothing internal. This keeps the term model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Value is a sealed interface; only the kinds defined here implement it
//   - Terms are immutable except for variable binding cells
//   - Handles are opaque references resolved by the owning engine, never
//     dereferenced here
package term
