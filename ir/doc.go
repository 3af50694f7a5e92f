// Package ir defines the in-memory representation of WebAssembly
// modules in the 2015 pre-standard text dialect: the value-type
// system, a closed expression taxonomy, module-level containers, a
// validating builder, and a children-first rewriting walker.
//
// # Ownership
//
// Every expression node lives in an arena.Arena. Trees are built
// once, rewritten in place, and discarded as a population when the
// arena is reset; nothing in this package frees individual nodes.
// Module containers reference nodes in the same arena but never own
// them.
//
// # Taxonomy
//
// Expression is a sealed interface over exactly twenty variants, Nop
// through Host. Consumers dispatch with a type switch; the switches
// this package owns panic on an unknown variant, so taxonomy drift
// surfaces at the first node it touches rather than as silently
// skipped work.
//
// # Construction
//
// Builder is the validating path: constructors allocate from the
// builder's arena, derive each node's output type from its operands,
// and panic with a structured *errors.Error on a contract violation.
// CheckOperand and CheckAccess expose the same rules as plain errors
// for callers that want to test inputs first. Tools that need node
// shapes the constructors rule out allocate raw with arena.Alloc and
// fill fields directly.
//
// # Rewriting
//
// Walker is the one traversal mechanism. It visits children before
// parents, writes every hook's return value into the parent's slot,
// and leaves hook-less kinds untouched. All rewriting is in place;
// replaced nodes stay in the arena until it resets.
//
// An arena and the trees built from it form a single-writer resource;
// nothing here locks.
package ir
