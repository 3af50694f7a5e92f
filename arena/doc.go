// Package arena provides chunked bulk allocation for IR nodes.
//
// Compilers build trees with millions of short-lived nodes that all
// die together when the module they belong to is done. The arena
// matches that lifetime: Alloc hands out zeroed slots from fixed-size
// chunks, nothing is ever freed individually, and Reset drops the
// whole population in one step.
//
// Element sizes are rounded up to 8 bytes and packed into 10000-byte
// chunks, one chunk series per element type. Chunks never move, so
// node pointers stay stable for the life of the arena; a tree can be
// rewritten in place without invalidating references held elsewhere.
//
// Usage:
//
//	a := arena.New()
//	n := arena.Alloc[ir.Block](a)
//	// ... build, walk, print ...
//	a.Reset()
//
// There is no use-after-reset detection. The contract is the usual
// arena discipline: nothing allocated from an arena may outlive it.
package arena
