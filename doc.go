// Package wasmir provides an in-memory representation of the early
// WebAssembly text dialect, the s-expression AST that predates the
// standardized binary format.
//
// The library covers four concerns: arena ownership of AST nodes, a
// closed expression taxonomy with a five-value type system, a
// children-first rewriting walker, and a canonical text printer.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	wasmir/          Root package with collaborator contracts
//	├── arena/       Typed bump allocator that owns every AST node
//	├── ir/          Node taxonomy, type system, builder, walker
//	├── wat/         Canonical s-expression printer with optional color
//	└── errors/      Structured fatal error taxonomy
//
// # Quick Start
//
// Build a tree and print it:
//
//	a := arena.New()
//	b := ir.NewBuilder(a)
//
//	m := ir.NewModule()
//	m.AddFunction(b.Function("inc", ir.TypeI32,
//	    []ir.NameType{{Name: "x", Type: ir.TypeI32}}, nil,
//	    b.Binary(ir.Add, b.GetLocal("x", ir.TypeI32), b.Const(ir.Int32(1)))))
//
//	fmt.Print(wat.SprintModule(m))
//
// # Ownership Model
//
// All expression nodes live in an arena. Nodes hold plain pointers to
// children with no reference counting and no per-node destruction;
// releasing the arena releases the whole tree at once. Modules,
// functions, and the trees hanging off them must not outlive the arena
// they were built from.
//
// # Thread Safety
//
// An arena and the trees inside it belong to a single goroutine.
// Printers are immutable after construction and safe to share; distinct
// arenas may be used concurrently.
package wasmir
