package wasmir

import (
	"io"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/ir"
)

// Parser turns dialect source text into a module. Implementations
// allocate every node from the caller's arena.
type Parser interface {
	Parse(src []byte, a *arena.Arena) (*ir.Module, error)
}

// Encoder serializes a module to a binary form.
type Encoder interface {
	Encode(w io.Writer, m *ir.Module) error
}

// Decoder reads a binary form back into a module, allocating nodes
// from the caller's arena.
type Decoder interface {
	Decode(r io.Reader, a *arena.Arena) (*ir.Module, error)
}

// Validator checks a module without mutating it.
type Validator interface {
	Validate(m *ir.Module) error
}
