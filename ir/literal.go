package ir

import (
	"math"

	"github.com/wippyai/wasm-ir/errors"
)

// Literal is a typed constant value. The type tag selects which view
// of the payload is meaningful; reading another view is a
// type-contract violation. The zero Literal is untyped and cannot
// back a Const node.
type Literal struct {
	bits uint64
	typ  Type
}

// Int32 returns an i32 literal
func Int32(v int32) Literal {
	return Literal{bits: uint64(uint32(v)), typ: TypeI32}
}

// Int64 returns an i64 literal
func Int64(v int64) Literal {
	return Literal{bits: uint64(v), typ: TypeI64}
}

// Float32 returns an f32 literal
func Float32(v float32) Literal {
	return Literal{bits: uint64(math.Float32bits(v)), typ: TypeF32}
}

// Float64 returns an f64 literal
func Float64(v float64) Literal {
	return Literal{bits: math.Float64bits(v), typ: TypeF64}
}

// Type returns the literal's type tag
func (l Literal) Type() Type {
	return l.typ
}

// I32 returns the 32-bit integer payload
func (l Literal) I32() int32 {
	l.view(TypeI32)
	return int32(uint32(l.bits))
}

// I64 returns the 64-bit integer payload
func (l Literal) I64() int64 {
	l.view(TypeI64)
	return int64(l.bits)
}

// F32 returns the 32-bit float payload
func (l Literal) F32() float32 {
	l.view(TypeF32)
	return math.Float32frombits(uint32(l.bits))
}

// F64 returns the 64-bit float payload
func (l Literal) F64() float64 {
	l.view(TypeF64)
	return math.Float64frombits(l.bits)
}

func (l Literal) view(want Type) {
	if l.typ != want {
		panic(errors.InvalidType(errors.PhaseBuild, "Literal",
			"reading %s view of %s literal", want, l.typ))
	}
}
