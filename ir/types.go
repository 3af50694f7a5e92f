package ir

import "github.com/wippyai/wasm-ir/errors"

// Type is the value type of an expression, local, or literal. The
// type system is closed: four concrete value types plus TypeNone for
// nodes that produce no value.
type Type uint8

const (
	TypeNone Type = iota
	TypeI32
	TypeI64
	TypeF32
	TypeF64
)

// String returns the text-format spelling of the type
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeF32:
		return "f32"
	case TypeF64:
		return "f64"
	default:
		return "unknown"
	}
}

// Size returns the width of t in bytes. TypeNone has no width; asking
// for one is a type-contract violation.
func (t Type) Size() uint32 {
	switch t {
	case TypeI32, TypeF32:
		return 4
	case TypeI64, TypeF64:
		return 8
	default:
		panic(errors.InvalidType(errors.PhaseBuild, "Type", "no size for %s", t))
	}
}

// Float reports whether t is a floating-point type
func (t Type) Float() bool {
	return t == TypeF32 || t == TypeF64
}

// InferType returns the value type implied by a memory access width.
// Sub-word widths widen to i32 whatever the float flag says; widths
// of four and eight bytes select between the integer and the float
// type of that width. Any other width is a contract violation.
func InferType(bytes uint32, isFloat bool) Type {
	switch bytes {
	case 1, 2:
		return TypeI32
	case 4:
		if isFloat {
			return TypeF32
		}
		return TypeI32
	case 8:
		if isFloat {
			return TypeF64
		}
		return TypeI64
	default:
		panic(errors.InvalidType(errors.PhaseBuild, "InferType", "invalid access width %d", bytes))
	}
}

// Name is a symbolic identifier for functions, types, locals, and
// branch targets. The zero Name means absent.
type Name string

// IsSet reports whether the name is present
func (n Name) IsSet() bool {
	return n != ""
}

// String renders the name with the $ sigil the text format uses
func (n Name) String() string {
	return "$" + string(n)
}
