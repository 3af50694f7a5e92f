package ir

import (
	"testing"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
)

func newTestBuilder() *Builder {
	return NewBuilder(arena.New())
}

func TestBuilderDerivedTypes(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		name string
		expr Expression
		want Type
	}{
		{"nop", b.Nop(), TypeNone},
		{"block", b.Block("b", b.Nop()), TypeNone},
		{"label", b.Label("l"), TypeNone},
		{"const i32", b.Const(Int32(7)), TypeI32},
		{"const f64", b.Const(Float64(0.5)), TypeF64},
		{"get_local", b.GetLocal("x", TypeF32), TypeF32},
		{"set_local", b.SetLocal("x", b.Const(Int64(1))), TypeI64},
		{"unary", b.Unary(Neg, b.Const(Float64(1))), TypeF64},
		{"binary", b.Binary(Add, b.Const(Int32(1)), b.Const(Int32(2))), TypeI32},
		{"compare", b.Compare(Lt, TypeF64, b.Const(Float64(1)), b.Const(Float64(2))), TypeI32},
		{"convert to f64", b.Convert(ConvertSInt32, b.Const(Int32(1))), TypeF64},
		{"convert to i32", b.Convert(TruncSFloat64, b.Const(Float64(1))), TypeI32},
		{"load narrow", b.Load(1, true, false, 0, 1, b.Const(Int32(0))), TypeI32},
		{"load f32", b.Load(4, false, true, 0, 4, b.Const(Int32(0))), TypeF32},
		{"load i64", b.Load(8, false, false, 0, 8, b.Const(Int32(0))), TypeI64},
		{"store f64", b.Store(8, true, 0, 8, b.Const(Int32(0)), b.Const(Float64(1))), TypeF64},
		{"call", b.Call("f", TypeI64), TypeI64},
		{"call void", b.Call("g", TypeNone), TypeNone},
		{"call_import", b.CallImport("print", TypeNone, b.Const(Int32(1))), TypeNone},
		{"host", b.Host(MemorySize), TypeI32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Type(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBuilderCallIndirect(t *testing.T) {
	b := newTestBuilder()
	ft := b.FunctionType("sig", TypeF32, TypeI32)

	e := b.CallIndirect(ft, b.Const(Int32(0)), b.Const(Int32(1)))
	if e.Type() != TypeF32 {
		t.Errorf("expected result type from signature, got %s", e.Type())
	}

	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.CallIndirect(nil, b.Const(Int32(0)))
	})
}

func TestBuilderRejectsValuelessOperands(t *testing.T) {
	b := newTestBuilder()

	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Binary(Add, b.Nop(), b.Const(Int32(1)))
	})
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Unary(Clz, nil)
	})
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.If(b.Nop(), b.Nop(), nil)
	})
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.SetLocal("x", b.Block(""))
	})
}

func TestBuilderRejectsBadAccess(t *testing.T) {
	b := newTestBuilder()
	addr := func() Expression { return b.Const(Int32(0)) }

	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Load(3, false, false, 0, 1, addr())
	})
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Load(5, false, false, 0, 1, addr())
	})
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Load(4, false, false, 16, 4, addr())
	})
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Store(3, false, 0, 1, addr(), b.Const(Int32(1)))
	})
}

func TestBuilderRejectsUntypedConst(t *testing.T) {
	b := newTestBuilder()
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Const(Literal{})
	})
}

func TestBuilderConvertUnmappedResult(t *testing.T) {
	b := newTestBuilder()
	wantPanic(t, errors.PhaseBuild, errors.KindUnmapped, func() {
		b.Convert(WrapInt64, b.Const(Int64(1)))
	})
}

func TestBuilderGetLocalNeedsType(t *testing.T) {
	b := newTestBuilder()
	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.GetLocal("x", TypeNone)
	})
}

func TestBuilderBreakOptionalChildren(t *testing.T) {
	b := newTestBuilder()

	br := b.Break("out", nil, nil)
	if br.Condition != nil || br.Value != nil {
		t.Error("expected bare break to keep nil children")
	}
	if br.Type() != TypeNone {
		t.Errorf("expected none type, got %s", br.Type())
	}
}

func TestBuilderBlockCopiesList(t *testing.T) {
	b := newTestBuilder()
	items := []Expression{b.Nop(), b.Nop()}

	blk := b.Block("b", items...)
	items[0] = nil
	if blk.List[0] == nil {
		t.Error("block list should not alias the caller's slice")
	}
}

func TestCheckOperand(t *testing.T) {
	b := newTestBuilder()

	if err := CheckOperand(b.Const(Int32(1))); err != nil {
		t.Errorf("expected nil error for typed operand, got %v", err)
	}

	err := CheckOperand(nil)
	if !errors.Match(err, errors.PhaseBuild, errors.KindInvalidType) {
		t.Errorf("expected invalid_type error for nil, got %v", err)
	}

	err = CheckOperand(b.Nop())
	if !errors.Match(err, errors.PhaseBuild, errors.KindInvalidType) {
		t.Errorf("expected invalid_type error for valueless operand, got %v", err)
	}
}

func TestCheckAccess(t *testing.T) {
	for _, bytes := range []uint32{1, 2, 4, 8} {
		if err := CheckAccess(bytes, 0); err != nil {
			t.Errorf("width %d: expected nil error, got %v", bytes, err)
		}
	}
	for _, bytes := range []uint32{0, 3, 5, 9} {
		err := CheckAccess(bytes, 0)
		if !errors.Match(err, errors.PhaseBuild, errors.KindInvalidType) {
			t.Errorf("width %d: expected invalid_type error, got %v", bytes, err)
		}
	}
	err := CheckAccess(4, 8)
	if !errors.Match(err, errors.PhaseBuild, errors.KindInvalidType) {
		t.Errorf("expected invalid_type error for nonzero offset, got %v", err)
	}
}

func TestBuilderSwitch(t *testing.T) {
	b := newTestBuilder()

	sw := b.Switch("s", b.GetLocal("x", TypeI32),
		[]SwitchCase{
			{Value: Int32(0), Body: b.Nop()},
			{Value: Int32(1), Body: b.Break("s", nil, nil), Fallthrough: true},
		},
		b.Nop())
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
	if !sw.Cases[1].Fallthrough {
		t.Error("expected fallthrough flag to survive")
	}

	wantPanic(t, errors.PhaseBuild, errors.KindInvalidType, func() {
		b.Switch("s", b.Nop(), nil, nil)
	})
}
