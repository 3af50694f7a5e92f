package ir

import (
	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/errors"
)

// Builder allocates and validates expression nodes. Every node comes
// from the arena handed to NewBuilder, and each constructor derives
// the node's output type from its operands, so a finished tree needs
// no separate typing pass.
//
// Constructors treat bad inputs as construction bugs and panic with
// *errors.Error. Callers that want a typed failure instead can run
// CheckOperand or CheckAccess first. The raw path stays open for
// tools building shapes the constructors do not cover: allocate with
// arena.Alloc and fill fields directly.
type Builder struct {
	arena *arena.Arena
}

// NewBuilder returns a Builder allocating from a
func NewBuilder(a *arena.Arena) *Builder {
	return &Builder{arena: a}
}

// Arena returns the arena nodes are allocated from
func (b *Builder) Arena() *arena.Arena {
	return b.arena
}

// CheckOperand verifies that e can serve as a typed operand: non-nil
// and carrying a concrete value type.
func CheckOperand(e Expression) error {
	return checkOperand("operand", e)
}

// CheckAccess verifies a memory access shape: a width of one, two,
// four, or eight bytes and a zero offset. Nonzero offsets are not
// part of this dialect.
func CheckAccess(bytes, offset uint32) error {
	return checkAccess("access", bytes, offset)
}

func checkOperand(node string, e Expression) error {
	if e == nil {
		return errors.InvalidType(errors.PhaseBuild, node, "nil operand")
	}
	if e.Type() == TypeNone {
		return errors.InvalidType(errors.PhaseBuild, node, "operand yields no value")
	}
	return nil
}

func checkAccess(node string, bytes, offset uint32) error {
	switch bytes {
	case 1, 2, 4, 8:
	default:
		return errors.InvalidType(errors.PhaseBuild, node, "invalid access width %d", bytes)
	}
	if offset != 0 {
		return errors.InvalidType(errors.PhaseBuild, node, "nonzero offset %d", offset)
	}
	return nil
}

func mustOperand(node string, e Expression) {
	if err := checkOperand(node, e); err != nil {
		panic(err)
	}
}

func mustOperands(node string, list []Expression) {
	for _, e := range list {
		mustOperand(node, e)
	}
}

func mustPresent(node string, e Expression) {
	if e == nil {
		panic(errors.InvalidType(errors.PhaseBuild, node, "nil child"))
	}
}

func mustAccess(node string, bytes, offset uint32) {
	if err := checkAccess(node, bytes, offset); err != nil {
		panic(err)
	}
}

// Nop allocates a no-op
func (b *Builder) Nop() *Nop {
	return arena.Alloc[Nop](b.arena)
}

// Block allocates a block holding list, labeled when name is set.
// Blocks are statement-shaped until a type is set explicitly.
func (b *Builder) Block(name Name, list ...Expression) *Block {
	e := arena.Alloc[Block](b.arena)
	e.Name = name
	e.List = append(e.List, list...)
	return e
}

// If allocates a conditional. The condition must yield a value;
// ifFalse may be nil.
func (b *Builder) If(condition, ifTrue, ifFalse Expression) *If {
	mustOperand("If", condition)
	mustPresent("If", ifTrue)
	e := arena.Alloc[If](b.arena)
	e.Condition = condition
	e.IfTrue = ifTrue
	e.IfFalse = ifFalse
	return e
}

// Loop allocates a loop around body with optional break targets
func (b *Builder) Loop(out, in Name, body Expression) *Loop {
	mustPresent("Loop", body)
	e := arena.Alloc[Loop](b.arena)
	e.Out = out
	e.In = in
	e.Body = body
	return e
}

// Label allocates a named position marker
func (b *Builder) Label(name Name) *Label {
	e := arena.Alloc[Label](b.arena)
	e.Name = name
	return e
}

// Break allocates a break to target. Condition and value are both
// optional.
func (b *Builder) Break(target Name, condition, value Expression) *Break {
	e := arena.Alloc[Break](b.arena)
	e.Name = target
	e.Condition = condition
	e.Value = value
	return e
}

// Switch allocates a switch over value
func (b *Builder) Switch(name Name, value Expression, cases []SwitchCase, def Expression) *Switch {
	mustOperand("Switch", value)
	e := arena.Alloc[Switch](b.arena)
	e.Name = name
	e.Value = value
	e.Cases = append(e.Cases, cases...)
	e.Default = def
	return e
}

// Call allocates a direct call. The result type is the callee's,
// TypeNone for void calls.
func (b *Builder) Call(target Name, result Type, operands ...Expression) *Call {
	mustOperands("Call", operands)
	e := arena.Alloc[Call](b.arena)
	e.Target = target
	e.Operands = append(e.Operands, operands...)
	e.SetType(result)
	return e
}

// CallImport allocates a call to an imported function
func (b *Builder) CallImport(target Name, result Type, operands ...Expression) *CallImport {
	mustOperands("CallImport", operands)
	e := arena.Alloc[CallImport](b.arena)
	e.Target = target
	e.Operands = append(e.Operands, operands...)
	e.SetType(result)
	return e
}

// CallIndirect allocates an indirect call through funcType. The
// result type comes from the signature.
func (b *Builder) CallIndirect(funcType *FunctionType, target Expression, operands ...Expression) *CallIndirect {
	if funcType == nil {
		panic(errors.InvalidType(errors.PhaseBuild, "CallIndirect", "nil function type"))
	}
	mustOperand("CallIndirect", target)
	mustOperands("CallIndirect", operands)
	e := arena.Alloc[CallIndirect](b.arena)
	e.FuncType = funcType
	e.Target = target
	e.Operands = append(e.Operands, operands...)
	e.SetType(funcType.Result)
	return e
}

// GetLocal allocates a read of the named local with its declared type
func (b *Builder) GetLocal(name Name, typ Type) *GetLocal {
	if typ == TypeNone {
		panic(errors.InvalidType(errors.PhaseBuild, "GetLocal", "local %s has no value type", name))
	}
	e := arena.Alloc[GetLocal](b.arena)
	e.Name = name
	e.SetType(typ)
	return e
}

// SetLocal allocates a write of the named local. The node yields the
// stored value, so its type is the value's.
func (b *Builder) SetLocal(name Name, value Expression) *SetLocal {
	mustOperand("SetLocal", value)
	e := arena.Alloc[SetLocal](b.arena)
	e.Name = name
	e.Value = value
	e.SetType(value.Type())
	return e
}

// Load allocates a memory read. The output type is inferred from the
// width and the float flag.
func (b *Builder) Load(bytes uint32, signed, isFloat bool, offset, align uint32, ptr Expression) *Load {
	mustAccess("Load", bytes, offset)
	mustOperand("Load", ptr)
	e := arena.Alloc[Load](b.arena)
	e.Bytes = bytes
	e.Signed = signed
	e.Float = isFloat
	e.Offset = offset
	e.Align = align
	e.Ptr = ptr
	e.SetType(InferType(bytes, isFloat))
	return e
}

// Store allocates a memory write. Like SetLocal it yields the stored
// value, at the access width's value type.
func (b *Builder) Store(bytes uint32, isFloat bool, offset, align uint32, ptr, value Expression) *Store {
	mustAccess("Store", bytes, offset)
	mustOperand("Store", ptr)
	mustOperand("Store", value)
	e := arena.Alloc[Store](b.arena)
	e.Bytes = bytes
	e.Float = isFloat
	e.Offset = offset
	e.Align = align
	e.Ptr = ptr
	e.Value = value
	e.SetType(InferType(bytes, isFloat))
	return e
}

// Const allocates a constant. The literal must be typed.
func (b *Builder) Const(value Literal) *Const {
	if value.Type() == TypeNone {
		panic(errors.InvalidType(errors.PhaseBuild, "Const", "untyped literal"))
	}
	e := arena.Alloc[Const](b.arena)
	e.Value = value
	return e
}

// Unary allocates a unary operation. The output type equals the
// operand type.
func (b *Builder) Unary(op UnaryOp, value Expression) *Unary {
	mustOperand("Unary", value)
	e := arena.Alloc[Unary](b.arena)
	e.Op = op
	e.Value = value
	e.SetType(value.Type())
	return e
}

// Binary allocates a binary operation. The output type equals the
// left operand's type.
func (b *Builder) Binary(op BinaryOp, left, right Expression) *Binary {
	mustOperand("Binary", left)
	mustOperand("Binary", right)
	e := arena.Alloc[Binary](b.arena)
	e.Op = op
	e.Left = left
	e.Right = right
	e.SetType(left.Type())
	return e
}

// Compare allocates a comparison of two inputType operands
func (b *Builder) Compare(op RelationalOp, inputType Type, left, right Expression) *Compare {
	if inputType == TypeNone {
		panic(errors.InvalidType(errors.PhaseBuild, "Compare", "no input type"))
	}
	mustOperand("Compare", left)
	mustOperand("Compare", right)
	e := arena.Alloc[Compare](b.arena)
	e.Op = op
	e.InputType = inputType
	e.Left = left
	e.Right = right
	return e
}

// Convert allocates a representation change. Only the conversions the
// text dialect can express carry a result type here: signed and
// unsigned i32 to f64, and f64 truncation to i32. Tools that need
// other operators build the node raw and set the type themselves.
func (b *Builder) Convert(op ConvertOp, value Expression) *Convert {
	mustOperand("Convert", value)
	result := convertResult(op)
	e := arena.Alloc[Convert](b.arena)
	e.Op = op
	e.Value = value
	e.SetType(result)
	return e
}

func convertResult(op ConvertOp) Type {
	switch op {
	case ConvertSInt32, ConvertUInt32:
		return TypeF64
	case TruncSFloat64:
		return TypeI32
	default:
		panic(errors.Unmapped(errors.PhaseBuild, "Convert", op))
	}
}

// Host allocates an embedder operation. Every host operation yields
// i32.
func (b *Builder) Host(op HostOp, operands ...Expression) *Host {
	mustOperands("Host", operands)
	e := arena.Alloc[Host](b.arena)
	e.Op = op
	e.Operands = append(e.Operands, operands...)
	e.SetType(TypeI32)
	return e
}

// FunctionType allocates a named signature
func (b *Builder) FunctionType(name Name, result Type, params ...Type) *FunctionType {
	ft := arena.Alloc[FunctionType](b.arena)
	ft.Name = name
	ft.Result = result
	ft.Params = append(ft.Params, params...)
	return ft
}

// Function allocates a function definition
func (b *Builder) Function(name Name, result Type, params, locals []NameType, body Expression) *Function {
	mustPresent("Function", body)
	f := arena.Alloc[Function](b.arena)
	f.Name = name
	f.Result = result
	f.Params = append(f.Params, params...)
	f.Locals = append(f.Locals, locals...)
	f.Body = body
	return f
}

// Import allocates an import entry
func (b *Builder) Import(name, module, base Name, funcType FunctionType) *Import {
	imp := arena.Alloc[Import](b.arena)
	imp.Name = name
	imp.Module = module
	imp.Base = base
	imp.FuncType = funcType
	return imp
}

// Export allocates an export entry
func (b *Builder) Export(name, value Name) *Export {
	e := arena.Alloc[Export](b.arena)
	e.Name = name
	e.Value = value
	return e
}
