package ir

// Expression is one node of a function body. The set of implementing
// types is closed: the twenty variants in this file and nothing else.
// Consumers dispatch with a type switch whose default panics, so a
// variant a switch does not know surfaces at the first node it
// reaches instead of as silently skipped work.
type Expression interface {
	// Type returns the node's output type: what the node leaves
	// behind for its parent, not what it consumes. Statement-shaped
	// nodes report TypeNone.
	Type() Type

	exprNode()
}

// exprType carries the settable output type most variants share.
// Variants whose output type is structural (Nop, Label, Const,
// Compare) define Type directly instead.
type exprType struct {
	typ Type
}

// Type returns the node's output type
func (e *exprType) Type() Type { return e.typ }

// SetType records the node's output type
func (e *exprType) SetType(t Type) { e.typ = t }

// Nop performs nothing and produces nothing.
type Nop struct{}

func (*Nop) Type() Type { return TypeNone }
func (*Nop) exprNode()  {}

// Block evaluates its list in order. An optional name makes the block
// a break target.
type Block struct {
	exprType
	Name Name
	List []Expression
}

func (*Block) exprNode() {}

// If evaluates Condition, then exactly one of the two arms. IfFalse
// may be nil for a one-armed conditional.
type If struct {
	exprType
	Condition Expression
	IfTrue    Expression
	IfFalse   Expression
}

func (*If) exprNode() {}

// Loop runs Body repeatedly. Out names the target a break leaves the
// loop through, In the target that restarts it; In is only meaningful
// when Out is set.
type Loop struct {
	exprType
	Out  Name
	In   Name
	Body Expression
}

func (*Loop) exprNode() {}

// Label marks a named position in the tree.
type Label struct {
	Name Name
}

func (*Label) Type() Type { return TypeNone }
func (*Label) exprNode()  {}

// Break transfers control to the named target. An optional Condition
// makes the break conditional; an optional Value carries a result to
// the target.
type Break struct {
	exprType
	Name      Name
	Condition Expression
	Value     Expression
}

func (*Break) exprNode() {}

// SwitchCase pairs one literal with its body. Fallthrough continues
// into the next case instead of leaving the switch.
type SwitchCase struct {
	Value       Literal
	Body        Expression
	Fallthrough bool
}

// Switch dispatches on Value over literal cases, with an optional
// default body.
type Switch struct {
	exprType
	Name    Name
	Value   Expression
	Cases   []SwitchCase
	Default Expression
}

func (*Switch) exprNode() {}

// Call invokes a function defined in the same module.
type Call struct {
	exprType
	Target   Name
	Operands []Expression
}

func (*Call) exprNode() {}

// CallImport invokes an imported function.
type CallImport struct {
	exprType
	Target   Name
	Operands []Expression
}

func (*CallImport) exprNode() {}

// CallIndirect invokes a function chosen at run time: Target
// evaluates to a table index, and FuncType names the signature the
// callee must have.
type CallIndirect struct {
	exprType
	FuncType *FunctionType
	Target   Expression
	Operands []Expression
}

func (*CallIndirect) exprNode() {}

// GetLocal reads a local or parameter.
type GetLocal struct {
	exprType
	Name Name
}

func (*GetLocal) exprNode() {}

// SetLocal writes a local or parameter and yields the stored value.
type SetLocal struct {
	exprType
	Name  Name
	Value Expression
}

func (*SetLocal) exprNode() {}

// Load reads Bytes bytes of linear memory at the address Ptr
// evaluates to. Sub-word loads widen to i32, using Signed to pick the
// extension; Float selects between the integer and float type at the
// word widths. Offset must currently be zero.
type Load struct {
	exprType
	Bytes  uint32
	Signed bool
	Float  bool
	Offset uint32
	Align  uint32
	Ptr    Expression
}

func (*Load) exprNode() {}

// Store writes Value to linear memory at the address Ptr evaluates
// to. Stores carry no signedness: a sub-word store just truncates.
// Offset must currently be zero.
type Store struct {
	exprType
	Bytes  uint32
	Float  bool
	Offset uint32
	Align  uint32
	Ptr    Expression
	Value  Expression
}

func (*Store) exprNode() {}

// Const yields a literal. Its output type is the literal's tag.
type Const struct {
	Value Literal
}

func (c *Const) Type() Type { return c.Value.Type() }
func (*Const) exprNode()    {}

// Unary applies Op to one operand. The output type equals the operand
// type.
type Unary struct {
	exprType
	Op    UnaryOp
	Value Expression
}

func (*Unary) exprNode() {}

// Binary applies Op to two operands of the same type. The output type
// equals the operand type.
type Binary struct {
	exprType
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (*Binary) exprNode() {}

// Compare applies Op to two operands of InputType. The output is
// structurally i32 whatever the inputs are, so the node has no
// settable type.
type Compare struct {
	Op        RelationalOp
	InputType Type
	Left      Expression
	Right     Expression
}

func (*Compare) Type() Type { return TypeI32 }
func (*Compare) exprNode()  {}

// Convert changes the representation of its operand according to Op.
type Convert struct {
	exprType
	Op    ConvertOp
	Value Expression
}

func (*Convert) exprNode() {}

// Host invokes an operation provided by the embedder.
type Host struct {
	exprType
	Op       HostOp
	Operands []Expression
}

func (*Host) exprNode() {}

var (
	_ Expression = (*Nop)(nil)
	_ Expression = (*Block)(nil)
	_ Expression = (*If)(nil)
	_ Expression = (*Loop)(nil)
	_ Expression = (*Label)(nil)
	_ Expression = (*Break)(nil)
	_ Expression = (*Switch)(nil)
	_ Expression = (*Call)(nil)
	_ Expression = (*CallImport)(nil)
	_ Expression = (*CallIndirect)(nil)
	_ Expression = (*GetLocal)(nil)
	_ Expression = (*SetLocal)(nil)
	_ Expression = (*Load)(nil)
	_ Expression = (*Store)(nil)
	_ Expression = (*Const)(nil)
	_ Expression = (*Unary)(nil)
	_ Expression = (*Binary)(nil)
	_ Expression = (*Compare)(nil)
	_ Expression = (*Convert)(nil)
	_ Expression = (*Host)(nil)
)
