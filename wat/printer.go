package wat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/ir"
)

// Config controls rendering. The zero value is the canonical
// monochrome form.
type Config struct {
	// Color turns on ANSI highlighting. The color channel is
	// non-semantic: stripping the escapes yields exactly the
	// monochrome rendering.
	Color bool

	// Indent is the per-depth indentation unit. Empty means two
	// spaces.
	Indent string

	// FormatFloat renders float payloads. Nil means the shortest
	// round-trip decimal form. The leading-dot corrections ("." to
	// "0.", "-." to "-0.") are applied to the result either way.
	FormatFloat func(float64) string
}

// Printer renders IR as the 2015 text format. It is immutable after
// construction and safe to share: all per-call state lives in the
// emitter each Print method creates.
//
// Printing is read-only but fail-fast. A tree that violates a print
// contract (an operator without a mnemonic, a bad access shape, a
// node outside the taxonomy) panics with *errors.Error; the returned
// error reports writer failures only.
type Printer struct {
	indent      string
	formatFloat func(float64) string
	styles      styleSet
}

// NewPrinter creates a printer from cfg
func NewPrinter(cfg Config) *Printer {
	p := &Printer{
		indent:      cfg.Indent,
		formatFloat: cfg.FormatFloat,
		styles:      newStyleSet(cfg.Color),
	}
	if p.indent == "" {
		p.indent = "  "
	}
	if p.formatFloat == nil {
		p.formatFloat = func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return p
}

// PrintModule writes the canonical text of m, trailing newline
// included.
func (p *Printer) PrintModule(w io.Writer, m *ir.Module) error {
	e := &emitter{p: p, w: w}
	e.module(m)
	return e.err
}

// PrintFunction writes the rendering of f
func (p *Printer) PrintFunction(w io.Writer, f *ir.Function) error {
	e := &emitter{p: p, w: w}
	e.function(f)
	return e.err
}

// PrintExpression writes the rendering of expr
func (p *Printer) PrintExpression(w io.Writer, expr ir.Expression) error {
	e := &emitter{p: p, w: w}
	e.expr(expr)
	return e.err
}

// PrintImport writes the rendering of imp. Module output suppresses
// the import section; this renders one entry explicitly.
func (p *Printer) PrintImport(w io.Writer, imp *ir.Import) error {
	e := &emitter{p: p, w: w}
	e.importEntry(imp)
	return e.err
}

// PrintFunctionType writes ft as a full type declaration when full is
// set, or as the bare signature fragment (leading space included)
// when not.
func (p *Printer) PrintFunctionType(w io.Writer, ft *ir.FunctionType, full bool) error {
	e := &emitter{p: p, w: w}
	e.functionType(ft, full)
	return e.err
}

// PrintLiteral writes the bare literal text without parentheses, for
// example "i32.const 7".
func (p *Printer) PrintLiteral(w io.Writer, l ir.Literal) error {
	e := &emitter{p: p, w: w}
	e.styled(p.styles.minor, e.literalText(l))
	return e.err
}

// emitter is the per-call print state: output writer, current depth,
// and the first write error, which suppresses all further output.
type emitter struct {
	p     *Printer
	w     io.Writer
	depth int
	err   error
}

func (e *emitter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *emitter) styled(style lipgloss.Style, s string) {
	e.write(style.Render(s))
}

// opening writes the node delimiter and its styled keyword. The
// delimiter stays uncolored; only the keyword carries the style.
func (e *emitter) opening(style lipgloss.Style, keyword string) {
	e.write("(")
	e.styled(style, keyword)
}

func (e *emitter) name(n ir.Name) {
	e.write(n.String())
}

// quoted writes a string field: the quotes stay plain, the content is
// styled.
func (e *emitter) quoted(s string) {
	e.write("\"")
	e.styled(e.p.styles.str, s)
	e.write("\"")
}

func (e *emitter) indent() {
	e.write(strings.Repeat(e.p.indent, e.depth))
}

// incIndent ends the current line and opens a nested region.
func (e *emitter) incIndent() {
	e.write("\n")
	e.depth++
}

// decIndent closes a nested region with its delimiter aligned to the
// depth the region was opened at.
func (e *emitter) decIndent() {
	e.depth--
	e.indent()
	e.write(")")
}

func (e *emitter) fullLine(expr ir.Expression) {
	e.indent()
	e.expr(expr)
	e.write("\n")
}

func (e *emitter) floatText(v float64) string {
	s := e.p.formatFloat(v)
	if strings.HasPrefix(s, ".") {
		return "0" + s
	}
	if strings.HasPrefix(s, "-.") {
		return "-0" + s[1:]
	}
	return s
}

func (e *emitter) literalText(l ir.Literal) string {
	switch l.Type() {
	case ir.TypeI32:
		return "i32.const " + strconv.FormatInt(int64(l.I32()), 10)
	case ir.TypeI64:
		return "i64.const " + strconv.FormatInt(l.I64(), 10)
	case ir.TypeF32:
		return "f32.const " + e.floatText(float64(l.F32()))
	case ir.TypeF64:
		return "f64.const " + e.floatText(l.F64())
	default:
		panic(errors.InvalidType(errors.PhasePrint, "Literal", "untyped literal"))
	}
}

// accessMnemonic builds a load or store mnemonic: inferred value type,
// dot, kind, width marker for sub-word accesses, and for loads only a
// signedness suffix. Width validation happens here so raw-built nodes
// fail the same way builder-checked ones would.
func (e *emitter) accessMnemonic(node, kind string, bytes uint32, isFloat, signed, withSign bool) string {
	switch bytes {
	case 1, 2, 4, 8:
	default:
		panic(errors.InvalidType(errors.PhasePrint, node, "invalid access width %d", bytes))
	}

	mn := ir.InferType(bytes, isFloat).String() + "." + kind
	if bytes < 4 {
		if bytes == 1 {
			mn += "8"
		} else {
			mn += "16"
		}
		if withSign {
			if signed {
				mn += "_s"
			} else {
				mn += "_u"
			}
		}
	}
	return mn
}

func (e *emitter) checkOffset(node string, offset uint32) {
	if offset != 0 {
		panic(errors.InvalidType(errors.PhasePrint, node, "nonzero offset %d", offset))
	}
}

// expr dispatches over the closed taxonomy. A variant this switch
// does not know is fatal.
func (e *emitter) expr(expr ir.Expression) {
	switch n := expr.(type) {
	case *ir.Nop:
		e.write("(")
		e.styled(e.p.styles.minor, "nop")
		e.write(")")
	case *ir.Block:
		e.block(n)
	case *ir.If:
		e.ifExpr(n)
	case *ir.Loop:
		e.loop(n)
	case *ir.Label:
		e.opening(e.p.styles.op, "label ")
		e.name(n.Name)
		e.write(")")
	case *ir.Break:
		e.breakExpr(n)
	case *ir.Switch:
		e.switchExpr(n)
	case *ir.Call:
		e.opening(e.p.styles.op, "call ")
		e.callBody(n.Target, n.Operands)
	case *ir.CallImport:
		e.opening(e.p.styles.op, "call_import ")
		e.callBody(n.Target, n.Operands)
	case *ir.CallIndirect:
		e.callIndirect(n)
	case *ir.GetLocal:
		e.opening(e.p.styles.op, "get_local ")
		e.name(n.Name)
		e.write(")")
	case *ir.SetLocal:
		e.opening(e.p.styles.op, "set_local ")
		e.name(n.Name)
		e.incIndent()
		e.fullLine(n.Value)
		e.decIndent()
	case *ir.Load:
		e.load(n)
	case *ir.Store:
		e.store(n)
	case *ir.Const:
		e.write("(")
		e.styled(e.p.styles.minor, e.literalText(n.Value))
		e.write(")")
	case *ir.Unary:
		mn := n.Type().String() + "." + mnemonic(unaryMnemonics, "Unary", n.Op)
		e.opening(e.p.styles.op, mn)
		e.incIndent()
		e.fullLine(n.Value)
		e.decIndent()
	case *ir.Binary:
		mn := n.Type().String() + "." + mnemonic(binaryMnemonics, "Binary", n.Op)
		e.opening(e.p.styles.op, mn)
		e.incIndent()
		e.fullLine(n.Left)
		e.fullLine(n.Right)
		e.decIndent()
	case *ir.Compare:
		mn := n.InputType.String() + "." + mnemonic(relationalMnemonics, "Compare", n.Op)
		e.opening(e.p.styles.op, mn)
		e.incIndent()
		e.fullLine(n.Left)
		e.fullLine(n.Right)
		e.decIndent()
	case *ir.Convert:
		e.opening(e.p.styles.op, mnemonic(convertMnemonics, "Convert", n.Op))
		e.incIndent()
		e.fullLine(n.Value)
		e.decIndent()
	case *ir.Host:
		e.host(n)
	default:
		panic(errors.Unmapped(errors.PhasePrint, "Printer", fmt.Sprintf("%T", expr)))
	}
}

func (e *emitter) block(n *ir.Block) {
	e.opening(e.p.styles.op, "block")
	if n.Name.IsSet() {
		e.write(" ")
		e.name(n.Name)
	}
	e.incIndent()
	for _, item := range n.List {
		e.fullLine(item)
	}
	e.decIndent()
}

func (e *emitter) ifExpr(n *ir.If) {
	e.opening(e.p.styles.op, "if")
	e.incIndent()
	e.fullLine(n.Condition)
	e.fullLine(n.IfTrue)
	if n.IfFalse != nil {
		e.fullLine(n.IfFalse)
	}
	e.decIndent()
}

func (e *emitter) loop(n *ir.Loop) {
	e.opening(e.p.styles.op, "loop")
	if n.Out.IsSet() {
		e.write(" ")
		e.name(n.Out)
		if n.In.IsSet() {
			e.write(" ")
			e.name(n.In)
		}
	}
	e.incIndent()
	e.fullLine(n.Body)
	e.decIndent()
}

// breakExpr always opens a region, so a bare break still closes on
// its own line.
func (e *emitter) breakExpr(n *ir.Break) {
	e.opening(e.p.styles.op, "break ")
	e.name(n.Name)
	e.incIndent()
	if n.Condition != nil {
		e.fullLine(n.Condition)
	}
	if n.Value != nil {
		e.fullLine(n.Value)
	}
	e.decIndent()
}

func (e *emitter) switchExpr(n *ir.Switch) {
	e.opening(e.p.styles.op, "switch ")
	e.name(n.Name)
	e.incIndent()
	e.fullLine(n.Value)
	for i := range n.Cases {
		e.switchCase(&n.Cases[i])
	}
	if n.Default != nil {
		e.indent()
		e.opening(e.p.styles.op, "default")
		e.incIndent()
		e.fullLine(n.Default)
		e.decIndent()
		e.write("\n")
	}
	e.decIndent()
}

func (e *emitter) switchCase(c *ir.SwitchCase) {
	e.indent()
	e.opening(e.p.styles.op, "case ")
	e.write("(")
	e.styled(e.p.styles.minor, e.literalText(c.Value))
	e.write(")")
	e.incIndent()
	if c.Body != nil {
		e.fullLine(c.Body)
	}
	if c.Fallthrough {
		e.indent()
		e.styled(e.p.styles.minor, "fallthrough")
		e.write("\n")
	}
	e.decIndent()
	e.write("\n")
}

// callBody finishes a call form: inline close with no operands, one
// line per operand otherwise.
func (e *emitter) callBody(target ir.Name, operands []ir.Expression) {
	e.name(target)
	if len(operands) == 0 {
		e.write(")")
		return
	}
	e.incIndent()
	for _, op := range operands {
		e.fullLine(op)
	}
	e.decIndent()
}

func (e *emitter) callIndirect(n *ir.CallIndirect) {
	e.opening(e.p.styles.op, "call_indirect ")
	e.name(n.FuncType.Name)
	e.incIndent()
	e.fullLine(n.Target)
	for _, op := range n.Operands {
		e.fullLine(op)
	}
	e.decIndent()
}

func (e *emitter) load(n *ir.Load) {
	e.checkOffset("Load", n.Offset)
	mn := e.accessMnemonic("Load", "load", n.Bytes, n.Float, n.Signed, true)
	e.opening(e.p.styles.op, mn)
	e.write(" align=" + strconv.FormatUint(uint64(n.Align), 10))
	e.incIndent()
	e.fullLine(n.Ptr)
	e.decIndent()
}

func (e *emitter) store(n *ir.Store) {
	e.checkOffset("Store", n.Offset)
	mn := e.accessMnemonic("Store", "store", n.Bytes, n.Float, false, false)
	e.opening(e.p.styles.op, mn)
	e.write(" align=" + strconv.FormatUint(uint64(n.Align), 10))
	e.incIndent()
	e.fullLine(n.Ptr)
	e.fullLine(n.Value)
	e.decIndent()
}

func (e *emitter) host(n *ir.Host) {
	e.write("(")
	e.styled(e.p.styles.op, mnemonic(hostMnemonics, "Host", n.Op))
	if len(n.Operands) == 0 {
		e.write(")")
		return
	}
	e.incIndent()
	for _, op := range n.Operands {
		e.fullLine(op)
	}
	e.decIndent()
}

// functionType renders the signature fragment shared by imports and
// type declarations: nothing at all for a void niladic signature,
// otherwise space-led (param ...) and (result ...) groups.
func (e *emitter) functionType(ft *ir.FunctionType, full bool) {
	if full {
		e.opening(e.p.styles.op, "type")
		e.write(" ")
		e.name(ft.Name)
		e.write(" (func")
	}
	if len(ft.Params) > 0 {
		e.write(" (")
		e.styled(e.p.styles.minor, "param")
		for _, p := range ft.Params {
			e.write(" " + p.String())
		}
		e.write(")")
	}
	if ft.Result != ir.TypeNone {
		e.write(" (")
		e.styled(e.p.styles.minor, "result ")
		e.write(ft.Result.String())
		e.write(")")
	}
	if full {
		e.write("))")
	}
}

func (e *emitter) function(f *ir.Function) {
	e.opening(e.p.styles.major, "func ")
	e.name(f.Name)
	for _, p := range f.Params {
		e.write(" (")
		e.styled(e.p.styles.minor, "param ")
		e.name(p.Name)
		e.write(" " + p.Type.String() + ")")
	}
	if f.Result != ir.TypeNone {
		e.write(" (")
		e.styled(e.p.styles.minor, "result ")
		e.write(f.Result.String() + ")")
	}
	e.incIndent()
	for _, l := range f.Locals {
		e.indent()
		e.write("(")
		e.styled(e.p.styles.minor, "local ")
		e.name(l.Name)
		e.write(" " + l.Type.String() + ")\n")
	}
	e.fullLine(f.Body)
	e.decIndent()
}

func (e *emitter) importEntry(imp *ir.Import) {
	e.opening(e.p.styles.op, "import ")
	e.name(imp.Name)
	e.write(" ")
	e.quoted(string(imp.Module))
	e.write(" ")
	e.quoted(string(imp.Base))
	e.functionType(&imp.FuncType, false)
	e.write(")")
}

func (e *emitter) exportEntry(exp *ir.Export) {
	e.opening(e.p.styles.op, "export ")
	e.quoted(string(exp.Name))
	e.write(" ")
	e.name(exp.Value)
	e.write(")")
}

func (e *emitter) table(t *ir.Table) {
	e.opening(e.p.styles.op, "table")
	for _, n := range t.Names {
		e.write(" ")
		e.name(n)
	}
	e.write(")")
}

// module renders the declaration sections in canonical order: memory,
// sorted function types, exports, the table when non-empty, then
// function definitions. Imports are tracked in the model but not
// re-emitted.
func (e *emitter) module(m *ir.Module) {
	e.opening(e.p.styles.major, "module")
	e.incIndent()

	e.indent()
	e.opening(e.p.styles.op, "memory")
	e.write(" " + strconv.FormatUint(uint64(m.Memory), 10) + ")\n")

	for _, name := range m.FunctionTypeNames() {
		e.indent()
		e.functionType(m.FunctionTypes[name], true)
		e.write("\n")
	}
	for _, exp := range m.Exports {
		e.indent()
		e.exportEntry(exp)
		e.write("\n")
	}
	if len(m.Table.Names) > 0 {
		e.indent()
		e.table(&m.Table)
		e.write("\n")
	}
	for _, f := range m.Functions {
		e.indent()
		e.function(f)
		e.write("\n")
	}

	e.decIndent()
	e.write("\n")
}
