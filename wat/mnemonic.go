package wat

import (
	"github.com/wippyai/wasm-ir/errors"
	"github.com/wippyai/wasm-ir/ir"
)

// Text mnemonics for the operator enums. The tables are exactly as
// wide as the dialect: an operator without an entry has no text form,
// and printing one is fatal.

var unaryMnemonics = map[ir.UnaryOp]string{
	ir.Clz:   "clz",
	ir.Neg:   "neg",
	ir.Floor: "floor",
}

var binaryMnemonics = map[ir.BinaryOp]string{
	ir.Add:      "add",
	ir.Sub:      "sub",
	ir.Mul:      "mul",
	ir.DivS:     "div_s",
	ir.DivU:     "div_u",
	ir.RemS:     "rem_s",
	ir.RemU:     "rem_u",
	ir.And:      "and",
	ir.Or:       "or",
	ir.Xor:      "xor",
	ir.Shl:      "shl",
	ir.ShrU:     "shr_u",
	ir.ShrS:     "shr_s",
	ir.Div:      "div",
	ir.CopySign: "copysign",
	ir.Min:      "min",
	ir.Max:      "max",
}

var relationalMnemonics = map[ir.RelationalOp]string{
	ir.Eq:  "eq",
	ir.Ne:  "ne",
	ir.LtS: "lt_s",
	ir.LtU: "lt_u",
	ir.LeS: "le_s",
	ir.LeU: "le_u",
	ir.GtS: "gt_s",
	ir.GtU: "gt_u",
	ir.GeS: "ge_s",
	ir.GeU: "ge_u",
	ir.Lt:  "lt",
	ir.Le:  "le",
	ir.Gt:  "gt",
	ir.Ge:  "ge",
}

// convertMnemonics carry the full two-type spelling, so no prefix is
// prepended at print time.
var convertMnemonics = map[ir.ConvertOp]string{
	ir.ConvertUInt32: "f64.convert_u/i32",
	ir.ConvertSInt32: "f64.convert_s/i32",
	ir.TruncSFloat64: "i32.trunc_s/f64",
}

var hostMnemonics = map[ir.HostOp]string{
	ir.PageSize:   "page_size",
	ir.MemorySize: "memory_size",
	ir.GrowMemory: "grow_memory",
	ir.HasFeature: "has_feature",
}

func mnemonic[Op comparable](table map[Op]string, node string, op Op) string {
	m, ok := table[op]
	if !ok {
		panic(errors.Unmapped(errors.PhasePrint, node, op))
	}
	return m
}
