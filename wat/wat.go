package wat

import (
	"io"
	"strings"

	"github.com/wippyai/wasm-ir/ir"
)

// defaultPrinter backs the package-level conveniences. The zero
// Config is the canonical monochrome form.
var defaultPrinter = NewPrinter(Config{})

// Sprint returns the canonical rendering of expr
func Sprint(expr ir.Expression) string {
	var sb strings.Builder
	_ = defaultPrinter.PrintExpression(&sb, expr)
	return sb.String()
}

// SprintModule returns the canonical rendering of m
func SprintModule(m *ir.Module) string {
	var sb strings.Builder
	_ = defaultPrinter.PrintModule(&sb, m)
	return sb.String()
}

// Fprint writes the canonical rendering of m to w
func Fprint(w io.Writer, m *ir.Module) error {
	return defaultPrinter.PrintModule(w, m)
}
