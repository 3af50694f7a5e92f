// Package wat renders IR trees as the 2015 pre-standard WebAssembly
// text format.
//
// The output is the parenthesized, keyword-prefixed form the tools of
// that era consumed: one child per line, two-space indentation by
// default, and every composite node's closing delimiter aligned to
// the depth the node opened at. Output is deterministic byte for
// byte; map-backed module sections are emitted in sorted name order,
// so printing the same tree twice yields identical bytes.
//
// Basic usage:
//
//	p := wat.NewPrinter(wat.Config{})
//	if err := p.PrintModule(os.Stdout, mod); err != nil {
//		...
//	}
//
// or, for a single expression:
//
//	fmt.Println(wat.Sprint(expr))
//
// A Config with Color set highlights keywords with ANSI escapes. The
// color channel is non-semantic: stripping the escapes yields exactly
// the monochrome rendering. Float constants go through
// Config.FormatFloat, with the two leading-dot corrections ("." to
// "0.", "-." to "-0.") applied to its output either way.
//
// Mnemonic coverage matches the dialect rather than the operator
// enums: an operator outside the printable set is fatal when a tree
// containing it is printed. Imports are tracked in Module but
// suppressed in module output; PrintImport renders one explicitly.
package wat
