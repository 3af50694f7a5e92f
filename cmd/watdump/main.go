package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/ir"
	"github.com/wippyai/wasm-ir/wat"
)

func main() {
	var (
		colorMode = flag.String("color", "auto", "Colorize output: auto, always, never")
		indent    = flag.Int("indent", 2, "Spaces per nesting level")
		verbose   = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	colorOn := false
	switch *colorMode {
	case "always":
		colorOn = true
	case "never":
	case "auto":
		colorOn = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		fmt.Fprintf(os.Stderr, "Unknown -color value %q\n", *colorMode)
		fmt.Fprintln(os.Stderr, "Usage: watdump [-color auto|always|never] [-indent n] [-v]")
		os.Exit(1)
	}

	if *indent < 1 {
		fmt.Fprintln(os.Stderr, "Usage: watdump [-color auto|always|never] [-indent n] [-v]")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		arena.SetLogger(logger.Named("arena"))
		ir.SetLogger(logger.Named("ir"))
	}

	if err := dump(colorOn, strings.Repeat(" ", *indent)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(colorOn bool, indent string) error {
	a := arena.New()
	m := sampleModule(a)

	p := wat.NewPrinter(wat.Config{
		Color:  colorOn,
		Indent: indent,
	})
	return p.PrintModule(os.Stdout, m)
}

// sampleModule builds a demonstration module covering every expression
// shape the printer knows how to lay out.
func sampleModule(a *arena.Arena) *ir.Module {
	b := ir.NewBuilder(a)

	m := ir.NewModule()
	m.AddFunctionType(b.FunctionType("ii", ir.TypeI32, ir.TypeI32, ir.TypeI32))
	m.AddImport(b.Import("print", "spectest", "print", ir.FunctionType{Params: []ir.Type{ir.TypeI32}}))
	m.AddExport(b.Export("main", "main"))
	m.Table.Names = append(m.Table.Names, "main", "scale")

	getN := func() ir.Expression { return b.GetLocal("n", ir.TypeI32) }
	getSum := func() ir.Expression { return b.GetLocal("sum", ir.TypeI32) }

	// Sum the words at addresses n, n-1, ... while n stays positive,
	// spill the total to memory and report it through the import.
	body := b.Block("top",
		b.SetLocal("sum", b.Const(ir.Int32(0))),
		b.If(
			b.Compare(ir.GtS, ir.TypeI32, getN(), b.Const(ir.Int32(0))),
			b.Loop("done", "again",
				b.Block("",
					b.SetLocal("sum", b.Binary(ir.Add, getSum(),
						b.Load(4, false, false, 0, 4, getN()))),
					b.SetLocal("n", b.Binary(ir.Sub, getN(), b.Const(ir.Int32(1)))),
					b.Break("again", getN(), nil),
				),
			),
			nil,
		),
		b.Store(4, false, 0, 4, b.Const(ir.Int32(16)), getSum()),
		b.CallImport("print", ir.TypeNone, getSum()),
		getSum(),
	)
	m.AddFunction(b.Function("main", ir.TypeI32,
		[]ir.NameType{{Name: "n", Type: ir.TypeI32}},
		[]ir.NameType{{Name: "sum", Type: ir.TypeI32}},
		body))

	// floor(x) * f64(memory_size)
	scale := b.Binary(ir.Mul,
		b.Unary(ir.Floor, b.GetLocal("x", ir.TypeF64)),
		b.Convert(ir.ConvertSInt32, b.Host(ir.MemorySize)))
	m.AddFunction(b.Function("scale", ir.TypeF64,
		[]ir.NameType{{Name: "x", Type: ir.TypeF64}},
		nil,
		scale))

	return m
}
