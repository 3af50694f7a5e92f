package wat

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-ir/arena"
	"github.com/wippyai/wasm-ir/ir"
)

// buildGoldenModule assembles a small counting-loop module touching every
// module section plus the common expression shapes.
func buildGoldenModule(a *arena.Arena) *ir.Module {
	b := ir.NewBuilder(a)

	m := ir.NewModule()
	m.AddFunctionType(b.FunctionType("ii", ir.TypeI32, ir.TypeI32, ir.TypeI32))
	m.AddImport(b.Import("log", "env", "log", ir.FunctionType{Params: []ir.Type{ir.TypeI32}}))
	m.AddExport(b.Export("run", "run"))
	m.Table.Names = append(m.Table.Names, "run")

	getI := func() ir.Expression { return b.GetLocal("i", ir.TypeI32) }
	body := b.Block("exit",
		b.SetLocal("i", b.Const(ir.Int32(0))),
		b.Loop("done", "next",
			b.Block("",
				b.SetLocal("i", b.Binary(ir.Add, getI(), b.Const(ir.Int32(1)))),
				b.Break("next", b.Compare(ir.LtS, ir.TypeI32, getI(), b.GetLocal("n", ir.TypeI32)), nil),
			),
		),
		getI(),
	)
	m.AddFunction(b.Function("run", ir.TypeI32,
		[]ir.NameType{{Name: "n", Type: ir.TypeI32}},
		[]ir.NameType{{Name: "i", Type: ir.TypeI32}},
		body))
	return m
}

func TestGoldenModule(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	var buf bytes.Buffer
	err := Fprint(&buf, buildGoldenModule(arena.New()))
	require.NoError(t, err)

	g.Assert(t, "module", buf.Bytes())
}

func TestGoldenModuleStable(t *testing.T) {
	a := arena.New()
	m := buildGoldenModule(a)

	first := SprintModule(m)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, SprintModule(m))
	}

	// A hook-less rewrite pass must not disturb the rendering either.
	w := &ir.Walker{}
	for _, fn := range m.Functions {
		w.WalkFunction(fn)
	}
	require.Equal(t, first, SprintModule(m))
}
