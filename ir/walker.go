package ir

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-ir/errors"
)

// Walker rewrites expression trees in place. Walk visits children
// before parents, writing each child's rewrite back into its parent's
// slot, then hands the node itself to the matching hook. A nil hook
// leaves the node untouched, so a transformation implements only the
// hooks it cares about.
//
// A hook sees a node whose children are already final for this walk.
// Returning a different expression replaces the node in its parent's
// slot; the replaced node stays in the arena until the arena is
// reset.
//
// One walker must not walk trees from two goroutines at once, and two
// walkers must not rewrite the same tree concurrently.
type Walker struct {
	Nop          func(*Nop) Expression
	Block        func(*Block) Expression
	If           func(*If) Expression
	Loop         func(*Loop) Expression
	Label        func(*Label) Expression
	Break        func(*Break) Expression
	Switch       func(*Switch) Expression
	Call         func(*Call) Expression
	CallImport   func(*CallImport) Expression
	CallIndirect func(*CallIndirect) Expression
	GetLocal     func(*GetLocal) Expression
	SetLocal     func(*SetLocal) Expression
	Load         func(*Load) Expression
	Store        func(*Store) Expression
	Const        func(*Const) Expression
	Unary        func(*Unary) Expression
	Binary       func(*Binary) Expression
	Compare      func(*Compare) Expression
	Convert      func(*Convert) Expression
	Host         func(*Host) Expression
}

// Walk rewrites the tree rooted at expr and returns its replacement,
// which is expr itself unless a hook substituted it. Nil passes
// through so optional children need no special casing. An expression
// outside the closed taxonomy is fatal.
func (w *Walker) Walk(expr Expression) Expression {
	if expr == nil {
		return nil
	}

	switch c := expr.(type) {
	case *Nop:
		if w.Nop != nil {
			return w.Nop(c)
		}
	case *Block:
		for i, item := range c.List {
			c.List[i] = w.Walk(item)
		}
		if w.Block != nil {
			return w.Block(c)
		}
	case *If:
		c.Condition = w.Walk(c.Condition)
		c.IfTrue = w.Walk(c.IfTrue)
		c.IfFalse = w.Walk(c.IfFalse)
		if w.If != nil {
			return w.If(c)
		}
	case *Loop:
		c.Body = w.Walk(c.Body)
		if w.Loop != nil {
			return w.Loop(c)
		}
	case *Label:
		if w.Label != nil {
			return w.Label(c)
		}
	case *Break:
		c.Condition = w.Walk(c.Condition)
		c.Value = w.Walk(c.Value)
		if w.Break != nil {
			return w.Break(c)
		}
	case *Switch:
		c.Value = w.Walk(c.Value)
		for i := range c.Cases {
			c.Cases[i].Body = w.Walk(c.Cases[i].Body)
		}
		c.Default = w.Walk(c.Default)
		if w.Switch != nil {
			return w.Switch(c)
		}
	case *Call:
		for i, op := range c.Operands {
			c.Operands[i] = w.Walk(op)
		}
		if w.Call != nil {
			return w.Call(c)
		}
	case *CallImport:
		for i, op := range c.Operands {
			c.Operands[i] = w.Walk(op)
		}
		if w.CallImport != nil {
			return w.CallImport(c)
		}
	case *CallIndirect:
		c.Target = w.Walk(c.Target)
		for i, op := range c.Operands {
			c.Operands[i] = w.Walk(op)
		}
		if w.CallIndirect != nil {
			return w.CallIndirect(c)
		}
	case *GetLocal:
		if w.GetLocal != nil {
			return w.GetLocal(c)
		}
	case *SetLocal:
		c.Value = w.Walk(c.Value)
		if w.SetLocal != nil {
			return w.SetLocal(c)
		}
	case *Load:
		c.Ptr = w.Walk(c.Ptr)
		if w.Load != nil {
			return w.Load(c)
		}
	case *Store:
		c.Ptr = w.Walk(c.Ptr)
		c.Value = w.Walk(c.Value)
		if w.Store != nil {
			return w.Store(c)
		}
	case *Const:
		if w.Const != nil {
			return w.Const(c)
		}
	case *Unary:
		c.Value = w.Walk(c.Value)
		if w.Unary != nil {
			return w.Unary(c)
		}
	case *Binary:
		c.Left = w.Walk(c.Left)
		c.Right = w.Walk(c.Right)
		if w.Binary != nil {
			return w.Binary(c)
		}
	case *Compare:
		c.Left = w.Walk(c.Left)
		c.Right = w.Walk(c.Right)
		if w.Compare != nil {
			return w.Compare(c)
		}
	case *Convert:
		c.Value = w.Walk(c.Value)
		if w.Convert != nil {
			return w.Convert(c)
		}
	case *Host:
		for i, op := range c.Operands {
			c.Operands[i] = w.Walk(op)
		}
		if w.Host != nil {
			return w.Host(c)
		}
	default:
		panic(errors.Unmapped(errors.PhaseWalk, "Walker.Walk", fmt.Sprintf("%T", expr)))
	}

	return expr
}

// WalkFunction rewrites fn's body, replacing the root if a hook
// substitutes it.
func (w *Walker) WalkFunction(fn *Function) {
	Logger().Debug("walking function", zap.String("name", string(fn.Name)))
	fn.Body = w.Walk(fn.Body)
}
