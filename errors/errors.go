package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in IR processing the error occurred
type Phase string

const (
	PhaseAlloc Phase = "alloc" // arena allocation
	PhaseBuild Phase = "build" // node and module construction
	PhaseWalk  Phase = "walk"  // tree traversal
	PhasePrint Phase = "print" // text emission
)

// Kind categorizes the error
type Kind string

const (
	// KindCapacity reports an element too large for one arena chunk.
	KindCapacity Kind = "capacity"

	// KindUnmapped reports a value outside a closed mapping: an
	// operator with no text mnemonic, or an expression variant a
	// dispatch switch does not know.
	KindUnmapped Kind = "unmapped"

	// KindInvalidType reports a type-contract violation: a valueless
	// operand, a bad memory access shape, or a literal read through
	// the wrong view.
	KindInvalidType Kind = "invalid_type"
)

// Error is the structured error type used throughout the library.
//
// The IR core treats every violation as evidence of a construction bug
// and panics with *Error rather than returning it. Callers that prefer
// a typed failure can recover the panic and inspect it with Match, or
// run the ir Check functions before building.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Node   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Node != "" {
		b.WriteString(" at ")
		b.WriteString(e.Node)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Match reports whether v is a *Error with the given phase and kind.
// It takes any value so recovered panics can be checked directly.
func Match(v any, phase Phase, kind Kind) bool {
	err, ok := v.(*Error)
	if !ok {
		return false
	}
	return err.Phase == phase && err.Kind == kind
}

// Convenience constructors for the three failure categories

// Capacity creates a chunk capacity error
func Capacity(phase Phase, node string, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCapacity,
		Node:   node,
		Detail: sprintf(detail, args),
	}
}

// Unmapped creates an error for a value outside a closed mapping
func Unmapped(phase Phase, node string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnmapped,
		Node:   node,
		Value:  value,
		Detail: fmt.Sprintf("no mapping for %v", value),
	}
}

// InvalidType creates a type-contract violation error
func InvalidType(phase Phase, node string, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidType,
		Node:   node,
		Detail: sprintf(detail, args),
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

func sprintf(msg string, args []any) string {
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
