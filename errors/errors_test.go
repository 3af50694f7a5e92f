package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBuild,
				Kind:   KindInvalidType,
				Node:   "Unary",
				Detail: "operand yields no value",
			},
			want: "[build] invalid_type at Unary: operand yields no value",
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseWalk,
				Kind:  KindUnmapped,
			},
			want: "[walk] unmapped",
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhasePrint,
				Kind:   KindInvalidType,
				Detail: "bad access",
				Cause:  errors.New("underlying error"),
			},
			want: "[print] invalid_type: bad access (caused by: underlying error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := tt.err.Error(); msg != tt.want {
				t.Errorf("Error() = %q, want %q", msg, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseAlloc,
		Kind:  KindCapacity,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause through Unwrap")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseBuild,
		Kind:  KindInvalidType,
		Node:  "Load",
	}

	if !err.Is(&Error{Phase: PhaseBuild, Kind: KindInvalidType}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhasePrint, Kind: KindInvalidType}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseBuild, Kind: KindUnmapped}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseBuild, Kind: KindInvalidType}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestMatch(t *testing.T) {
	err := InvalidType(PhaseBuild, "Const", "untyped literal")

	if !Match(err, PhaseBuild, KindInvalidType) {
		t.Error("Match should accept matching phase and kind")
	}
	if Match(err, PhasePrint, KindInvalidType) {
		t.Error("Match should reject different phase")
	}
	if Match(err, PhaseBuild, KindCapacity) {
		t.Error("Match should reject different kind")
	}
	if Match(nil, PhaseBuild, KindInvalidType) {
		t.Error("Match should reject nil")
	}
	if Match("plain panic", PhaseBuild, KindInvalidType) {
		t.Error("Match should reject non-Error values")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Capacity", func(t *testing.T) {
		err := Capacity(PhaseAlloc, "ir.Block", "element size %d exceeds chunk capacity %d", 10008, 10000)
		if err.Kind != KindCapacity {
			t.Errorf("Kind = %v, want %v", err.Kind, KindCapacity)
		}
		if !strings.Contains(err.Detail, "10008") {
			t.Errorf("Detail = %q, should contain size", err.Detail)
		}
	})

	t.Run("Unmapped", func(t *testing.T) {
		err := Unmapped(PhasePrint, "Unary", "Popcnt")
		if err.Kind != KindUnmapped {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnmapped)
		}
		if err.Value != "Popcnt" {
			t.Errorf("Value = %v, want Popcnt", err.Value)
		}
		if !strings.Contains(err.Detail, "Popcnt") {
			t.Errorf("Detail = %q, should name the value", err.Detail)
		}
	})

	t.Run("InvalidType", func(t *testing.T) {
		err := InvalidType(PhaseBuild, "access", "invalid width %d", 3)
		if err.Kind != KindInvalidType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidType)
		}
		if err.Node != "access" {
			t.Errorf("Node = %q, want access", err.Node)
		}
		if err.Detail != "invalid width 3" {
			t.Errorf("Detail = %q, want 'invalid width 3'", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("disk error")
		err := Wrap(PhasePrint, KindInvalidType, cause, "write output")
		if !errors.Is(err, cause) {
			t.Error("wrapped cause should be reachable")
		}
		if err.Phase != PhasePrint {
			t.Errorf("Phase = %v, want %v", err.Phase, PhasePrint)
		}
	})
}
