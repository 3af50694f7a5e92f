package arena

import (
	"testing"

	"github.com/wippyai/wasm-ir/errors"
)

type node struct {
	tag   int64
	left  *node
	right *node
}

// wideNode rounds to 40 bytes, so 249 of them fit in one chunk.
type wideNode struct {
	a, b, c, d, e int64
}

func TestAllocZeroed(t *testing.T) {
	a := New()

	n := Alloc[node](a)
	if n == nil {
		t.Fatal("Alloc returned nil")
	}
	if n.tag != 0 || n.left != nil || n.right != nil {
		t.Errorf("expected zeroed node, got %+v", *n)
	}
}

func TestAllocPointerStability(t *testing.T) {
	a := New()

	// Enough allocations to force several chunks.
	const count = 3000
	ptrs := make([]*int64, count)
	for i := range ptrs {
		p := Alloc[int64](a)
		*p = int64(i)
		ptrs[i] = p
	}

	if a.ChunkCount() < 2 {
		t.Fatalf("expected growth past one chunk, got %d", a.ChunkCount())
	}
	for i, p := range ptrs {
		if *p != int64(i) {
			t.Fatalf("slot %d: expected %d, got %d", i, i, *p)
		}
	}
}

func TestChunkAccounting(t *testing.T) {
	// An 8-byte element leaves room for 1249 slots per chunk: the
	// 1250th rounded byte count would reach the budget exactly.
	t.Run("8 byte elements", func(t *testing.T) {
		a := New()
		for i := 0; i < 1249; i++ {
			Alloc[int64](a)
		}
		if a.ChunkCount() != 1 {
			t.Fatalf("expected 1 chunk after 1249 allocs, got %d", a.ChunkCount())
		}
		Alloc[int64](a)
		if a.ChunkCount() != 2 {
			t.Fatalf("expected 2 chunks after 1250 allocs, got %d", a.ChunkCount())
		}
	})

	t.Run("40 byte elements", func(t *testing.T) {
		a := New()
		for i := 0; i < 249; i++ {
			Alloc[wideNode](a)
		}
		if a.ChunkCount() != 1 {
			t.Fatalf("expected 1 chunk after 249 allocs, got %d", a.ChunkCount())
		}
		Alloc[wideNode](a)
		if a.ChunkCount() != 2 {
			t.Fatalf("expected 2 chunks after 250 allocs, got %d", a.ChunkCount())
		}
	})
}

func TestDistinctSlabsPerType(t *testing.T) {
	a := New()

	Alloc[node](a)
	Alloc[wideNode](a)
	Alloc[int64](a)

	if a.ChunkCount() != 3 {
		t.Errorf("expected one chunk per element type, got %d", a.ChunkCount())
	}
}

func TestOversizeElementPanics(t *testing.T) {
	type huge struct {
		buf [chunkBytes]byte
	}

	a := New()
	defer func() {
		r := recover()
		if !errors.Match(r, errors.PhaseAlloc, errors.KindCapacity) {
			t.Fatalf("expected capacity panic, got %v", r)
		}
	}()
	Alloc[huge](a)
}

func TestReset(t *testing.T) {
	a := New()

	for i := 0; i < 100; i++ {
		Alloc[node](a)
	}
	if a.ChunkCount() == 0 {
		t.Fatal("expected chunks before reset")
	}

	a.Reset()
	if a.ChunkCount() != 0 {
		t.Errorf("expected 0 chunks after reset, got %d", a.ChunkCount())
	}
	if a.AllocatedBytes() != 0 {
		t.Errorf("expected 0 bytes after reset, got %d", a.AllocatedBytes())
	}

	// The arena is usable again after a reset.
	n := Alloc[node](a)
	if n == nil || a.ChunkCount() != 1 {
		t.Errorf("expected a fresh chunk after reset, got %d", a.ChunkCount())
	}
}

func TestAllocatedBytes(t *testing.T) {
	a := New()
	if a.AllocatedBytes() != 0 {
		t.Fatalf("expected 0 bytes for empty arena, got %d", a.AllocatedBytes())
	}

	Alloc[node](a)
	if a.AllocatedBytes() != chunkBytes {
		t.Errorf("expected %d bytes, got %d", chunkBytes, a.AllocatedBytes())
	}
}
