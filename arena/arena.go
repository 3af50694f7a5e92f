package arena

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-ir/errors"
)

// chunkBytes is the capacity budget of a single chunk. Element sizes
// are rounded up to 8 bytes and accounted against this budget, so
// every chunk of a given element type holds the same number of slots.
const chunkBytes = 10000

// Arena is a bulk allocator for IR nodes. Nodes are handed out of
// per-type chunks and never freed individually; Reset releases the
// whole population at once. Chunks never move once allocated, so a
// pointer returned by Alloc stays valid until Reset.
//
// An Arena is a single-writer resource and performs no locking.
type Arena struct {
	slabs  map[reflect.Type]any
	chunks int
}

// New creates an empty arena
func New() *Arena {
	return &Arena{slabs: make(map[reflect.Type]any)}
}

// slab holds the chunks of one element type. The map in Arena erases
// the element type; Alloc recovers it through the type parameter.
type slab[T any] struct {
	chunks [][]T
	next   int // slot index into the newest chunk
	used   int // rounded bytes consumed in the newest chunk
	unit   int // element size rounded up to 8 bytes
}

// Alloc reserves one zeroed T and returns a pointer that stays valid
// until Reset. An element whose rounded size reaches the chunk budget
// cannot be arena-allocated at all; asking for one is a capacity
// violation and Alloc panics.
func Alloc[T any](a *Arena) *T {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	s, ok := a.slabs[rt].(*slab[T])
	if !ok {
		unit := (int(rt.Size()) + 7) &^ 7
		if unit == 0 {
			unit = 8 // zero-size elements still occupy a slot
		}
		if unit >= chunkBytes {
			panic(errors.Capacity(errors.PhaseAlloc, rt.String(),
				"element size %d exceeds chunk capacity %d", unit, chunkBytes))
		}
		s = &slab[T]{unit: unit}
		a.slabs[rt] = s
	}

	if len(s.chunks) == 0 || s.used+s.unit >= chunkBytes {
		s.chunks = append(s.chunks, make([]T, chunkBytes/s.unit))
		s.next = 0
		s.used = 0
		a.chunks++
		Logger().Debug("arena chunk allocated",
			zap.String("elem", rt.String()),
			zap.Int("slots", chunkBytes/s.unit),
			zap.Int("chunks", a.chunks))
	}

	chunk := s.chunks[len(s.chunks)-1]
	p := &chunk[s.next]
	s.next++
	s.used += s.unit
	return p
}

// Reset drops every chunk at once. There is no per-node free and no
// use-after-reset detection; not letting nodes outlive their arena is
// the caller's contract.
func (a *Arena) Reset() {
	clear(a.slabs)
	a.chunks = 0
}

// ChunkCount returns the number of chunks currently held
func (a *Arena) ChunkCount() int {
	return a.chunks
}

// AllocatedBytes returns the total capacity of all held chunks
func (a *Arena) AllocatedBytes() int {
	return a.chunks * chunkBytes
}
