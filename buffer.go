package gridmap

import (
	"unsafe"

	"gridmap/mmap"
)

// allocBuffer reserves the row-major cell buffer, either on the Go heap or
// inside an anonymous mmap region. Arena cells must be pointer-free: the
// garbage collector never scans the mapped pages.
func (g *Grid[T]) allocBuffer(arena bool) error {
	n := g.rows * g.columns
	size := int(unsafe.Sizeof(*new(T))) * n
	if !arena || size == 0 {
		g.cells = make([]T, n)
		return nil
	}
	b, err := mmap.Alloc(size)
	if err != nil {
		return err
	}
	// cells are addressed by (row, column), not swept in order
	if err := mmap.Advise(b, true); err != nil {
		_ = mmap.Free(b)
		return err
	}
	g.arena = b
	/* #nosec G103 */
	g.cells = unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
	return nil
}

func freeArena(b []byte) error {
	return mmap.Free(b)
}
