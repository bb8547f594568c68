// Package gridmap provides a fixed-size 2D grid shared between goroutines
// with mutual exclusion granted per partition of rows.
//
// Two access modes exist. Read-only access holds the partition just long
// enough to copy a cell out; other goroutines may change the grid afterwards
// without affecting the copy. Read-write access hands back a live reference
// into the grid and keeps the partition held until the caller ends the
// write, so no other goroutine can touch the partition in between.
package gridmap

import (
	"errors"
	"log/slog"
	"math/rand"
	"unsafe"

	"github.com/bwmarrin/snowflake"

	"gridmap/util"
)

var (
	ErrInvalidIndex = errors.New("row, column or partition out of range")
	ErrLockTimeout  = errors.New("partition lock not acquired within timeout")
)

// Grid is a fixed-size table of T cells shared between goroutines. Mutual
// exclusion is granted per partition, a disjoint group of rows guarded by
// one mutex, so workloads mapped to different partitions never contend.
//
// Cells are stored row-major in one contiguous buffer owned by the grid for
// its whole lifetime. Geometry is fixed at construction; there is no
// resizing and no per-cell locking.
type Grid[T any] struct {
	rows         int
	columns      int
	partitions   int
	expansionRow int

	cells []T
	arena []byte // non-nil when the buffer is mmap-backed

	guard  *accessGuard
	logger *slog.Logger
	node   *snowflake.Node // write session IDs
}

// New builds a grid from cfg. The partition mutexes are initialized here,
// exactly once; the grid must not be shared before New returns.
func New[T any](cfg Config) (*Grid[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tick := cfg.Tick
	if tick == 0 {
		tick = defaultTick
	}
	newMutex := cfg.NewMutex
	if newMutex == nil {
		newMutex = func() PartitionMutex { return newTickMutex(tick) }
	}
	sampleCap := cfg.WaitSampleCap
	if sampleCap == 0 {
		sampleCap = defaultWaitSampleCap
	}

	node, err := snowflake.NewNode(rand.Int63() % 1023)
	if err != nil {
		return nil, err
	}

	g := &Grid[T]{
		rows:         cfg.Rows,
		columns:      cfg.Columns,
		partitions:   cfg.Partitions,
		expansionRow: cfg.ExpansionRow,
		logger:       logger,
		node:         node,
	}
	if err := g.allocBuffer(cfg.Arena); err != nil {
		return nil, err
	}
	g.guard = newAccessGuard(cfg.Partitions, newMutex, logger, sampleCap)
	return g, nil
}

func (g *Grid[T]) Rows() int       { return g.rows }
func (g *Grid[T]) Columns() int    { return g.columns }
func (g *Grid[T]) Partitions() int { return g.partitions }

// Stats reports the guard counters and acquire-wait statistics collected
// since construction.
func (g *Grid[T]) Stats() Stats {
	return g.guard.stats()
}

// Close releases an arena-backed buffer. It exists for hosted teardown in
// tests; the embedded pattern is a grid living for the whole process run.
// No accessor may be in flight or started after Close.
func (g *Grid[T]) Close() error {
	if g.arena == nil {
		return nil
	}
	err := freeArena(g.arena)
	g.arena = nil
	g.cells = nil
	return err
}

// ForEachUnsafe visits every cell with its position, bypassing the
// partition locks entirely. Only safe while a single goroutine owns the
// grid, which in practice means cell initialization right after New:
//
//	g.ForEachUnsafe(func(row, column int, cell *state) {
//		cell.a = 0
//		cell.b = 1
//	})
func (g *Grid[T]) ForEachUnsafe(fn func(row, column int, cell *T)) {
	for i := range g.cells {
		fn(i/g.columns, i%g.columns, &g.cells[i])
	}
}

// Checksum hashes the raw bytes of every cell with Murmur3-128 while
// holding all partitions, giving a consistent whole-grid digest. Partitions
// are acquired in ascending order; on any timeout those already held are
// released and ErrLockTimeout is returned.
func (g *Grid[T]) Checksum(tout Timeout) ([]byte, error) {
	for p := 0; p < g.partitions; p++ {
		if err := g.guard.acquire(p, tout); err != nil {
			for q := p - 1; q >= 0; q-- {
				g.guard.release(q)
			}
			return nil, err
		}
	}
	mur := util.NewMurmur128()
	err := mur.Write(g.rawBytes())
	for p := g.partitions - 1; p >= 0; p-- {
		g.guard.release(p)
	}
	if err != nil {
		return nil, err
	}
	return mur.EncodeSum128(), nil
}

func (g *Grid[T]) index(row, column int) int {
	return row*g.columns + column
}

func (g *Grid[T]) validate(row, column, partition int) error {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return ErrInvalidIndex
	}
	if partition < 0 || partition >= g.partitions {
		return ErrInvalidIndex
	}
	return nil
}

func (g *Grid[T]) rawBytes() []byte {
	size := int(unsafe.Sizeof(*new(T)))
	/* #nosec G103 */
	return unsafe.Slice((*byte)(unsafe.Pointer(&g.cells[0])), len(g.cells)*size)
}
