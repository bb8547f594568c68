package gridmap

import (
	"errors"
	"sync/atomic"
)

var ErrReleaseNotHeld = errors.New("write already ended, partition not held")

// WriteRef is a live reference into the backing buffer, valid from a
// successful BeginWrite until End. The partition stays held for that whole
// interval: every other goroutine mapped to it blocks or times out until
// End runs.
type WriteRef[T any] struct {
	grid      *Grid[T]
	partition int
	id        int64 // session ID carried through the begin/end log events
	cell      *T
	ended     atomic.Bool
}

// BeginWrite acquires the partition and hands back a live reference to the
// cell at (row, column). End must be called exactly once on every exit
// path; a ref that is never ended starves every goroutine mapped to the
// partition. Prefer Update, which cannot leak the lock.
func (g *Grid[T]) BeginWrite(row, column, partition int, tout Timeout) (*WriteRef[T], error) {
	if err := g.validate(row, column, partition); err != nil {
		return nil, err
	}
	if err := g.guard.acquire(partition, tout); err != nil {
		return nil, err
	}
	ref := &WriteRef[T]{
		grid:      g,
		partition: partition,
		id:        g.node.Generate().Int64(),
		cell:      &g.cells[g.index(row, column)],
	}
	g.logger.Debug("write begin",
		"session", ref.id, "row", row, "column", column, "partition", partition)
	return ref, nil
}

// Cell returns the live cell pointer, or nil once the ref has ended.
func (r *WriteRef[T]) Cell() *T {
	if r.ended.Load() {
		return nil
	}
	return r.cell
}

// End releases the partition and invalidates the ref. Exactly one End per
// BeginWrite: a second call is a caller error, surfaced as
// ErrReleaseNotHeld without touching the mutex.
func (r *WriteRef[T]) End() error {
	if !r.ended.CompareAndSwap(false, true) {
		r.grid.logger.Error("write ended twice", "session", r.id, "partition", r.partition)
		return ErrReleaseNotHeld
	}
	r.cell = nil
	r.grid.logger.Debug("write end", "session", r.id, "partition", r.partition)
	r.grid.guard.release(r.partition)
	return nil
}

// Update runs fn against the live cell under the partition lock and always
// releases it, on fn errors and panics alike. It is the scoped form of
// BeginWrite/End with no release discipline left to the caller.
func (g *Grid[T]) Update(row, column, partition int, tout Timeout, fn func(*T) error) error {
	ref, err := g.BeginWrite(row, column, partition, tout)
	if err != nil {
		return err
	}
	defer ref.End()
	return fn(ref.cell)
}
