package gridmap

// ReadInto copies the cell at (row, column) into dst under the partition
// lock, releasing the lock before returning. The copy is private in both
// directions: later writes to the grid never reach dst, and the caller
// mutating dst never reaches the grid.
//
// The lock is held only for the copy, which favors short hold times over
// cross-call consistency: one call is internally consistent, a sequence of
// calls is not atomic as a whole.
//
// Index violations and a nil dst return ErrInvalidIndex without touching
// the lock; expiry of tout returns ErrLockTimeout with dst untouched.
func (g *Grid[T]) ReadInto(row, column, partition int, tout Timeout, dst *T) error {
	if dst == nil {
		return ErrInvalidIndex
	}
	if err := g.validate(row, column, partition); err != nil {
		return err
	}
	if err := g.guard.acquire(partition, tout); err != nil {
		return err
	}
	*dst = g.cells[g.index(row, column)]
	g.guard.release(partition)
	return nil
}

// Read is ReadInto with the destination returned by value.
func (g *Grid[T]) Read(row, column, partition int, tout Timeout) (T, error) {
	var out T
	err := g.ReadInto(row, column, partition, tout, &out)
	return out, err
}
