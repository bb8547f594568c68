package gridmap

// Partition counts supported by a grid. The groups mirror how the hardware
// channels interleave: a single shared group, even/odd board channels, or
// even/odd plus an expansion region starting at Config.ExpansionRow.
const (
	PartitionsSingle = 1
	PartitionsDual   = 2
	PartitionsTriple = 3
)

// Partition maps a row to the index of the lock partition covering it.
//
//	Partitions / result   0      1      2
//	1                     all    -      -
//	2                     even   odd    -
//	3                     even   odd    expansion
//
// The even/odd split assumes exactly two interleaved channel groups
// alternating row by row; callers on differently wired hardware must not use
// the 2- or 3-partition policies.
//
// An out-of-range row returns 0 so the caller never indexes past the lock
// set, but the selection is not meaningful; the violation is logged at warn
// level. Pure and non-blocking.
func (g *Grid[T]) Partition(row int) int {
	if row < 0 || row >= g.rows {
		g.logger.Warn("partition selection for out-of-range row",
			"row", row, "rows", g.rows)
		return 0
	}
	return selectPartition(g.partitions, g.expansionRow, row)
}

func selectPartition(partitions, expansionRow, row int) int {
	if partitions == PartitionsSingle {
		return 0
	}
	if partitions == PartitionsTriple && row >= expansionRow {
		return 2
	}
	return row % 2
}
