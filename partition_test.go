package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_Partition(t *testing.T) {
	single := newTestGrid(t, 6, 2, PartitionsSingle)
	dual := newTestGrid(t, 6, 2, PartitionsDual)

	cfg := DefaultConfig(6, 2)
	cfg.Partitions = PartitionsTriple
	cfg.ExpansionRow = 4
	cfg.Logger = testLogger()
	triple, err := New[cell](cfg)
	require.Nil(t, err)

	for row := 0; row < 6; row++ {
		assert.Equal(t, 0, single.Partition(row), "single, row %d", row)
		assert.Equal(t, row%2, dual.Partition(row), "dual, row %d", row)
	}

	// below the expansion row the even/odd rule applies, beyond it
	// everything belongs to the expansion partition
	assert.Equal(t, 0, triple.Partition(0))
	assert.Equal(t, 1, triple.Partition(1))
	assert.Equal(t, 0, triple.Partition(2))
	assert.Equal(t, 1, triple.Partition(3))
	assert.Equal(t, 2, triple.Partition(4))
	assert.Equal(t, 2, triple.Partition(5))
}

func TestGrid_PartitionOutOfRange(t *testing.T) {
	g := newTestGrid(t, 4, 2, PartitionsDual)

	// defensive fallback, not a valid selection
	assert.Equal(t, 0, g.Partition(-1))
	assert.Equal(t, 0, g.Partition(4))
}

// Every row maps to exactly one partition and partitions cover all rows.
func TestGrid_PartitionDisjointCover(t *testing.T) {
	for _, partitions := range []int{PartitionsSingle, PartitionsDual, PartitionsTriple} {
		cfg := DefaultConfig(10, 3)
		cfg.Partitions = partitions
		cfg.ExpansionRow = 8
		cfg.Logger = testLogger()
		g, err := New[cell](cfg)
		require.Nil(t, err)

		seen := make(map[int]int)
		for row := 0; row < 10; row++ {
			p := g.Partition(row)
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, partitions)
			seen[p]++
		}
		total := 0
		for _, n := range seen {
			total += n
		}
		assert.Equal(t, 10, total)
	}
}
