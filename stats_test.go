package gridmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitStats_Observe(t *testing.T) {
	w := NewWaitStats(16)

	for _, d := range []time.Duration{
		3 * time.Millisecond,
		time.Millisecond,
		5 * time.Millisecond,
		2 * time.Millisecond,
	} {
		w.Observe(d)
	}

	assert.Equal(t, 5*time.Millisecond, w.Max())
	assert.Equal(t, 2*time.Millisecond, w.Quantile(0.5))
	assert.Equal(t, 5*time.Millisecond, w.Quantile(1))
	assert.Equal(t, time.Duration(0), w.Quantile(0))

	snap := w.Snapshot()
	assert.Equal(t, uint64(4), snap.Count)
	assert.Equal(t, 4, snap.Samples)
	assert.Equal(t, 5*time.Millisecond, snap.Max)
	assert.Equal(t, 2*time.Millisecond, snap.P50)
	assert.Equal(t, (3+1+5+2)*time.Millisecond/4, snap.Mean)
}

func TestWaitStats_Empty(t *testing.T) {
	w := NewWaitStats(4)

	assert.Equal(t, time.Duration(0), w.Max())
	assert.Equal(t, time.Duration(0), w.Quantile(0.99))

	snap := w.Snapshot()
	assert.Equal(t, uint64(0), snap.Count)
	assert.Equal(t, 0, snap.Samples)
}

// The window is bounded: the oldest sample is evicted, the total count keeps
// growing.
func TestWaitStats_Eviction(t *testing.T) {
	w := NewWaitStats(3)

	w.Observe(100 * time.Millisecond) // evicted first
	w.Observe(time.Millisecond)
	w.Observe(2 * time.Millisecond)
	w.Observe(3 * time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, w.Max(), "evicted sample still ranked")

	snap := w.Snapshot()
	assert.Equal(t, uint64(4), snap.Count)
	assert.Equal(t, 3, snap.Samples)
}

func TestWaitStats_DuplicateDurations(t *testing.T) {
	w := NewWaitStats(8)

	for i := 0; i < 5; i++ {
		w.Observe(time.Millisecond)
	}

	snap := w.Snapshot()
	assert.Equal(t, 5, snap.Samples)
	assert.Equal(t, time.Millisecond, snap.Max)
}

func TestGrid_StatsWait(t *testing.T) {
	g := newTestGrid(t, 4, 2, PartitionsSingle)

	for i := 0; i < 5; i++ {
		_, err := g.Read(0, 0, 0, 100)
		assert.Nil(t, err)
	}

	stats := g.Stats()
	assert.Equal(t, int64(5), stats.Acquires)
	assert.Equal(t, uint64(5), stats.Wait.Count)
}
