package gridmap

import (
	"sync"
	"time"

	"github.com/gansidui/skiplist"
)

type waitSample struct {
	d   time.Duration
	seq uint64
}

// Less orders samples by duration; the sequence number breaks ties so every
// sample is a distinct skiplist node.
func (s *waitSample) Less(other interface{}) bool {
	o := other.(*waitSample)
	if s.d != o.d {
		return s.d < o.d
	}
	return s.seq < o.seq
}

// WaitStats keeps a bounded, duration-ordered window of acquire waits. The
// skiplist holds the window sorted for rank queries; the fifo remembers
// insertion order so the oldest sample is the one evicted.
type WaitStats struct {
	mu   sync.Mutex
	skl  *skiplist.SkipList
	fifo []*waitSample
	cap  int
	seq  uint64

	count uint64
	total time.Duration
}

func NewWaitStats(cap int) *WaitStats {
	if cap < 1 {
		cap = defaultWaitSampleCap
	}
	return &WaitStats{
		skl: skiplist.New(),
		cap: cap,
	}
}

func (w *WaitStats) Observe(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := &waitSample{d: d, seq: w.seq}
	w.seq++
	w.skl.Insert(s)
	w.fifo = append(w.fifo, s)
	if len(w.fifo) > w.cap {
		w.skl.Delete(w.fifo[0])
		w.fifo = w.fifo[1:]
	}
	w.count++
	w.total += d
}

// Max returns the longest wait in the current window.
func (w *WaitStats) Max() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rank(w.skl.Len())
}

// Quantile returns the wait at quantile p in (0, 1] of the current window.
func (w *WaitStats) Quantile(p float64) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.skl.Len()
	if n == 0 || p <= 0 || p > 1 {
		return 0
	}
	rank := int(p * float64(n))
	if rank < 1 {
		rank = 1
	}
	return w.rank(rank)
}

func (w *WaitStats) rank(rank int) time.Duration {
	if rank < 1 || rank > w.skl.Len() {
		return 0
	}
	e := w.skl.GetElementByRank(rank)
	if e == nil {
		return 0
	}
	return e.Value.(*waitSample).d
}

// WaitSnapshot is a point-in-time summary of the wait window.
type WaitSnapshot struct {
	Count   uint64 // total observed waits, beyond the window
	Samples int    // samples currently in the window
	Mean    time.Duration
	P50     time.Duration
	P99     time.Duration
	Max     time.Duration
}

func (w *WaitStats) Snapshot() WaitSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := WaitSnapshot{
		Count:   w.count,
		Samples: w.skl.Len(),
	}
	if w.count > 0 {
		snap.Mean = w.total / time.Duration(w.count)
	}
	if n := w.skl.Len(); n > 0 {
		snap.P50 = w.rank(max(n/2, 1))
		snap.P99 = w.rank(max(n*99/100, 1))
		snap.Max = w.rank(n)
	}
	return snap
}
