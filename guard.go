package gridmap

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// accessGuard owns the ordered partition mutex set and is the single path
// every accessor takes to it. It clamps the infinite-timeout sentinel,
// counts acquire traffic and emits the observation events the debug prints
// of old firmware builds used to cover.
type accessGuard struct {
	locks  []PartitionMutex
	logger *slog.Logger
	waits  *WaitStats

	acquires atomic.Int64
	timeouts atomic.Int64
	releases atomic.Int64
}

func newAccessGuard(partitions int, newMutex func() PartitionMutex, logger *slog.Logger, sampleCap int) *accessGuard {
	gd := &accessGuard{
		locks:  make([]PartitionMutex, partitions),
		logger: logger,
		waits:  NewWaitStats(sampleCap),
	}
	for p := range gd.locks {
		gd.locks[p] = newMutex()
		gd.locks[p].Init()
	}
	return gd
}

// acquire blocks the calling goroutine until the partition is held or the
// bound expires. A tout at or beyond Forever is reduced below the sentinel
// first, so a request for "as long as possible" never becomes an unbounded
// wait at the primitive.
func (gd *accessGuard) acquire(partition int, tout Timeout) error {
	if tout >= Forever {
		tout = Forever - 1
	}

	gd.logger.Debug("partition wait", "partition", partition, "timeout_ticks", uint32(tout))
	gd.acquires.Add(1)

	start := time.Now()
	ok := gd.locks[partition].Wait(tout)
	gd.waits.Observe(time.Since(start))

	if !ok {
		gd.timeouts.Add(1)
		gd.logger.Warn("partition wait timed out", "partition", partition, "timeout_ticks", uint32(tout))
		return ErrLockTimeout
	}
	return nil
}

// release gives the partition up. Valid only while held; the primitive
// faults loudly otherwise.
func (gd *accessGuard) release(partition int) {
	gd.releases.Add(1)
	gd.logger.Debug("partition release", "partition", partition)
	gd.locks[partition].Release()
}

// Stats is a point-in-time view of guard activity.
type Stats struct {
	Acquires int64 // acquire attempts, including the ones that timed out
	Timeouts int64
	Releases int64
	Wait     WaitSnapshot
}

func (gd *accessGuard) stats() Stats {
	return Stats{
		Acquires: gd.acquires.Load(),
		Timeouts: gd.timeouts.Load(),
		Releases: gd.releases.Load(),
		Wait:     gd.waits.Snapshot(),
	}
}
