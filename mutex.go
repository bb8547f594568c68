package gridmap

import "time"

// Timeout is an acquire bound expressed in ticks (see Config.Tick).
type Timeout uint32

// Forever is the reserved sentinel meaning "wait indefinitely" at the
// primitive level. Accessors never forward it unmodified: any caller value
// at or beyond the sentinel is clamped to Forever-1 first.
const Forever Timeout = 0xFFFF

// PartitionMutex is the blocking primitive guarding one partition. The
// default implementation is tick-based; tests substitute their own through
// Config.NewMutex.
type PartitionMutex interface {
	// Init prepares the mutex for use. Called exactly once, before any
	// accessor may run.
	Init()

	// Wait blocks the caller until the mutex is acquired or tout ticks
	// elapse. Returns false on timeout. Wait(0) is a try-lock and
	// Wait(Forever) blocks indefinitely.
	Wait(tout Timeout) bool

	// Release gives the mutex up. Releasing a mutex not held is a caller
	// programming error and panics.
	Release()
}

// tickMutex implements PartitionMutex over a capacity-1 token channel.
// The token being present means the mutex is free; acquiring takes it,
// releasing puts it back. Blocked waiters sit in a channel select, so the
// goroutine yields instead of spinning.
type tickMutex struct {
	ch   chan struct{}
	tick time.Duration
}

func newTickMutex(tick time.Duration) PartitionMutex {
	return &tickMutex{tick: tick}
}

func (m *tickMutex) Init() {
	m.ch = make(chan struct{}, 1)
	m.ch <- struct{}{}
}

func (m *tickMutex) Wait(tout Timeout) bool {
	if tout == Forever {
		<-m.ch
		return true
	}
	if tout == 0 {
		select {
		case <-m.ch:
			return true
		default:
			return false
		}
	}
	t := time.NewTimer(time.Duration(tout) * m.tick)
	defer t.Stop()
	select {
	case <-m.ch:
		return true
	case <-t.C:
		return false
	}
}

func (m *tickMutex) Release() {
	select {
	case m.ch <- struct{}{}:
	default:
		panic("gridmap: release of a partition mutex not held")
	}
}
