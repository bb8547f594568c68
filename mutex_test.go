package gridmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickMutex_WaitRelease(t *testing.T) {
	m := newTickMutex(time.Microsecond)
	m.Init()

	require.True(t, m.Wait(100))
	m.Release()
	require.True(t, m.Wait(100))
	m.Release()
}

func TestTickMutex_TryLock(t *testing.T) {
	m := newTickMutex(time.Microsecond)
	m.Init()

	require.True(t, m.Wait(0))
	assert.False(t, m.Wait(0), "held mutex acquired with zero timeout")
	m.Release()
	assert.True(t, m.Wait(0))
	m.Release()
}

func TestTickMutex_Timeout(t *testing.T) {
	m := newTickMutex(time.Microsecond)
	m.Init()

	require.True(t, m.Wait(10))

	start := time.Now()
	ok := m.Wait(500)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)

	m.Release()
	assert.True(t, m.Wait(10))
	m.Release()
}

func TestTickMutex_Handoff(t *testing.T) {
	m := newTickMutex(time.Millisecond)
	m.Init()

	require.True(t, m.Wait(10))

	got := make(chan bool, 1)
	go func() {
		got <- m.Wait(Forever - 1)
	}()

	m.Release()
	select {
	case ok := <-got:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never woke after release")
	}
	m.Release()
}

func TestTickMutex_ReleaseNotHeldPanics(t *testing.T) {
	m := newTickMutex(time.Microsecond)
	m.Init()

	assert.Panics(t, func() { m.Release() })
}
