package carousel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glideerrors "github.com/glidetui/glide/pkg/errors"
)

func TestSchedulerStart_RejectsMissingInterval(t *testing.T) {
	t.Parallel()

	sched := NewScheduler(newFakeClock(), nil)

	err := sched.Start(0, func() {})
	require.Error(t, err)

	var schedErr *glideerrors.SchedulerError
	require.ErrorAs(t, err, &schedErr)
	assert.False(t, sched.IsRunning())
}

func TestSchedulerStart_SecondStartIsNoOp(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := NewScheduler(clock, nil)
	t.Cleanup(sched.Stop)

	var ticks atomic.Int64
	require.NoError(t, sched.Start(time.Second, func() { ticks.Add(1) }))

	err := sched.Start(time.Second, func() { ticks.Add(100) })
	require.Error(t, err)
	assert.True(t, sched.IsRunning())

	clock.Advance()
	require.Eventually(t, func() bool { return ticks.Load() == 1 },
		time.Second, time.Millisecond, "only the first callback may fire")
}

func TestSchedulerTick_InvokesCallbackPerInterval(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := NewScheduler(clock, nil)
	t.Cleanup(sched.Stop)

	var ticks atomic.Int64
	require.NoError(t, sched.Start(time.Second, func() { ticks.Add(1) }))

	clock.Advance()
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)

	clock.Advance()
	require.Eventually(t, func() bool { return ticks.Load() == 2 }, time.Second, time.Millisecond)
}

func TestSchedulerStop_IsIdempotent(t *testing.T) {
	t.Parallel()

	sched := NewScheduler(newFakeClock(), nil)
	require.NoError(t, sched.Start(time.Second, func() {}))

	sched.Stop()
	assert.False(t, sched.IsRunning())

	require.NotPanics(t, sched.Stop)
	assert.False(t, sched.IsRunning())

	// Stop before any Start is equally harmless.
	fresh := NewScheduler(newFakeClock(), nil)
	require.NotPanics(t, fresh.Stop)
}

func TestSchedulerStop_NoCallbackAfterStop(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := NewScheduler(clock, nil)

	var ticks atomic.Int64
	require.NoError(t, sched.Start(time.Second, func() { ticks.Add(1) }))

	sched.Stop()
	clock.Advance()
	clock.Advance()

	assert.Never(t, func() bool { return ticks.Load() > 0 },
		50*time.Millisecond, 5*time.Millisecond,
		"a stopped scheduler must never dispatch")
}

func TestSchedulerRestart_AfterStopWorks(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sched := NewScheduler(clock, nil)
	t.Cleanup(sched.Stop)

	var first, second atomic.Int64
	require.NoError(t, sched.Start(time.Second, func() { first.Add(1) }))
	sched.Stop()

	require.NoError(t, sched.Start(time.Second, func() { second.Add(1) }))
	clock.Advance()

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	assert.Zero(t, first.Load())
}
