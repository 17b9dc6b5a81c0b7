package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(items int) Config {
	return Config{
		ItemCount:             items,
		ItemExtent:            300,
		SnapThresholdFraction: 0.33,
		FalloffPerStep:        0.2,
		MaxVisibleDistance:    2,
	}
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg)
	require.NoError(t, err)
	return engine
}

func TestDragEnded_ThresholdExactness(t *testing.T) {
	t.Parallel()

	// extent 300 * fraction 0.33 = threshold 99
	engine := newTestEngine(t, testConfig(5))

	s := engine.DragEnded(State{Index: 2}, -100)
	assert.Equal(t, 3, s.Index, "crossing the threshold advances")

	s = engine.DragEnded(State{Index: 2}, -98)
	assert.Equal(t, 2, s.Index, "staying under the threshold holds the page")

	s = engine.DragEnded(State{Index: 2}, 100)
	assert.Equal(t, 1, s.Index, "positive drag pages backwards")
}

func TestDragEnded_ClampsAtBoundaries(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	s := engine.DragEnded(State{Index: 0}, 250)
	assert.Equal(t, 0, s.Index, "backward drag at first page stays put")

	s = engine.DragEnded(State{Index: 3}, -250)
	assert.Equal(t, 3, s.Index, "forward drag at last page stays put")
}

func TestDragEnded_AlwaysResetsOffsetAndSettles(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	for _, delta := range []float64{-500, -99, 0, 99, 500} {
		s := engine.DragEnded(State{Index: 1, DragOffset: delta, Phase: PhaseDragging}, delta)
		assert.Zero(t, s.DragOffset)
		assert.Equal(t, PhaseSettling, s.Phase)
	}
}

func TestDragChanged_TracksDeltaWithoutIndexChange(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	s := engine.DragChanged(State{Index: 2}, -42.5)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, -42.5, s.DragOffset)
	assert.Equal(t, PhaseDragging, s.Phase)

	// Last writer wins; generation order is the host's responsibility.
	s = engine.DragChanged(s, -80)
	assert.Equal(t, -80.0, s.DragOffset)
}

func TestDragChanged_IgnoredWhileSettling(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	settling := State{Index: 1, Phase: PhaseSettling}
	s := engine.DragChanged(settling, -50)
	assert.Equal(t, settling, s)
}

func TestSettleComplete_OnlyLeavesSettling(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	s := engine.SettleComplete(State{Index: 1, Phase: PhaseSettling})
	assert.Equal(t, PhaseIdle, s.Phase)

	dragging := State{Index: 1, DragOffset: -10, Phase: PhaseDragging}
	assert.Equal(t, dragging, engine.SettleComplete(dragging))
}

func TestAdvance_LoopWrapsFullCycle(t *testing.T) {
	t.Parallel()

	cfg := testConfig(4)
	cfg.Loop = true
	engine := newTestEngine(t, cfg)

	s := State{Index: 3}
	seen := []int{}
	for range 4 {
		s = engine.Advance(s)
		seen = append(seen, s.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen, "cycle length equals item count")
}

func TestAdvance_WithoutLoopSaturates(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	s := engine.Advance(State{Index: 3})
	assert.Equal(t, 3, s.Index)

	s = engine.Advance(State{Index: 2})
	assert.Equal(t, 3, s.Index)
}

func TestAdvance_LeavesDragStateAlone(t *testing.T) {
	t.Parallel()

	cfg := testConfig(4)
	cfg.Loop = true
	engine := newTestEngine(t, cfg)

	s := engine.Advance(State{Index: 0, DragOffset: -12, Phase: PhaseDragging})
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, -12.0, s.DragOffset)
	assert.Equal(t, PhaseDragging, s.Phase)
}

func TestGoTo_ClampsTarget(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(4))

	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"within range", 2, 2},
		{"negative", -3, 0},
		{"past end", 99, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := engine.GoTo(State{Index: 1}, tt.target)
			assert.Equal(t, tt.want, s.Index)
		})
	}
}

func TestEmptyCarousel_AllOperationsAreNoOps(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(0))
	initial := NewState()

	assert.Equal(t, initial, engine.DragChanged(initial, -100))
	assert.Equal(t, initial, engine.DragEnded(initial, -100))
	assert.Equal(t, initial, engine.Advance(initial))
	assert.Equal(t, initial, engine.GoTo(initial, 5))
}

func TestSingleItem_DragNeverChangesIndex(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(1))

	s := engine.DragEnded(State{Index: 0}, -1000)
	assert.Equal(t, 0, s.Index)

	s = engine.DragEnded(State{Index: 0}, 1000)
	assert.Equal(t, 0, s.Index)
}

// TestIndexInvariant_RandomOperationSequences exercises the engine with a
// deterministic pseudo-random walk and checks that the index bound holds
// after every transition.
func TestIndexInvariant_RandomOperationSequences(t *testing.T) {
	t.Parallel()

	for _, items := range []int{1, 2, 4, 7} {
		for _, loop := range []bool{false, true} {
			cfg := testConfig(items)
			cfg.Loop = loop
			engine := newTestEngine(t, cfg)

			s := NewState()
			seed := uint64(42)
			next := func() uint64 {
				seed = seed*6364136223846793005 + 1442695040888963407
				return seed
			}

			for step := 0; step < 2000; step++ {
				delta := float64(int64(next()%1200)) - 600
				switch next() % 5 {
				case 0:
					s = engine.DragChanged(s, delta)
				case 1:
					s = engine.DragEnded(s, delta)
				case 2:
					s = engine.SettleComplete(s)
				case 3:
					s = engine.Advance(s)
				case 4:
					s = engine.GoTo(s, int(next()%32)-8)
				}

				require.GreaterOrEqual(t, s.Index, 0,
					"items=%d loop=%v step=%d", items, loop, step)
				require.Less(t, s.Index, items,
					"items=%d loop=%v step=%d", items, loop, step)
			}
		}
	}
}
