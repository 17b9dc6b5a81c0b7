package carousel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enginepkg "github.com/glidetui/glide/internal/carousel"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Title: "Item", Body: "body"}
	}
	return items
}

func newTestModel(t *testing.T, variant Variant) Model {
	t.Helper()
	m, err := New(testItems(4), Options{Variant: variant})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func pressKey(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func pressSpecial(t *testing.T, m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: keyType})
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}

func TestUpdate_ArrowStartsDrag(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	model, cmd := pressSpecial(t, m, tea.KeyRight)
	assert.NotNil(t, cmd, "a drag must arm its release timeout")

	snap := model.Snapshot()
	assert.Equal(t, enginepkg.PhaseDragging, snap.Phase)
	assert.Equal(t, 0, snap.Index, "index must not move until release")
	assert.Negative(t, snap.DragOffset)
}

func TestUpdate_GestureReleasePagesForward(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	model, _ := pressSpecial(t, m, tea.KeyRight)

	next, cmd := model.Update(gestureTimeoutMsg{Generation: model.generation})
	model, ok := next.(Model)
	require.True(t, ok)
	assert.NotNil(t, cmd, "release must start the settle animation")

	snap := model.Snapshot()
	assert.Equal(t, 1, snap.Index, "one press crosses the snap threshold")
	assert.Equal(t, enginepkg.PhaseSettling, snap.Phase)
	assert.Zero(t, snap.DragOffset)
}

func TestUpdate_StaleGestureTimeoutIgnored(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	model, _ := pressSpecial(t, m, tea.KeyRight)
	model, _ = pressSpecial(t, model, tea.KeyRight) // extends the gesture

	next, _ := model.Update(gestureTimeoutMsg{Generation: model.generation - 1})
	model, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, enginepkg.PhaseDragging, model.Snapshot().Phase,
		"a stale timeout must not release the extended gesture")
}

func TestUpdate_SettleFramesReportCompletion(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	model, _ := pressSpecial(t, m, tea.KeyRight)
	next, _ := model.Update(gestureTimeoutMsg{Generation: model.generation})
	model = next.(Model)
	require.True(t, model.settling)

	// Drive spring frames until the host reports the settle complete.
	for i := 0; i < 600 && model.settling; i++ {
		step, _ := model.Update(settleFrameMsg{})
		model = step.(Model)
	}

	assert.False(t, model.settling, "spring must converge")
	assert.Equal(t, enginepkg.PhaseIdle, model.Snapshot().Phase)
}

func TestUpdate_DragIgnoredWhileSettling(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	model, _ := pressSpecial(t, m, tea.KeyRight)
	next, _ := model.Update(gestureTimeoutMsg{Generation: model.generation})
	model = next.(Model)

	model, cmd := pressSpecial(t, model, tea.KeyRight)
	assert.Nil(t, cmd, "presses mid-settle must not start a gesture")
	assert.Zero(t, model.dragDelta)
}

func TestUpdate_DigitJumpsToPage(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	model, _ := pressKey(t, m, "3")
	assert.Equal(t, 2, model.Snapshot().Index)

	// Out-of-range digits clamp rather than error.
	model, _ = pressKey(t, model, "9")
	assert.Equal(t, 3, model.Snapshot().Index)
}

func TestUpdate_VerticalVariantUsesVerticalKeys(t *testing.T) {
	m := newTestModel(t, VariantVertical)

	model, cmd := pressSpecial(t, m, tea.KeyRight)
	assert.Nil(t, cmd)
	assert.Equal(t, enginepkg.PhaseIdle, model.Snapshot().Phase)

	model, cmd = pressSpecial(t, model, tea.KeyDown)
	assert.NotNil(t, cmd)
	assert.Equal(t, enginepkg.PhaseDragging, model.Snapshot().Phase)
}

func TestUpdate_QuitReleasesCarousel(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	_, cmd := pressKey(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_AutoAdvanceResubscribes(t *testing.T) {
	m := newTestModel(t, VariantBasic)

	next, cmd := m.Update(autoAdvanceMsg{State: enginepkg.State{Index: 1}})
	_, ok := next.(Model)
	require.True(t, ok)
	assert.NotNil(t, cmd, "the advance subscription must be re-armed")
}
