package carousel

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and advances the host state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case autoAdvanceMsg:
		// State already moved inside the engine; re-render and resubscribe.
		return m, waitForAdvance(m.advances)

	case settleFrameMsg:
		return m.stepSettle()

	case gestureTimeoutMsg:
		if msg.Generation != m.generation || m.dragDelta == 0 {
			return m, nil
		}
		return m.releaseGesture()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.ctrl.Unmount()
		return m, tea.Quit

	case "left", "h":
		if m.variant == VariantVertical {
			return m, nil
		}
		return m.extendGesture(m.keyStep())

	case "right", "l":
		if m.variant == VariantVertical {
			return m, nil
		}
		return m.extendGesture(-m.keyStep())

	case "up", "k":
		if m.variant != VariantVertical {
			return m, nil
		}
		return m.extendGesture(m.keyStep())

	case "down", "j":
		if m.variant != VariantVertical {
			return m, nil
		}
		return m.extendGesture(-m.keyStep())

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		target := int(msg.String()[0] - '1')
		m.ctrl.Tap(target)
		return m, nil

	case "g":
		m.ctrl.Tap(0)
		return m, nil

	case "G":
		m.ctrl.Tap(len(m.items) - 1)
		return m, nil
	}

	return m, nil
}

// extendGesture accumulates a synthetic drag and (re)arms its release
// timeout, so held or repeated arrows read as one continuous drag.
func (m Model) extendGesture(step float64) (tea.Model, tea.Cmd) {
	if m.settling {
		// The engine ignores drags mid-settle; don't accumulate them.
		return m, nil
	}

	m.dragDelta += step
	m.generation++
	m.ctrl.DragChanged(m.dragDelta)
	return m, releaseGestureAfter(m.generation)
}

// releaseGesture reports finger-up to the engine and starts the settle
// spring from the released visual offset back to rest.
func (m Model) releaseGesture() (tea.Model, tea.Cmd) {
	delta := m.dragDelta
	m.dragDelta = 0

	m.ctrl.DragEnded(delta)

	m.settling = true
	m.settlePos = delta
	m.settleVel = 0
	return m, settleFrame()
}

// stepSettle advances the spring one frame and reports completion to the
// engine once the offset is visually at rest.
func (m Model) stepSettle() (tea.Model, tea.Cmd) {
	if !m.settling {
		return m, nil
	}

	m.settlePos, m.settleVel = m.spring.Update(m.settlePos, m.settleVel, 0)

	if math.Abs(m.settlePos) < settleEpsilon && math.Abs(m.settleVel) < settleEpsilon {
		m.settlePos = 0
		m.settleVel = 0
		m.settling = false
		m.ctrl.SettleComplete()
		return m, nil
	}

	return m, settleFrame()
}
