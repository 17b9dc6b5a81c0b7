package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	enginepkg "github.com/glidetui/glide/internal/carousel"
)

// waitForAdvance blocks on the controller's advance channel and resurfaces
// the next auto-scroll as a message. The update loop re-issues it after
// every delivery, forming a subscription.
func waitForAdvance(advances chan enginepkg.State) tea.Cmd {
	return func() tea.Msg {
		return autoAdvanceMsg{State: <-advances}
	}
}

// settleFrame schedules the next frame of the settle spring.
func settleFrame() tea.Cmd {
	return tea.Tick(time.Second/settleFPS, func(time.Time) tea.Msg {
		return settleFrameMsg{}
	})
}

// releaseGestureAfter ends the synthesized drag once the keyboard goes
// quiet. The generation guards against a stale timeout releasing a gesture
// that later presses extended.
func releaseGestureAfter(generation int) tea.Cmd {
	return tea.Tick(gestureTimeout, func(time.Time) tea.Msg {
		return gestureTimeoutMsg{Generation: generation}
	})
}
