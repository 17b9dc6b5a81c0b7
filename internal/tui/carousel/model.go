package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	enginepkg "github.com/glidetui/glide/internal/carousel"
	"github.com/glidetui/glide/internal/logger"
)

const (
	// settleFPS is the frame rate of the settle spring animation.
	settleFPS = 60
	// settleEpsilon is the spring distance below which the settle is
	// reported complete to the engine.
	settleEpsilon = 0.5
	// gestureTimeout is how long after the last arrow press a synthesized
	// drag is released.
	gestureTimeout = 250 * time.Millisecond
)

// Model is the Bubble Tea host for one carousel. It translates key events
// into the engine's gesture contract, runs the settle animation the engine
// delegates to the host, and renders items from the engine's transforms.
type Model struct {
	ctrl    *enginepkg.Controller
	items   []Item
	variant Variant

	// Synthesized drag state. Arrow presses accumulate a drag delta; a
	// short quiet period releases the gesture, mirroring finger-up.
	dragDelta  float64
	generation int

	// Settle animation state.
	spring    harmonica.Spring
	settlePos float64
	settleVel float64
	settling  bool

	advances chan enginepkg.State

	width  int
	height int
}

// Options configures a carousel host model.
type Options struct {
	Variant Variant
	Loop    bool
	// Interval enables auto-scroll when positive.
	Interval time.Duration
	// Extent overrides the variant's default page extent when positive.
	Extent float64
	Logger *logger.Logger
}

// New builds a host model for the given items. The variant picks an engine
// config preset; construction fails only on malformed presets, so errors
// here indicate a bug in the preset table.
func New(items []Item, opts Options) (Model, error) {
	advances := make(chan enginepkg.State, 8)

	ctrl, err := enginepkg.NewController(
		variantConfig(opts, len(items)),
		enginepkg.WithLogger(opts.Logger),
		enginepkg.WithOnAdvance(func(s enginepkg.State) {
			select {
			case advances <- s:
			default:
			}
		}),
	)
	if err != nil {
		return Model{}, err
	}

	return Model{
		ctrl:     ctrl,
		items:    items,
		variant:  opts.Variant,
		spring:   harmonica.NewSpring(harmonica.FPS(settleFPS), 8.0, 0.7),
		advances: advances,
		width:    80,
		height:   24,
	}, nil
}

// variantConfig returns the engine preset for a variant. ItemExtent and
// spacing are in terminal cells.
func variantConfig(opts Options, items int) enginepkg.Config {
	cfg := enginepkg.Config{
		ItemCount:             items,
		ItemExtent:            24,
		Spacing:               2,
		SnapThresholdFraction: 0.33,
		Loop:                  opts.Loop,
		AutoScrollInterval:    opts.Interval,
		FalloffPerStep:        0.15,
		MaxVisibleDistance:    2,
	}

	switch opts.Variant {
	case VariantPeek:
		cfg.FalloffPerStep = 0.25
		cfg.MaxVisibleDistance = 1.5
	case VariantPerspective:
		cfg.FalloffPerStep = 0.2
		cfg.MaxRotationPerStep = 12
		cfg.MaxVisibleDistance = 2.5
	case VariantVertical:
		cfg.ItemExtent = 6
		cfg.Spacing = 1
		cfg.MaxVisibleDistance = 1.5
	}

	if opts.Extent > 0 {
		cfg.ItemExtent = opts.Extent
	}

	return cfg.Normalize()
}

// Init mounts the carousel and subscribes to auto-scroll advances.
func (m Model) Init() tea.Cmd {
	m.ctrl.Mount()
	return waitForAdvance(m.advances)
}

// Close releases the carousel's timer. Hosts must call it when the model
// leaves the screen; quitting via the q key does this automatically.
func (m Model) Close() {
	m.ctrl.Unmount()
}

// Snapshot exposes the engine state for parent models and tests.
func (m Model) Snapshot() enginepkg.State {
	return m.ctrl.Snapshot()
}

// keyStep is the synthetic drag distance one arrow press adds. It crosses
// the snap threshold in a single press so that tap-like presses page.
func (m Model) keyStep() float64 {
	return m.ctrl.Config().ItemExtent * 0.45
}
