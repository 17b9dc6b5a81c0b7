package carousel

import (
	"sync"

	"github.com/glidetui/glide/internal/logger"
)

// Controller owns exactly one carousel's Config, State and Scheduler and
// exposes the contract a host renderer programs against: gestures and
// lifecycle in, read-only snapshots and transforms out.
//
// The host feeds drag deltas, taps and settle completions in; the scheduler
// feeds advance ticks in; the Controller serializes all of it and keeps the
// State owned exclusively, so the index bounds invariant cannot be broken
// from outside.
type Controller struct {
	engine    *Engine
	sched     *Scheduler
	log       *logger.Logger
	onAdvance func(State)

	mu      sync.Mutex
	state   State
	mounted bool
}

// ControllerOption configures optional controller collaborators.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	clock     Clock
	log       *logger.Logger
	onAdvance func(State)
}

// WithClock substitutes the scheduler's clock, mainly for tests.
func WithClock(clock Clock) ControllerOption {
	return func(o *controllerOptions) { o.clock = clock }
}

// WithLogger attaches a logger for scheduler misuse warnings.
func WithLogger(log *logger.Logger) ControllerOption {
	return func(o *controllerOptions) { o.log = log }
}

// WithOnAdvance registers a callback invoked with the new state after each
// auto-scroll advance, so an event-loop host can trigger a re-render. The
// callback must not call back into the Controller's lifecycle methods.
func WithOnAdvance(fn func(State)) ControllerOption {
	return func(o *controllerOptions) { o.onAdvance = fn }
}

// NewController validates cfg and builds an unmounted controller for it.
func NewController(cfg Config, opts ...ControllerOption) (*Controller, error) {
	var o controllerOptions
	for _, opt := range opts {
		opt(&o)
	}

	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	return &Controller{
		engine:    engine,
		sched:     NewScheduler(o.clock, o.log),
		log:       o.log,
		onAdvance: o.onAdvance,
		state:     NewState(),
	}, nil
}

// Mount activates the carousel, starting auto-scroll when the configuration
// asks for it. Mounting twice is a logged no-op.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		c.log.Warn("mount ignored: already mounted")
		return
	}
	c.mounted = true
	c.mu.Unlock()

	cfg := c.engine.Config()
	if cfg.AutoScrollInterval > 0 && cfg.ItemCount > 0 {
		_ = c.sched.Start(cfg.AutoScrollInterval, c.tick)
	}
}

// Unmount releases the carousel's timer. It is idempotent and guarantees no
// auto-scroll tick mutates state after it returns; the scheduler is stopped
// before the mounted flag is cleared so a concurrent tick either completed
// already or never runs.
func (c *Controller) Unmount() {
	c.sched.Stop()

	c.mu.Lock()
	c.mounted = false
	c.mu.Unlock()
}

// DragChanged forwards an in-progress drag delta to the engine.
func (c *Controller) DragChanged(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.engine.DragChanged(c.state, delta)
}

// DragEnded forwards a gesture release to the engine.
func (c *Controller) DragEnded(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.engine.DragEnded(c.state, delta)
}

// Tap jumps to the tapped page indicator's index.
func (c *Controller) Tap(target int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.engine.GoTo(c.state, target)
}

// SettleComplete is the host's report that the settle animation finished.
func (c *Controller) SettleComplete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.engine.SettleComplete(c.state)
}

// Snapshot returns a read-only copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// TransformFor computes the visual transform for item i under the current
// state.
func (c *Controller) TransformFor(i int) ItemTransform {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	return c.engine.TransformFor(state, i)
}

// Config returns the carousel's configuration.
func (c *Controller) Config() Config {
	return c.engine.Config()
}

// tick handles one auto-scroll interval. Ticks that land while the user is
// dragging or a settle is animating are dropped rather than yanking the
// index mid-gesture.
func (c *Controller) tick() {
	c.mu.Lock()
	if !c.mounted || c.state.Phase != PhaseIdle {
		c.mu.Unlock()
		return
	}
	c.state = c.engine.Advance(c.state)
	state := c.state
	c.mu.Unlock()

	if c.onAdvance != nil {
		c.onAdvance(state)
	}
}
