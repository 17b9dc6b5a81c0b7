package carousel

// Engine is the sole authority over State transitions. Every operation is a
// total function: out-of-range input is clamped, never an error, and all
// operations are no-ops when the carousel has no items.
//
// Operations take a State by value and return the successor state, which
// keeps them trivially testable and leaves ownership of the live State to
// the Controller.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and returns an engine for it.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// DragChanged records an in-progress drag. The delta is measured from the
// gesture start, so the last write wins; intermediate events may be dropped
// by the host without changing the outcome. Ignored while a settle
// animation is running.
func (e *Engine) DragChanged(s State, delta float64) State {
	if e.cfg.ItemCount == 0 || s.Phase == PhaseSettling {
		return s
	}
	s.Phase = PhaseDragging
	s.DragOffset = delta
	return s
}

// DragEnded resolves a released drag. Crossing the snap threshold moves the
// index one page toward the drag direction; at either boundary the index
// stays put (clamp, never wrap). The offset always resets and the state
// enters PhaseSettling until the host reports SettleComplete.
func (e *Engine) DragEnded(s State, delta float64) State {
	if e.cfg.ItemCount == 0 {
		return s
	}

	threshold := e.cfg.snapThreshold()
	switch {
	case delta < -threshold && s.Index < e.cfg.lastIndex():
		s.Index++
	case delta > threshold && s.Index > 0:
		s.Index--
	}

	s.DragOffset = 0
	s.Phase = PhaseSettling
	return s
}

// SettleComplete is the host's report that the settle animation finished.
// It only moves PhaseSettling back to PhaseIdle.
func (e *Engine) SettleComplete(s State) State {
	if s.Phase == PhaseSettling {
		s.Phase = PhaseIdle
	}
	return s
}

// Advance moves to the next page on behalf of auto-scroll. With Loop set
// the index wraps; otherwise it saturates at the last page. DragOffset and
// Phase are untouched: the advance is instantaneous from the engine's
// perspective and any visual glide is the host's concern.
func (e *Engine) Advance(s State) State {
	if e.cfg.ItemCount == 0 {
		return s
	}
	if e.cfg.Loop {
		s.Index = (s.Index + 1) % e.cfg.ItemCount
		return s
	}
	if s.Index < e.cfg.lastIndex() {
		s.Index++
	}
	return s
}

// GoTo jumps directly to target, clamped into the valid index range. Used
// for tap-to-jump page indicators.
func (e *Engine) GoTo(s State, target int) State {
	if e.cfg.ItemCount == 0 {
		return s
	}
	if target < 0 {
		target = 0
	}
	if target > e.cfg.lastIndex() {
		target = e.cfg.lastIndex()
	}
	s.Index = target
	return s
}
