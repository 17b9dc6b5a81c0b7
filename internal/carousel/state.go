package carousel

// Phase is the engine's interaction state. The three values are mutually
// exclusive by construction, so "dragging while mid-settle" cannot be
// represented.
type Phase int

const (
	// PhaseIdle means no gesture or settle animation is in progress.
	PhaseIdle Phase = iota
	// PhaseDragging means a drag gesture is in flight; DragOffset tracks it.
	PhaseDragging
	// PhaseSettling means the host is animating the released page into
	// place. It ends when the host reports SettleComplete.
	PhaseSettling
)

// String implements fmt.Stringer for log output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// State is the mutable page/drag state of one carousel instance.
//
// Invariant: 0 <= Index < ItemCount whenever ItemCount > 0. The invariant
// holds because State is only ever produced by Engine operations, which
// clamp every transition.
type State struct {
	// Index is the active page.
	Index int

	// DragOffset is the signed offset accumulated during an in-progress
	// drag, in the same units as Config.ItemExtent. Zero when not dragging.
	DragOffset float64

	// Phase tags which interaction mode the carousel is in.
	Phase Phase
}

// NewState returns the initial state for a freshly mounted carousel.
func NewState() State {
	return State{Index: 0, DragOffset: 0, Phase: PhaseIdle}
}
