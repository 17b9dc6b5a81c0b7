package components

import (
	"github.com/charmbracelet/bubbles/spinner"
)

// Loader is an indeterminate progress indicator. It renders one frame of a
// bubbles spinner; the host advances the frame on its own tick cadence
// (glide components are stateless strings, so the frame counter lives here
// only as presentation state, not behavior).
type Loader struct {
	BaseComponent
	frames  spinner.Spinner
	frame   int
	message string
}

// NewLoader creates a loader using the dot spinner.
func NewLoader() *Loader {
	return &Loader{
		BaseComponent: NewBaseComponent(),
		frames:        spinner.Dot,
	}
}

// WithSpinner sets the spinner frame set.
func (l *Loader) WithSpinner(frames spinner.Spinner) *Loader {
	l.frames = frames
	return l
}

// WithMessage sets the text rendered after the spinner.
func (l *Loader) WithMessage(message string) *Loader {
	l.message = message
	return l
}

// WithAppliers applies theme-based style modifiers.
func (l *Loader) WithAppliers(appliers ...StyleFunc) *Loader {
	l.AddAppliers(appliers...)
	return l
}

// Advance moves to the next spinner frame.
func (l *Loader) Advance() *Loader {
	if len(l.frames.Frames) > 0 {
		l.frame = (l.frame + 1) % len(l.frames.Frames)
	}
	return l
}

// View renders the loader with the default theme.
func (l *Loader) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the current spinner frame and message.
func (l *Loader) ViewWithContext(ctx RenderContext) string {
	frame := ""
	if len(l.frames.Frames) > 0 {
		frame = l.frames.Frames[l.frame%len(l.frames.Frames)]
	}
	out := frame
	if l.message != "" {
		out += " " + l.message
	}
	style := Foreground(PalettePrimary)(l.ComputeStyle(ctx.Theme), ctx.Theme)
	return style.Render(out)
}
