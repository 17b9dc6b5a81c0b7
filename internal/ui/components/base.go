package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies a theme-aware transformation to a lipgloss style. It is
// the core abstraction for composable styling: themes supply the data,
// StyleFuncs decide how it lands on a component.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy defines how styling is applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies multiple StyleFuncs in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Apply runs every style function in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// BaseComponent provides the style plumbing every component shares. Embed it
// and call ComputeStyle at render time.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent creates a base component with no styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component's style against the given theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the style strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style appliers, preserving any existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		merged := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(merged, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(merged, appliers...)}
		return
	}

	prior := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if prior != nil {
			base = prior.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// RenderContext carries the theme to components during rendering. Passing it
// explicitly instead of reading a global keeps rendering deterministic.
type RenderContext struct {
	Theme Theme
}

// DefaultContext returns a render context with the default theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// ContextualRenderable is implemented by components that want the render
// context; plain Renderables fall back to the default theme.
type ContextualRenderable interface {
	ViewWithContext(ctx RenderContext) string
}
