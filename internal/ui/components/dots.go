package components

import "strings"

// Dots is the carousel page indicator: one dot per page with the active one
// highlighted. Hosts drive it from a carousel snapshot's index and map a
// click or digit key on dot i to the controller's Tap(i).
type Dots struct {
	BaseComponent
	count  int
	active int
}

// NewDots creates an indicator for count pages with the given active page.
// Out-of-range active values are clamped, mirroring the engine's tap policy.
func NewDots(count, active int) *Dots {
	if active < 0 {
		active = 0
	}
	if count > 0 && active >= count {
		active = count - 1
	}
	return &Dots{
		BaseComponent: NewBaseComponent(),
		count:         count,
		active:        active,
	}
}

// WithAppliers applies theme-based style modifiers.
func (d *Dots) WithAppliers(appliers ...StyleFunc) *Dots {
	d.AddAppliers(appliers...)
	return d
}

// View renders the dots with the default theme.
func (d *Dots) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dots with the given theme context.
func (d *Dots) ViewWithContext(ctx RenderContext) string {
	if d.count <= 0 {
		return ""
	}

	activeStyle := Foreground(PalettePrimary)(d.ComputeStyle(ctx.Theme), ctx.Theme).Bold(true)
	idleStyle := Foreground(PaletteNeutral)(d.ComputeStyle(ctx.Theme), ctx.Theme).Faint(true)

	var b strings.Builder
	for i := 0; i < d.count; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == d.active {
			b.WriteString(activeStyle.Render("●"))
		} else {
			b.WriteString(idleStyle.Render("○"))
		}
	}
	return b.String()
}
