package components

import "strings"

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	width int
	char  string
}

// HorizontalDivider creates a divider of the given width.
func HorizontalDivider(width int) *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		width:         width,
		char:          "─",
	}
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	if d.width <= 0 {
		return ""
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, d.width))
}
