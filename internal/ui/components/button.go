package components

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantMuted
)

// Button is a visual-only button component; interaction is the host's job.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	active   bool
	disabled bool
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithActive marks the button as focused/selected.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithDisabled marks the button as disabled.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)

	slot := PalettePrimary
	switch b.variant {
	case ButtonVariantSecondary:
		slot = PaletteSecondary
	case ButtonVariantMuted:
		slot = PaletteNeutral
	}
	style = Background(slot)(style, ctx.Theme).Padding(0, 2)

	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(b.label)
}
