package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glidetui/glide/internal/ui"
)

// Card is a bordered container for grouped content, optionally titled. The
// carousel hosts render each page as a Card.
type Card struct {
	BaseComponent
	title    string
	children []ui.Renderable
	width    int
	height   int
}

// NewCard creates a card wrapping the given children.
func NewCard(children ...ui.Renderable) *Card {
	card := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
	card.SetAppliers(
		Background(PaletteSurface),
		Border(BorderVariantRounded),
		BorderColor(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	)
	return card
}

// WithTitle sets the card title rendered above the content.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithSize fixes the card's content dimensions. Zero leaves the axis
// unconstrained. The carousel hosts drive this from ItemTransform.Scale.
func (c *Card) WithSize(width, height int) *Card {
	c.width = width
	c.height = height
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given theme context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, len(c.children)+1)
	if c.title != "" {
		parts = append(parts, TitleText(c.title).ViewWithContext(ctx))
	}
	for _, child := range c.children {
		if child == nil {
			continue
		}
		if contextual, ok := child.(ContextualRenderable); ok {
			parts = append(parts, contextual.ViewWithContext(ctx))
		} else {
			parts = append(parts, child.View())
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	style := c.ComputeStyle(ctx.Theme)
	if c.width > 0 {
		style = style.Width(c.width)
	}
	if c.height > 0 {
		style = style.Height(c.height)
	}
	return style.Render(content)
}
