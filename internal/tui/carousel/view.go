package carousel

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	enginepkg "github.com/glidetui/glide/internal/carousel"
	"github.com/glidetui/glide/internal/ui"
	"github.com/glidetui/glide/internal/ui/components"
)

// View renders the carousel strip, the page indicator and a footer.
func (m Model) View() string {
	if len(m.items) == 0 {
		return helpStyle.Render("Nothing to show: the carousel has no items.")
	}

	snap := m.ctrl.Snapshot()

	sections := []string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(m.variantTitle())),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderStrip()),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, components.NewDots(len(m.items), snap.Index).View()),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter(snap)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) variantTitle() string {
	switch m.variant {
	case VariantPeek:
		return "Peek Carousel"
	case VariantPerspective:
		return "Perspective Carousel"
	case VariantVertical:
		return "Vertical Carousel"
	default:
		return "Carousel"
	}
}

type placedItem struct {
	view   string
	offset float64
}

// renderStrip lays the visible items out along the paging axis, ordered by
// their continuous offset. Hidden items (opacity 0) are skipped entirely.
func (m Model) renderStrip() string {
	visible := make([]placedItem, 0, len(m.items))
	for i := range m.items {
		tr := m.ctrl.TransformFor(i)
		if tr.Opacity <= 0 {
			continue
		}
		visible = append(visible, placedItem{
			view:   m.renderItem(i, tr),
			offset: tr.OffsetFromCenter,
		})
	}

	sort.Slice(visible, func(a, b int) bool {
		return visible[a].offset < visible[b].offset
	})

	views := make([]string, len(visible))
	for i, item := range visible {
		views[i] = item.view
	}

	gap := int(m.ctrl.Config().Spacing)
	var strip string
	if m.variant == VariantVertical {
		strip = lipgloss.JoinVertical(lipgloss.Center, spaced(views, verticalSpacer(gap))...)
	} else {
		strip = lipgloss.JoinHorizontal(lipgloss.Center, spaced(views, horizontalSpacer(gap))...)
	}

	return m.applyVisualShift(strip)
}

// renderItem turns one transform into a styled card: scale drives the card
// size, opacity drives dimming, z-order selects the focal border, and
// rotation shades the receding edge for the perspective variant.
func (m Model) renderItem(index int, tr enginepkg.ItemTransform) string {
	item := m.items[index]
	extent := m.ctrl.Config().ItemExtent

	var width, height int
	if m.variant == VariantVertical {
		width = 24
		height = int(math.Round(extent * tr.Scale))
	} else {
		width = int(math.Round(extent * tr.Scale))
		height = int(math.Round(5 * tr.Scale))
	}

	children := []ui.Renderable{components.NewText(item.Body)}
	card := components.NewCard(children...).
		WithTitle(item.Title).
		WithSize(width, height)

	if tr.Opacity < 0.6 {
		card = card.WithAppliers(components.Faint())
	}

	view := card.View()
	if tr.ZOrder == 0 {
		view = focalBorderStyle.Render(view)
	}

	if m.variant == VariantPerspective && tr.RotationDegrees != 0 {
		view = applyPerspectiveShade(view, tr.RotationDegrees, m.ctrl.Config().MaxRotationPerStep)
	}

	return view
}

// applyPerspectiveShade fakes a rotation by shading the edge that recedes
// from the viewer: columns of ░ proportional to the tilt.
func applyPerspectiveShade(view string, rotation, maxPerStep float64) string {
	if maxPerStep == 0 {
		return view
	}

	depth := int(math.Min(math.Abs(rotation)/maxPerStep, 3))
	if depth == 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	shade := strings.Repeat("░", depth)
	for i, line := range lines {
		if rotation < 0 {
			lines[i] = line + shade
		} else {
			lines[i] = shade + line
		}
	}
	return strings.Join(lines, "\n")
}

// applyVisualShift offsets the whole strip by the in-flight drag or settle
// spring position, producing the smooth sweep between discrete pages.
func (m Model) applyVisualShift(strip string) string {
	shift := int(math.Round(m.visualOffset() / 2))
	if shift == 0 {
		return strip
	}

	pad := strings.Repeat(" ", min(abs(shift), m.width/4))
	if shift > 0 {
		return lipgloss.JoinHorizontal(lipgloss.Center, pad, strip)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strip, pad)
}

// visualOffset is the host-side rendering offset: the live drag delta while
// dragging, the spring position while settling, zero at rest.
func (m Model) visualOffset() float64 {
	if m.settling {
		return m.settlePos
	}
	return m.ctrl.Snapshot().DragOffset
}

func (m Model) renderFooter(snap enginepkg.State) string {
	keys := "←/→ page · 1-9 jump · q quit"
	if m.variant == VariantVertical {
		keys = "↑/↓ page · 1-9 jump · q quit"
	}

	phase := phaseStyle.Render(fmt.Sprintf("page %d/%d · %s", snap.Index+1, len(m.items), snap.Phase))
	return lipgloss.JoinVertical(lipgloss.Center, phase, helpStyle.Render(keys))
}

func spaced(views []string, spacer string) []string {
	if spacer == "" || len(views) < 2 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

func horizontalSpacer(gap int) string {
	if gap <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(gap).Render("")
}

func verticalSpacer(gap int) string {
	if gap <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Height(gap).Render("")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
