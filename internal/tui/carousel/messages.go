package carousel

import (
	enginepkg "github.com/glidetui/glide/internal/carousel"
)

// Variant selects which carousel look the host renders. All variants share
// the same engine; they differ only in config presets and view styling.
type Variant int

const (
	// VariantBasic is the flat paging carousel.
	VariantBasic Variant = iota
	// VariantPeek keeps neighbouring pages partially visible.
	VariantPeek
	// VariantPerspective tilts off-center pages like a cover-flow strip.
	VariantPerspective
	// VariantVertical pages along the vertical axis.
	VariantVertical
)

// ParseVariant maps a config string to a Variant; unknown names fall back
// to the basic variant.
func ParseVariant(name string) Variant {
	switch name {
	case "peek":
		return VariantPeek
	case "perspective":
		return VariantPerspective
	case "vertical":
		return VariantVertical
	default:
		return VariantBasic
	}
}

// Item is one opaque carousel page. The engine never inspects it; only the
// view renders it.
type Item struct {
	Title string
	Body  string
}

// autoAdvanceMsg reports that the auto-scroll scheduler moved the index.
type autoAdvanceMsg struct {
	State enginepkg.State
}

// settleFrameMsg drives one frame of the settle spring animation.
type settleFrameMsg struct{}

// gestureTimeoutMsg ends a keyboard-synthesized drag gesture.
type gestureTimeoutMsg struct {
	Generation int
}
