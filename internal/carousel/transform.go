package carousel

import "math"

// ItemTransform describes how one item should appear given its distance to
// the focal page. It is derived per render and never persisted.
type ItemTransform struct {
	// OffsetFromCenter is the item's signed, continuous distance to the
	// focal position, in page units. Zero means the item is centered.
	OffsetFromCenter float64

	// Scale is the item's size factor in [MinimumScale, 1].
	Scale float64

	// RotationDegrees tilts the item around its vertical axis for the
	// perspective variants. Negative when the item sits right of center.
	RotationDegrees float64

	// Opacity is in [0, 1], monotonically non-increasing in the distance
	// to center, and exactly 0 beyond MaxVisibleDistance.
	Opacity float64

	// ZOrder orders drawing: larger values draw on top. The focal item has
	// ZOrder 0, its neighbours -1, and so on.
	ZOrder int
}

// TransformFor computes the visual transform for item i under the given
// state. The result is continuous in State.DragOffset so an in-flight drag
// produces a smooth sweep: a negative drag (content pulled left) increases
// the apparent index fractionally, shifting every item's offset without a
// jump at page boundaries.
func (e *Engine) TransformFor(s State, i int) ItemTransform {
	continuous := float64(s.Index) - s.DragOffset/e.cfg.ItemExtent
	d := float64(i) - continuous
	dist := math.Abs(d)

	scale := 1 - dist*e.cfg.FalloffPerStep
	if scale < e.cfg.MinimumScale {
		scale = e.cfg.MinimumScale
	}
	if scale > 1 {
		scale = 1
	}

	return ItemTransform{
		OffsetFromCenter: d,
		Scale:            scale,
		RotationDegrees:  -d * e.cfg.MaxRotationPerStep,
		Opacity:          e.opacityAt(dist),
		ZOrder:           -int(math.Round(dist)),
	}
}

// opacityAt ramps opacity linearly from 1 at the center down to 0 at
// MaxVisibleDistance and beyond.
func (e *Engine) opacityAt(dist float64) float64 {
	max := e.cfg.MaxVisibleDistance
	if max <= 0 || dist >= max {
		return 0
	}
	return 1 - dist/max
}
