package config

import "time"

// DefaultGallery is the built-in demo set shown when no gallery file is
// given on the command line.
func DefaultGallery() *Gallery {
	return &Gallery{
		Version: "1.0",
		Demos: []Demo{
			{
				Name:    "basic",
				Variant: "basic",
				Items: []Item{
					{Title: "Welcome", Body: "A paged carousel."},
					{Title: "Drag", Body: "Arrows synthesize a drag."},
					{Title: "Snap", Body: "Release snaps to a page."},
					{Title: "Jump", Body: "Digits jump directly."},
				},
			},
			{
				Name:     "peek",
				Variant:  "peek",
				Loop:     true,
				Interval: Duration(3 * time.Second),
				Items: []Item{
					{Title: "Peek", Body: "Neighbours stay visible."},
					{Title: "Loop", Body: "Auto-scroll wraps around."},
					{Title: "Pause", Body: "Dragging pauses the timer."},
				},
			},
			{
				Name:    "perspective",
				Variant: "perspective",
				Items: []Item{
					{Title: "Depth", Body: "Off-center pages tilt away."},
					{Title: "Focus", Body: "The focal page stays flat."},
					{Title: "Shade", Body: "Tilt reads as edge shading."},
				},
			},
			{
				Name:    "vertical",
				Variant: "vertical",
				Items: []Item{
					{Title: "Up", Body: "k pages up."},
					{Title: "Down", Body: "j pages down."},
					{Title: "Stack", Body: "Pages stack vertically."},
				},
			},
		},
	}
}
