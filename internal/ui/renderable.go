// Package ui defines the minimal contract shared by every glide component.
package ui

// Renderable is anything that can render itself to a string for terminal
// output. All glide components implement it, which lets layout components
// compose arbitrary children without knowing their concrete types.
type Renderable interface {
	View() string
}
