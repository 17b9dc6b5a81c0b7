// Package components provides glide's declarative, theme-aware component
// library for terminal applications.
//
// Components are thin, stateless styling code built on lipgloss. Each one
// embeds BaseComponent for style handling, renders with View() using the
// default theme or ViewWithContext() with an explicit one, and offers
// fluent WithX builders:
//
//	card := components.NewCard(
//		components.TitleText("Now Playing"),
//		components.NewText("Track 3 of 12"),
//	).WithAppliers(
//		components.Background(components.PaletteSurface),
//		components.Border(components.BorderVariantRounded),
//	)
//
// Themes are immutable values passed explicitly through RenderContext; there
// is no global theme state, so rendering is deterministic and tests can run
// in parallel.
//
// The carousel components are the exception to "thin and stateless": their
// paging behavior lives in the carousel engine package, and the views here
// (Dots, and the variant views in the TUI host) only render what the engine
// reports.
package components
