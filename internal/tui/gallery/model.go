package gallery

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glidetui/glide/internal/config"
	"github.com/glidetui/glide/internal/logger"
	carouselui "github.com/glidetui/glide/internal/tui/carousel"
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			Padding(0, 1)
)

// Model hosts the demo gallery: a tab row of named demos with the active
// demo's carousel below it. Only the active carousel is mounted, so only
// one auto-scroll timer runs at a time.
type Model struct {
	demos  []config.Demo
	active int
	car    carouselui.Model
	log    *logger.Logger

	width  int
	height int
}

// New builds a gallery model from a validated configuration.
func New(gal *config.Gallery, log *logger.Logger) (Model, error) {
	m := Model{
		demos:  gal.Demos,
		log:    log,
		width:  80,
		height: 24,
	}

	car, err := buildCarousel(gal.Demos[0], log)
	if err != nil {
		return Model{}, err
	}
	m.car = car

	return m, nil
}

func buildCarousel(demo config.Demo, log *logger.Logger) (carouselui.Model, error) {
	items := make([]carouselui.Item, len(demo.Items))
	for i, item := range demo.Items {
		items[i] = carouselui.Item{Title: item.Title, Body: item.Body}
	}

	return carouselui.New(items, carouselui.Options{
		Variant:  carouselui.ParseVariant(demo.Variant),
		Loop:     demo.Loop,
		Interval: demo.Interval.Std(),
		Extent:   demo.Extent,
		Logger:   log,
	})
}

// Init mounts the active demo's carousel.
func (m Model) Init() tea.Cmd {
	return m.car.Init()
}

// Update routes tab switching here and everything else to the active
// carousel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "n":
			return m.switchTo((m.active + 1) % len(m.demos))
		case "shift+tab", "p":
			return m.switchTo((m.active - 1 + len(m.demos)) % len(m.demos))
		}
	}

	next, cmd := m.car.Update(msg)
	if car, ok := next.(carouselui.Model); ok {
		m.car = car
	}
	return m, cmd
}

// switchTo unmounts the current demo and mounts the target one. Switching
// to the already active demo is a no-op.
func (m Model) switchTo(target int) (tea.Model, tea.Cmd) {
	if target == m.active {
		return m, nil
	}

	car, err := buildCarousel(m.demos[target], m.log)
	if err != nil {
		m.log.Error(err, "demo switch failed")
		return m, nil
	}

	m.car.Close()
	m.active = target
	m.car = car

	cmd := m.car.Init()
	return m, tea.Batch(cmd, forwardSize(m.width, m.height))
}

// Close releases the active carousel's timer.
func (m Model) Close() {
	m.car.Close()
}

// ActiveDemo exposes the selected demo for tests and parent models.
func (m Model) ActiveDemo() config.Demo {
	return m.demos[m.active]
}

func forwardSize(width, height int) tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

// View renders the tab row above the active carousel.
func (m Model) View() string {
	tabs := make([]string, len(m.demos))
	for i, demo := range m.demos {
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		tabs[i] = style.Render(demo.Name)
	}

	row := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, tabs...))

	return lipgloss.JoinVertical(lipgloss.Left, row, m.car.View())
}
