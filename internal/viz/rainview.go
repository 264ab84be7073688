package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bootquiz/internal/rain"
)

// rainModel shows the background effect on its own.
type rainModel struct {
	grid     *Grid
	rain     *rain.Rain
	theme    Theme
	cell     int
	interval time.Duration
	opts     []rain.Option
}

func newRainModel(theme string, cellSize int, interval time.Duration, opts []rain.Option) (*rainModel, error) {
	if interval <= 0 {
		interval = rain.DefaultInterval
	}
	m := &rainModel{theme: GetTheme(theme), cell: cellSize, interval: interval, opts: opts}
	if err := m.resize(defaultWidth, defaultHeight); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *rainModel) resize(w, h int) error {
	grid := NewGrid(w, h, m.cell)
	r, err := rain.New(grid, m.cell, m.opts...)
	if err != nil {
		return err
	}
	m.grid, m.rain = grid, r
	return nil
}

func (m *rainModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *rainModel) Init() tea.Cmd { return m.tick() }

func (m *rainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.theme = NextTheme(m.theme)
		}
	case tea.WindowSizeMsg:
		_ = m.resize(msg.Width, msg.Height)
	case frameMsg:
		m.rain.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m *rainModel) View() string { return m.grid.Render(m.theme) }

// RunRain plays the rain effect full screen until a quit key is pressed.
func RunRain(theme string, cellSize int, interval time.Duration, opts ...rain.Option) error {
	m, err := newRainModel(theme, cellSize, interval, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
