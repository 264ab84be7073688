package viz

import (
	"io"
	"log"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bootquiz/internal/boot"
	"github.com/san-kum/bootquiz/internal/quiz"
	"github.com/san-kum/bootquiz/internal/rain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type screen int

const (
	screenBoot screen = iota
	screenQuiz
	screenResult
)

func (s screen) String() string {
	switch s {
	case screenBoot:
		return "boot"
	case screenQuiz:
		return "quiz"
	case screenResult:
		return "result"
	}
	return "unknown"
}

// Options configures an App. Zero durations and sizes fall back to the
// package defaults.
type Options struct {
	Questions    []quiz.Question
	PassFraction float64
	BootLines    []string
	BootDelay    time.Duration
	RainInterval time.Duration
	CellSize     int
	RainOptions  []rain.Option
	Theme        string
	Logger       *log.Logger
}

type frameMsg time.Time

type revealMsg struct{}

// App is the Bubble Tea model tying the rain background, the boot screen
// and the quiz together. Key presses are translated into the start,
// select, advance and restart transitions; everything drawn comes from
// component snapshots.
type App struct {
	opts          Options
	screen        screen
	boot          *boot.Sequencer
	session       *quiz.Session
	rain          *rain.Rain
	grid          *Grid
	theme         Theme
	cursor        int
	width, height int
	log           *log.Logger
}

// NewApp builds the app and starts the boot sequence. It fails if the
// question set or the rain settings are invalid.
func NewApp(opts Options) (*App, error) {
	if opts.BootDelay < 0 {
		opts.BootDelay = 0
	}
	if opts.RainInterval <= 0 {
		opts.RainInterval = rain.DefaultInterval
	}
	if opts.CellSize == 0 {
		opts.CellSize = rain.DefaultCellSize
	}
	if opts.PassFraction == 0 {
		opts.PassFraction = quiz.DefaultPassFraction
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	session, err := quiz.NewSession(opts.Questions, quiz.WithPassFraction(opts.PassFraction))
	if err != nil {
		return nil, err
	}

	a := &App{
		opts:    opts,
		screen:  screenBoot,
		session: session,
		theme:   GetTheme(opts.Theme),
		log:     logger,
	}
	if err := a.resize(defaultWidth, defaultHeight); err != nil {
		return nil, err
	}
	a.boot = boot.New(func() { a.log.Printf("boot: complete after %d lines", a.boot.Total()) })
	if err := a.boot.Start(opts.BootLines, opts.BootDelay); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) resize(w, h int) error {
	grid := NewGrid(w, h, a.opts.CellSize)
	r, err := rain.New(grid, a.opts.CellSize, a.opts.RainOptions...)
	if err != nil {
		return err
	}
	a.width, a.height = w, h
	a.grid, a.rain = grid, r
	return nil
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.frame(), a.nextReveal())
}

func (a *App) frame() tea.Cmd {
	return tea.Tick(a.opts.RainInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) nextReveal() tea.Cmd {
	if a.boot.Ready() {
		return nil
	}
	return tea.Tick(a.boot.Delay(), func(time.Time) tea.Msg { return revealMsg{} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := a.resize(msg.Width, msg.Height); err != nil {
			a.log.Printf("resize: %v", err)
		}
		return a, nil
	case frameMsg:
		a.rain.Tick()
		return a, a.frame()
	case revealMsg:
		if a.boot.Reveal() {
			a.log.Printf("boot: line %d/%d", a.boot.Revealed(), a.boot.Total())
		}
		return a, a.nextReveal()
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "t":
		a.theme = NextTheme(a.theme)
		return a, nil
	}
	switch a.screen {
	case screenBoot:
		a.bootKey(msg)
	case screenQuiz:
		a.quizKey(msg)
	case screenResult:
		a.resultKey(msg)
	}
	return a, nil
}

func (a *App) bootKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter", " ", "s":
		// start stays hidden until the last boot line is out
		if !a.boot.Ready() {
			return
		}
		a.screen = screenQuiz
		a.cursor = 0
		a.log.Printf("quiz: started with %d questions", a.session.Len())
	}
}

func (a *App) quizKey(msg tea.KeyMsg) {
	q, _ := a.session.Current()
	switch key := msg.String(); key {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(q.Options)-1 {
			a.cursor++
		}
	case "enter", " ":
		if a.session.Locked() {
			a.advance()
		} else {
			a.selectOption(a.cursor)
		}
	case "n", "right", "l":
		a.advance()
	default:
		if n, err := strconv.Atoi(key); err == nil && len(key) == 1 {
			a.selectOption(n - 1)
		}
	}
}

func (a *App) selectOption(i int) {
	if !a.session.Select(i) {
		return
	}
	a.cursor = i
	a.log.Printf("quiz: question %d answered with option %d, score %d", a.session.Index()+1, i+1, a.session.Score())
}

func (a *App) advance() {
	if !a.session.Advance() {
		return
	}
	a.cursor = 0
	if a.session.Phase() == quiz.PhaseResult {
		a.screen = screenResult
		r := a.session.Result()
		a.log.Printf("quiz: finished %s (%s)", r.ScoreLine(), r.Verdict())
	}
}

func (a *App) resultKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "r", "enter":
		a.session.Restart()
		a.screen = screenQuiz
		a.cursor = 0
		a.log.Printf("quiz: restarted")
	}
}

func (a *App) View() string {
	var panel string
	switch a.screen {
	case screenBoot:
		panel = renderBoot(a.boot.Lines(), a.boot.Ready(), a.theme)
	case screenQuiz:
		panel = renderQuiz(a.session.Snapshot(), a.cursor, a.theme)
	case screenResult:
		panel = renderResult(a.session.Result(), a.theme)
	}
	return a.grid.Overlay(panel, a.theme)
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
