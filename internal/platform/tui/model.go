package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Options configures the game screen.
type Options struct {
	Runtime       core.RuntimeConfig
	Theme         config.Theme
	Audio         game.Audio // nil plays nothing
	Logger        *log.Logger
	ScreenshotDir string // empty uses ~/.snake/screenshots
}

// Model is the Bubble Tea model for playing snake.
type Model struct {
	session *game.Session
	canvas  *game.Canvas
	sched   *loopScheduler
	keys    KeyMap
	help    help.Model
	styles  Styles
	logger  *log.Logger

	screenshotDir string
	status        string
	width         int
	height        int
	quitting      bool
}

// NewModel creates the session and wires it to the terminal.
func NewModel(opts Options) (Model, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas := game.NewCanvas(opts.Runtime.Grid)
	sched := &loopScheduler{}
	sessionOpts := []game.Option{
		game.WithRenderer(canvas),
		game.WithScheduler(sched),
		game.WithLogger(logger),
	}
	if opts.Audio != nil {
		sessionOpts = append(sessionOpts, game.WithAudio(opts.Audio))
	}
	session, err := game.New(opts.Runtime, sessionOpts...)
	if err != nil {
		return Model{}, err
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	}

	h := help.New()
	h.ShowAll = false

	logger.Info("session ready", "seed", opts.Runtime.Seed, "cols", opts.Runtime.Grid.Cols(), "rows", opts.Runtime.Grid.Rows())
	return Model{
		session:       session,
		canvas:        canvas,
		sched:         sched,
		keys:          DefaultKeyMap(),
		help:          h,
		styles:        NewStyles(opts.Theme),
		logger:        logger,
		screenshotDir: dir,
	}, nil
}

// Init does nothing: the session waits in Idle for the start key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if m.session.HandleAction(action) && !action.IsDirection() {
		m.logger.Debug("control", "action", action, "state", m.session.State())
		m.status = ""
	}
	m.keys.SyncControls(m.session.Controls())
	return m, m.sched.pending()
}

// handleTick runs one game tick if msg belongs to the live tick chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.accept(msg) {
		return m, nil
	}
	m.session.Tick()
	m.keys.SyncControls(m.session.Controls())
	return m, m.sched.next()
}

// saveScreenshot writes the board as plain text and returns a status line.
func (m Model) saveScreenshot() string {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return "screenshot failed: " + err.Error()
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return "screenshot failed: " + err.Error()
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	scr := m.canvas.Screen()
	needW, needH := scr.Width(), scr.Height()+2
	if m.width > 0 && (m.width < needW || m.height < needH) {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "\n" + footer
	}
	return RenderScreen(scr, m.styles) + "\n" + footer
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
