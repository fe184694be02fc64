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

	"github.com/vovakirdan/school-survival/internal/core"
	"github.com/vovakirdan/school-survival/internal/games/survival"
	"github.com/vovakirdan/school-survival/internal/storage"
)

// Options configures a game session in the terminal.
type Options struct {
	Runtime    core.RuntimeConfig
	Store      *storage.Store // Optional; nil disables score persistence
	Logger     *log.Logger
	Sound      survival.SoundSink
	HoldWindow time.Duration
	Preset     string // Recorded with saved scores
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game      *survival.Game
	screen    *core.Screen
	opts      Options
	logger    *log.Logger
	sound     survival.SoundSink
	keys      KeyMap
	held      *HeldKeys
	help      help.Model
	lastTick  time.Time
	highScore int
	saved     bool // Score of the finished run already persisted
	quitting  bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *survival.Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = survival.NopSound{}
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(1, opts.Runtime.ScreenH-1)),
		opts:   opts,
		logger: logger,
		sound:  sound,
		keys:   DefaultKeyMap(),
		held:   NewHeldKeys(opts.HoldWindow),
		help:   help.New(),
	}
	m.help.Width = opts.Runtime.ScreenW

	if opts.Store != nil {
		high, err := opts.Store.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		m.highScore = high
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.opts.Runtime.ScreenW, max(1, m.opts.Runtime.ScreenH-m.helpHeight()))
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.held.Press(m.keys.Action(msg), now)
	return m, nil
}

// handleResize processes window resize events. The play field is measured
// in pixels, so only the rendering scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-m.helpHeight()))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return 4
	}
	return 1
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.opts.Runtime.TickRate)
	m.lastTick = now

	res, err := m.game.Tick(m.held.Frame(now), dt)
	if err != nil {
		m.logger.Error("tick rejected", "dt", dt, "error", err)
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	for _, e := range res.Events {
		m.sound.Play(e)
		if e.Kind == survival.EventHit {
			m.logger.Debug("hit", "obstacle", e.Obstacle, "health", res.Health)
		}
	}

	if res.Restarted {
		m.saved = false
		m.held.Reset()
		m.logger.Info("run restarted")
	}
	if res.GameOver {
		m.finishRun(res)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finishRun persists the final score once per run.
func (m *Model) finishRun(res survival.TickResult) {
	if m.saved {
		return
	}
	m.saved = true
	st := m.game.State()
	m.logger.Info("game over", "score", res.FinalScore, "survived_ms", st.ElapsedMs, "dodged", st.Dodged)

	if res.FinalScore > m.highScore {
		m.highScore = res.FinalScore
	}
	if m.opts.Store == nil || res.FinalScore <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		Preset:     m.opts.Preset,
		Score:      res.FinalScore,
		SurvivedMs: int64(st.ElapsedMs),
		Dodged:     st.Dodged,
		Seed:       m.opts.Runtime.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// HighScore returns the best score known to the session.
func (m Model) HighScore() int {
	return m.highScore
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen, m.highScore)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".survival", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("survival_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.highScore)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and returns the final model.
func Run(game *survival.Game, opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
