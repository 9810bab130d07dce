package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the simulation the terminal frontend drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// helpRows is the space reserved below the game for the key help line.
const helpRows = 1

// Options configures a Model.
type Options struct {
	Config core.RuntimeConfig
	Styles Styles
	Keys   KeyMap
	Logger *log.Logger
}

// Model is the Bubble Tea model that runs a game frame by frame.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	styles     Styles
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	styles := opts.Styles
	if styles == nil {
		styles = Styles{}
	}
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpRows)),
		config:     cfg,
		styles:     styles,
		keys:       keys,
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed, "run", m.game.State().Run)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next frame. Keys pressed between
// two ticks all count for that frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "resets", m.gameState.Resets)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The run continues; the game
// shows an overlay while the terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpRows))
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick steps the game by the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameInterval()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvent(ev core.Event) {
	switch ev.Name {
	case core.EventGameOver:
		m.logger.Info(ev.Name, ev.Fields...)
	default:
		m.logger.Debug(ev.Name, ev.Fields...)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.styles))
	if m.screen.Height() > 0 {
		b.WriteRune('\n')
	}
	b.WriteString(m.styles.style(core.ColorFrame).Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
