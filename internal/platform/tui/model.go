package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/underwater-snake/internal/audio"
	"github.com/vovakirdan/underwater-snake/internal/core"
	"github.com/vovakirdan/underwater-snake/internal/registry"
	"github.com/vovakirdan/underwater-snake/internal/storage"
)

// statusFrames is how long a status message stays on screen.
const statusFrames = 120

// ScoreSaver persists finished rounds. *storage.Store implements it.
type ScoreSaver interface {
	SaveRound(r storage.RoundResult) (int64, error)
}

// Publisher receives spectator frames. *spectate.Hub implements it.
type Publisher interface {
	Publish(v any) error
}

// Options wires the model's collaborators. Every field is optional.
type Options struct {
	Store     ScoreSaver
	Audio     audio.Player
	Spectator Publisher
	Logger    *log.Logger

	// AllowBack lets b/esc leave a stopped or paused game, for sessions
	// that return to a menu.
	AllowBack bool

	// ScreenshotDir overrides ~/.snake/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusTTL  int
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("Screenshot failed", "error", err)
			m.setStatus("Screenshot failed")
		} else {
			m.setStatus("Saved " + filepath.Base(path))
		}
		return m, nil
	case "ctrl+y":
		if err := m.copyScreen(); err != nil {
			m.opts.Logger.Warn("Clipboard copy failed", "error", err)
			m.setStatus("Clipboard unavailable")
		} else {
			m.setStatus("Copied to clipboard")
		}
		return m, nil
	}

	if m.opts.AllowBack && m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(!m.gameState.Running || m.gameState.Paused) {
		m.saveUnfinished()
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveUnfinished()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	if result.Moved || len(result.Events) > 0 {
		m.publish()
	}

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents plays cues and saves finished rounds.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		if cue, ok := audio.ForEvent(e); ok {
			m.opts.Audio.Play(cue)
		}
		if e.Kind == core.EventRoundOver {
			m.opts.Logger.Debug("Round over", "score", e.Score, "length", e.Length, "cause", e.Cause)
			m.saveRound(storage.RoundResult{
				GameID: m.game.ID(),
				Score:  e.Score,
				Length: e.Length,
				Cause:  e.Cause,
			})
		}
	}
}

// saveUnfinished records the round in progress when the player leaves it.
func (m *Model) saveUnfinished() {
	if !m.gameState.Running {
		return
	}
	m.saveRound(storage.RoundResult{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Length: m.gameState.Length,
		Cause:  "quit",
	})
}

// saveRound persists rounds that scored. Failures are logged and the game
// carries on.
func (m *Model) saveRound(r storage.RoundResult) {
	if m.opts.Store == nil || r.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveRound(r); err != nil {
		m.opts.Logger.Warn("Could not save round", "score", r.Score, "error", err)
	}
}

func (m *Model) publish() {
	if m.opts.Spectator == nil {
		return
	}
	obs, ok := m.game.(registry.Observable)
	if !ok {
		return
	}
	if err := m.opts.Spectator.Publish(obs.Observe()); err != nil {
		m.opts.Logger.Warn("Spectator publish failed", "error", err)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusFrames
}

// screenshotDir returns where screenshots are written.
func (m *Model) screenshotDir() (string, error) {
	if m.opts.ScreenshotDir != "" {
		return m.opts.ScreenshotDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	return filepath.Join(home, ".snake", "screenshots"), nil
}

// saveScreenshot saves the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := m.screenshotDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// copyScreen puts the current frame on the system clipboard.
func (m *Model) copyScreen() error {
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		return fmt.Errorf("tui: cannot copy to clipboard: %w", err)
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
