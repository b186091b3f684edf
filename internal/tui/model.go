// Package tui is the Bubble Tea interface for playing draw poker: a main
// menu, prompts for changing settings, and the game screen.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/deck"
	"github.com/lox/drawpoker/internal/game"
)

type screen int

const (
	screenMenu screen = iota
	screenNumber
	screenConfirm
	screenGame
)

func (s screen) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenNumber:
		return "number"
	case screenConfirm:
		return "confirm"
	case screenGame:
		return "game"
	default:
		return "unknown"
	}
}

const (
	defaultWidth = 80
	logHeight    = 8
)

// Config configures the interface
type Config struct {
	Settings      game.Settings
	Logger        *log.Logger
	Clock         quartz.Clock       // Session timestamps, wall clock when nil
	NewPicker     func() deck.Picker // Random source per session, entropy when nil
	HistoryWriter game.HistoryWriter // Session transcripts, discarded when nil
	WideCards     bool
	Theme         string
	TestMode      bool
}

// numberPrompt edits one integer setting
type numberPrompt struct {
	name     string
	min, max int
	current  int
	apply    func(int) error
}

// confirmPrompt asks a yes/no question. Enter alone answers yes.
type confirmPrompt struct {
	title    string
	question string
	onYes    func() tea.Cmd
}

type logEntry struct {
	style lipgloss.Style
	text  string
}

// Model is the Bubble Tea model for the whole application
type Model struct {
	cfg      Config
	settings game.Settings
	styles   Styles
	logger   *log.Logger

	screen  screen
	number  *numberPrompt
	confirm *confirmPrompt

	session   *game.Session
	selection [deck.HandSize]bool

	input   textinput.Model
	logView viewport.Model
	gameLog []logEntry

	width    int
	quitting bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// New creates the model, starting on the main menu
func New(cfg Config) *Model {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	st := NewStyles(cfg.Theme)

	ti := textinput.New()
	ti.CharLimit = 20
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = st.Prompt
	ti.TextStyle = st.Text

	vp := viewport.New(defaultWidth-2, logHeight)

	m := &Model{
		cfg:         cfg,
		settings:    cfg.Settings,
		styles:      st,
		logger:      cfg.Logger.WithPrefix("tui"),
		screen:      screenMenu,
		input:       ti,
		logView:     vp,
		width:       defaultWidth,
		testMode:    cfg.TestMode,
		capturedLog: []string{},
	}
	m.AddLogEntry("Welcome to draw poker.")
	return m
}

// Run starts the interface on the alternate screen and blocks until it quits
func Run(cfg Config) error {
	program := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.logView.Width = max(msg.Width-2, 1)
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenNumber:
			return m.updateNumber(msg)
		case screenConfirm:
			return m.updateConfirm(msg)
		case screenGame:
			return m.updateGame(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("Quitting")
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "g":
		m.startGame()
	case "j":
		m.openNumber(&numberPrompt{
			name:    "Jokers",
			min:     0,
			max:     deck.MaxJokers,
			current: m.settings.Jokers,
			apply:   m.settings.SetJokers,
		})
	case "c":
		m.openNumber(&numberPrompt{
			name:    "Exchange rounds",
			min:     0,
			max:     game.MaxExchanges,
			current: m.settings.Exchanges,
			apply:   m.settings.SetExchanges,
		})
	case "r":
		m.openConfirm(&confirmPrompt{
			title:    "Reset settings",
			question: "Really reset the settings?",
			onYes: func() tea.Cmd {
				m.settings.Reset()
				m.logger.Info("Settings reset", "jokers", m.settings.Jokers, "exchanges", m.settings.Exchanges)
				m.addSuccess(fmt.Sprintf("Jokers reset to %d and exchange rounds to %d.", m.settings.Jokers, m.settings.Exchanges))
				return nil
			},
		})
	case "q", "enter":
		m.openConfirm(&confirmPrompt{
			title:    "Quit",
			question: "Really quit?",
			onYes: func() tea.Cmd {
				_, cmd := m.quit()
				return cmd
			},
		})
	default:
		m.addError("Choose one of g, j, c, r or q.")
	}
	return m, nil
}

func (m *Model) openNumber(p *numberPrompt) {
	m.number = p
	m.screen = screenNumber
	m.input.Reset()
	m.input.Placeholder = strconv.Itoa(p.current)
	m.input.Focus()
}

func (m *Model) openConfirm(p *confirmPrompt) {
	m.confirm = p
	m.screen = screenConfirm
	m.input.Blur()
}

func (m *Model) backToMenu() {
	m.screen = screenMenu
	m.number = nil
	m.confirm = nil
	m.selection = [deck.HandSize]bool{}
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) updateNumber(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.backToMenu()
		return m, nil
	case "enter":
		m.submitNumber(strings.TrimSpace(m.input.Value()))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitNumber(value string) {
	p := m.number
	if value == "" {
		m.backToMenu()
		return
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		m.addError("Enter a whole number.")
		m.input.Reset()
		return
	}
	if n < p.min || n > p.max {
		m.addError(fmt.Sprintf("Enter a number from %d to %d.", p.min, p.max))
		m.input.Reset()
		return
	}
	if err := p.apply(n); err != nil {
		m.addError(err.Error())
		m.input.Reset()
		return
	}

	m.logger.Info("Setting changed", "setting", p.name, "value", n)
	m.addSuccess(fmt.Sprintf("%s set to %d.", p.name, n))
	m.backToMenu()
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.confirm
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		m.backToMenu()
		return m, p.onYes()
	case "n", "esc":
		m.backToMenu()
	default:
		m.addError("Answer y or n.")
	}
	return m, nil
}

func (m *Model) startGame() {
	opts := []game.Option{game.WithLogger(m.cfg.Logger)}
	if m.cfg.Clock != nil {
		opts = append(opts, game.WithClock(m.cfg.Clock))
	}
	if m.cfg.NewPicker != nil {
		opts = append(opts, game.WithPicker(m.cfg.NewPicker()))
	}
	if m.cfg.HistoryWriter != nil {
		opts = append(opts, game.WithHistoryWriter(m.cfg.HistoryWriter))
	}

	s, err := game.NewSession(m.settings, opts...)
	if err != nil {
		m.logger.Error("Failed to start session", "error", err)
		m.addError(fmt.Sprintf("Cannot start a game: %v", err))
		return
	}

	m.session = s
	m.screen = screenGame
	m.selection = [deck.HandSize]bool{}
	m.input.Reset()
	m.input.Placeholder = "card numbers, e.g. 135"
	m.input.Focus()
	m.AddLogEntry(fmt.Sprintf("Dealt %s: %s.", FormatCards(s.Hand(), m.styles), s.Category()))
	if s.IsOver() {
		m.announceFinal()
	}
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	if s.IsOver() {
		if msg.String() == "enter" {
			m.session = nil
			m.backToMenu()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		m.submitSelection(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.previewSelection()
	return m, cmd
}

// previewSelection highlights the cards the current input would exchange
func (m *Model) previewSelection() {
	m.selection = [deck.HandSize]bool{}
	positions, err := game.ParseSelection(m.input.Value(), deck.HandSize)
	if err != nil {
		return
	}
	for _, p := range positions {
		m.selection[p] = true
	}
}

func (m *Model) submitSelection(value string) {
	s := m.session
	positions, err := game.ParseSelection(value, s.MaxSelectable())
	m.input.Reset()
	m.selection = [deck.HandSize]bool{}
	if err != nil {
		m.addError(err.Error())
		return
	}

	if len(positions) == 0 {
		if err := s.Stand(); err != nil {
			m.addError(err.Error())
			return
		}
		m.AddLogEntry("You stand.")
	} else {
		if err := s.Exchange(positions); err != nil {
			m.addError(err.Error())
			return
		}
		m.AddLogEntry(fmt.Sprintf("Exchanged card(s) %s: %s, %s.",
			game.FormatSelection(positions), FormatCards(s.Hand(), m.styles), s.Category()))
	}

	if s.IsOver() {
		m.announceFinal()
	}
}

func (m *Model) announceFinal() {
	s := m.session
	result, err := s.Result()
	if err != nil {
		return
	}
	if s.Remaining() == 0 {
		m.addWarning("The deck is out of cards, so no more exchanges are possible.")
	}
	m.addSuccess(fmt.Sprintf("Final hand: %s. Press Enter to return to the menu.", result.Category))
	m.input.Blur()
}

// AddLogEntry adds a plain entry to the message log
func (m *Model) AddLogEntry(entry string) {
	m.addLog(m.styles.Log, entry)
}

func (m *Model) addSuccess(entry string) { m.addLog(m.styles.Success, entry) }
func (m *Model) addWarning(entry string) { m.addLog(m.styles.Warning, entry) }
func (m *Model) addError(entry string)   { m.addLog(m.styles.Error, entry) }

func (m *Model) addLog(style lipgloss.Style, entry string) {
	m.gameLog = append(m.gameLog, logEntry{style: style, text: entry})

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	lines := make([]string, len(m.gameLog))
	for i, e := range m.gameLog {
		lines[i] = e.style.Render(e.text)
	}
	m.logView.SetContent(strings.Join(lines, "\n"))
	m.logView.GotoBottom()
}

// Settings returns the settings the next game will use
func (m *Model) Settings() game.Settings { return m.settings }

// Session returns the game in progress, or nil on the menu
func (m *Model) Session() *game.Session { return m.session }

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the model is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
