package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/camerondurham/typy-cli/internal/modes"
)

// Options configures the UI.
type Options struct {
	Theme    Theme
	Cursor   CursorStyle
	Modes    modes.Settings
	Language string
	Logger   *log.Logger
	Rand     *rand.Rand // nil uses a time-seeded source
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	theme       Theme
	styles      Styles
	cursorStyle CursorStyle
	settings    modes.Settings
	language    string
	logger      *log.Logger
	rng         *rand.Rand

	// UI state
	keys   keyMap
	help   help.Model
	cursor cursor.Model
	width  int

	// Session state
	session  session
	started  time.Time
	elapsed  time.Duration
	finished bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	theme := opts.Theme
	if theme.Name == "" {
		theme = DefaultTheme()
	}
	settings := opts.Modes
	if settings.Mode == "" {
		settings = modes.Defaults()
	}
	language := opts.Language
	if language == "" {
		language = modes.DefaultLanguage
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1))
	}
	cursorStyle := opts.Cursor
	if cursorStyle.Name == "" {
		cursorStyle = CursorFromConfig(nil)
	}

	styles := theme.Styles()
	h := help.New()
	h.Styles.ShortKey = styles.Accent
	h.Styles.ShortDesc = styles.Missing
	h.Styles.ShortSeparator = styles.Missing

	m := Model{
		theme:       theme,
		styles:      styles,
		cursorStyle: cursorStyle,
		settings:    settings,
		language:    language,
		logger:      logger,
		rng:         rng,
		keys:        DefaultKeyMap(),
		help:        h,
		cursor:      newCursor(cursorStyle, styles),
	}
	m.restart()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.cursorStyle.Blink {
		return cursor.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.NextMode):
		m.settings.Mode = modes.Next(m.settings.Mode)
		m.logger.Debug("mode changed", "mode", m.settings.Mode)
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Backspace):
		if !m.finished {
			m.session.Backspace()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		m.typeRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.typeRune(r)
		}
	}
	return m, nil
}

func (m *Model) typeRune(r rune) {
	if m.finished {
		return
	}
	if m.session.Pos() == 0 && m.started.IsZero() {
		m.started = time.Now()
	}
	m.session.Type(r)
	if m.session.Done() {
		m.finished = true
		m.elapsed = time.Since(m.started)
		m.logger.Info("session complete",
			"mode", m.settings.Mode,
			"language", m.language,
			"wpm", fmt.Sprintf("%.1f", m.WPM()),
			"errors", m.session.Errors(),
		)
	}
}

func (m *Model) restart() {
	words, ok := modes.Words(m.language)
	if !ok {
		m.logger.Warn("unknown language, using default", "language", m.language, "default", modes.DefaultLanguage)
	}
	words = modes.Apply(words, m.settings, m.rng)
	m.session = newSession(modes.Sentence(words))
	m.started = time.Time{}
	m.elapsed = 0
	m.finished = false
}

// WPM returns words per minute for a finished session, counting five runes
// as one word.
func (m Model) WPM() float64 {
	if !m.finished || m.elapsed <= 0 {
		return 0
	}
	words := float64(len(m.session.target)) / 5
	return words / m.elapsed.Minutes()
}

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderText(),
		"",
		renderGraph(m.session.WordAccuracy(), m.styles, m.contentWidth()),
		"",
		m.renderStatus(),
		m.styles.Footer.Render(m.help.View(m.keys)),
	}
	return strings.Join(sections, "\n")
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m Model) renderHeader() string {
	meta := fmt.Sprintf("mode: %s · lang: %s · cursor: %s", m.settings.Mode, m.language, m.cursorStyle.Name)
	return m.styles.Header.Render("typy") + m.styles.Footer.Render(meta)
}

func (m Model) renderText() string {
	var b strings.Builder
	for i, r := range m.session.target {
		ch := runeString(r)
		switch m.session.state(i) {
		case charCorrect:
			b.WriteString(m.styles.Typed.Render(ch))
		case charWrong:
			if r == ' ' {
				ch = "_"
			}
			b.WriteString(m.styles.Error.Render(ch))
		case charCursor:
			b.WriteString(renderCursor(m.cursor, m.cursorStyle, m.styles, ch))
		default:
			b.WriteString(m.styles.Missing.Render(ch))
		}
	}
	return lipgloss.NewStyle().Width(m.contentWidth()).Render(b.String())
}

func (m Model) renderStatus() string {
	if m.finished {
		return m.styles.Accent.Render(fmt.Sprintf("done · %.0f wpm · %d errors", m.WPM(), m.session.Errors()))
	}
	return m.styles.Footer.Render(fmt.Sprintf("%d/%d · %d errors", m.session.Pos(), len(m.session.target), m.session.Errors()))
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
