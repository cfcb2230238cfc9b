package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/spltui/internal/session"
	"github.com/csheth/spltui/internal/theme"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Start    session.Start
	Palette  theme.Palette
	Debounce time.Duration
	Logger   *slog.Logger
	// Clock stamps key events for debouncing. Defaults to time.Now.
	Clock func() time.Time
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.Palette.Name == "" {
		config.Palette = theme.Dark
	}
	styles := theme.NewStyles(config.Palette)

	helpView := help.New()
	helpView.Styles.ShortKey = styles.HelpKey
	helpView.Styles.ShortDesc = styles.HelpDesc
	helpView.Styles.ShortSeparator = styles.HelpSeparator

	layout := newPageLayout()
	m := &model{
		config:    config,
		logger:    config.Logger.With("component", "tui"),
		styles:    styles,
		keys:      newKeyMap(),
		help:      helpView,
		layout:    layout,
		viewport:  viewport.New(layout.resultWidth, layout.resultHeight),
		debouncer: session.NewDebouncer(config.Debounce),
		screen:    session.Initial(config.Start),
	}
	m.syncResult(nil)
	return m
}

type model struct {
	config    Config
	logger    *slog.Logger
	styles    theme.Styles
	keys      keyMap
	help      help.Model
	layout    pageLayout
	viewport  viewport.Model
	debouncer *session.Debouncer
	screen    session.Screen
}

func (m *model) Init() tea.Cmd {
	m.logger.Debug("session started",
		"screen", session.Name(m.screen),
		"theme", m.config.Palette.Name,
		"debounce", m.debouncer.Threshold())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.resultWidth
		m.viewport.Height = m.layout.resultHeight
		if res, ok := m.screen.(session.Result); ok {
			m.viewport.SetContent(m.wrapResult(res.Text))
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	interrupt := key.Matches(msg, m.keys.Interrupt)
	if !interrupt && !m.debouncer.Accept(m.config.Clock()) {
		m.logger.Debug("key dropped by debounce", "key", msg.String())
		return m, nil
	}

	prev := m.screen
	for _, k := range m.sessionKeys(msg) {
		m.screen = session.Apply(m.screen, k)
	}
	m.logger.Debug("key applied",
		"key", msg.String(),
		"from", session.Name(prev),
		"to", session.Name(m.screen))

	if session.IsTerminated(m.screen) {
		m.logger.Debug("exit requested")
		return m, tea.Quit
	}

	if _, wasResult := prev.(session.Result); wasResult {
		if _, stillResult := m.screen.(session.Result); stillResult && key.Matches(msg, m.keys.Scroll) {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	m.syncResult(prev)
	return m, nil
}

// sessionKeys translates a bubbletea key into the keys the state machine
// understands. A multi-rune message (paste) becomes one key per rune.
func (m *model) sessionKeys(msg tea.KeyMsg) []session.Key {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return []session.Key{{Kind: session.KeyInterrupt}}
	case key.Matches(msg, m.keys.Backspace):
		return []session.Key{{Kind: session.KeyBackspace}}
	case key.Matches(msg, m.keys.Left):
		return []session.Key{{Kind: session.KeyLeft}}
	case key.Matches(msg, m.keys.Right):
		return []session.Key{{Kind: session.KeyRight}}
	case key.Matches(msg, m.keys.Submit):
		return []session.Key{{Kind: session.KeyEnter}}
	case key.Matches(msg, m.keys.Back):
		return []session.Key{{Kind: session.KeyEsc}}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.RuneKey(r))
		}
		return keys
	default:
		return []session.Key{{Kind: session.KeyOther}}
	}
}

// syncResult loads the result text into the viewport when the session has
// just arrived on a result screen.
func (m *model) syncResult(prev session.Screen) {
	res, ok := m.screen.(session.Result)
	if !ok {
		return
	}
	if _, wasResult := prev.(session.Result); wasResult {
		return
	}
	m.viewport.SetContent(m.wrapResult(res.Text))
	m.viewport.GotoTop()
	m.logger.Debug("result ready", "lines", m.viewport.TotalLineCount())
}

func (m *model) wrapResult(text string) string {
	return wordwrap.String(text, m.layout.resultWidth)
}
