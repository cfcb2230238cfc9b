package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/spltui/internal/session"
	"github.com/csheth/spltui/internal/theme"
)

const testDebounce = 50 * time.Millisecond

// steppingClock advances by step on every reading.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestModel(t *testing.T, start session.Start, step time.Duration) *model {
	t.Helper()
	clock := &steppingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
	teaModel, ok := New(Config{
		Start:    start,
		Palette:  theme.Dark,
		Debounce: testDebounce,
		Clock:    clock.Now,
	}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m *model, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewStartsOnConfiguredScreen(t *testing.T) {
	cases := []struct {
		start session.Start
		want  string
	}{
		{start: session.StartMenu, want: "menu"},
		{start: session.StartOneVar, want: "splsv"},
		{start: session.StartTwoVar, want: "spldv"},
		{start: session.StartInfo, want: "result"},
	}
	for _, tc := range cases {
		t.Run(string(tc.start), func(t *testing.T) {
			m := newTestModel(t, tc.start, time.Second)
			if got := session.Name(m.screen); got != tc.want {
				t.Fatalf("start screen mismatch: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestInfoStartLoadsViewport(t *testing.T) {
	m := newTestModel(t, session.StartInfo, time.Second)
	if !strings.Contains(m.viewport.View(), "SPLTUI solves linear equation systems") {
		t.Fatalf("info message missing from viewport:\n%s", m.viewport.View())
	}
}

func TestSolveOneVarThroughKeys(t *testing.T) {
	m := newTestModel(t, session.StartMenu, time.Second)
	press(t, m,
		runeMsg('1'),
		runeMsg('2'),
		tea.KeyMsg{Type: tea.KeyRight},
		runeMsg('-'),
		runeMsg('4'),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	res, ok := m.screen.(session.Result)
	if !ok {
		t.Fatalf("expected result screen, got %s", session.Name(m.screen))
	}
	if !strings.Contains(res.Text, "x = 2.00") {
		t.Fatalf("unexpected narration:\n%s", res.Text)
	}
	if !strings.Contains(m.View(), "Step-by-step solution") {
		t.Fatal("result view should render the solution heading")
	}
}

func TestSolveTwoVarThroughKeys(t *testing.T) {
	m := newTestModel(t, session.StartTwoVar, time.Second)
	right := tea.KeyMsg{Type: tea.KeyRight}
	press(t, m,
		runeMsg('1'), right, runeMsg('1'), right, runeMsg('3'), right,
		runeMsg('1'), right, runeMsg('-'), runeMsg('1'), right, runeMsg('1'),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	res, ok := m.screen.(session.Result)
	if !ok {
		t.Fatalf("expected result screen, got %s", session.Name(m.screen))
	}
	if !strings.Contains(res.Text, "x = 2.00, y = 1.00") {
		t.Fatalf("unexpected narration:\n%s", res.Text)
	}
}

func TestInvalidInputRendersError(t *testing.T) {
	m := newTestModel(t, session.StartOneVar, time.Second)
	press(t, m, runeMsg('-'), tea.KeyMsg{Type: tea.KeyEnter})
	if got, ok := m.screen.(session.Result); !ok || got.Text != session.InvalidInputMessage {
		t.Fatalf("expected invalid input result, got %#v", m.screen)
	}
	if !strings.Contains(m.View(), "Could not solve") {
		t.Fatal("invalid input should render the error heading")
	}
}

func TestDebounceDropsBurst(t *testing.T) {
	m := newTestModel(t, session.StartOneVar, 10*time.Millisecond)
	press(t, m, runeMsg('1'), runeMsg('1'), runeMsg('1'))
	form := m.screen.(session.OneVarForm)
	if got := form.Fields()[0]; got != "1" {
		t.Fatalf("burst should apply once, got %q", got)
	}

	slow := newTestModel(t, session.StartOneVar, 2*testDebounce)
	press(t, slow, runeMsg('1'), runeMsg('1'), runeMsg('1'))
	form = slow.screen.(session.OneVarForm)
	if got := form.Fields()[0]; got != "111" {
		t.Fatalf("spaced keys should all apply, got %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, session.StartTwoVar, time.Second)
	if cmd := press(t, m, runeMsg('Q')); !isQuitCmd(cmd) {
		t.Fatal("Q should quit from a form")
	}
	if !session.IsTerminated(m.screen) {
		t.Fatalf("expected terminated, got %s", session.Name(m.screen))
	}
}

func TestInterruptBypassesDebounce(t *testing.T) {
	m := newTestModel(t, session.StartMenu, time.Millisecond)
	press(t, m, runeMsg('1'))
	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuitCmd(cmd) {
		t.Fatal("ctrl+c should quit even inside the debounce window")
	}
}

func TestEscReturnsToMenu(t *testing.T) {
	m := newTestModel(t, session.StartOneVar, time.Second)
	press(t, m, runeMsg('5'), tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.screen.(session.Menu); !ok {
		t.Fatalf("expected menu, got %s", session.Name(m.screen))
	}
	if !strings.Contains(m.View(), "SPLSV") {
		t.Fatal("menu view should list the SPLSV mode")
	}
}

func TestScrollKeepsResult(t *testing.T) {
	m := newTestModel(t, session.StartInfo, time.Second)
	before := m.screen
	press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp})
	if m.screen != before {
		t.Fatalf("scrolling should not change the screen, got %s", session.Name(m.screen))
	}
}

func TestWindowSizeResizesViewport(t *testing.T) {
	m := newTestModel(t, session.StartInfo, time.Second)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.viewport.Width != 114 || m.viewport.Height != 22 {
		t.Fatalf("viewport not resized: %dx%d", m.viewport.Width, m.viewport.Height)
	}
}

func TestTerminatedRendersNothing(t *testing.T) {
	m := newTestModel(t, session.StartMenu, time.Second)
	press(t, m, runeMsg('q'))
	if view := m.View(); view != "" {
		t.Fatalf("terminated view should be empty, got %q", view)
	}
}

func TestFormViewHighlightsLabels(t *testing.T) {
	m := newTestModel(t, session.StartTwoVar, time.Second)
	view := m.View()
	for _, label := range []string{"a1:", "b1:", "c1:", "a2:", "b2:", "c2:"} {
		if !strings.Contains(view, label) {
			t.Fatalf("form view missing label %s", label)
		}
	}
}
