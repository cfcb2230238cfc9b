package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/spltui/internal/session"
)

func (m *model) View() string {
	var body string
	var hints []key.Binding
	switch s := m.screen.(type) {
	case session.Menu:
		body = m.viewMenu()
		hints = []key.Binding{m.keys.Mode, m.keys.Quit}
	case session.OneVarForm:
		body = m.viewForm("Linear Equation in One Variable (SPLSV)", []string{"ax + b = 0"}, s.Form, 2)
		hints = m.formHints()
	case session.TwoVarForm:
		body = m.viewForm("Linear Equations in Two Variables (SPLDV)", []string{"a1x + b1y = c1", "a2x + b2y = c2"}, s.Form, fieldColumns)
		hints = m.formHints()
	case session.Result:
		body = m.viewResult(s.Text)
		hints = []key.Binding{m.keys.Scroll, m.keys.Back, m.keys.Quit}
	default:
		return ""
	}
	return joinNonEmpty([]string{m.heroView(), body, m.help.ShortHelpView(hints)})
}

func (m *model) formHints() []key.Binding {
	return []key.Binding{m.keys.Edit, m.keys.Left, m.keys.Right, m.keys.Backspace, m.keys.Submit, m.keys.Back, m.keys.Quit}
}

func (m *model) heroView() string {
	lines := make([]string, 0, len(logoArtLines)+1)
	for _, parts := range logoArtLines {
		lines = append(lines, m.styles.Logo.Render(parts[0])+m.styles.LogoAccent.Render(parts[1]))
	}
	logo := m.styles.HeaderBox.Render(strings.Join(lines, "\n"))
	owner := m.styles.Owner.Render(fmt.Sprintf(" spltui v%s • %s ", Version, heroTagline))
	return lipgloss.JoinVertical(lipgloss.Center, logo, owner)
}

func (m *model) viewMenu() string {
	rows := []string{
		m.styles.PanelTitle.Render("Menu"),
		"",
		m.styles.MenuKey.Render("[1] ") + m.styles.MenuLabel.Render("SPLSV  one variable"),
		m.styles.MenuKeyAlt.Render("[2] ") + m.styles.MenuLabel.Render("SPLDV  two variables"),
	}
	return m.styles.PanelBox.Render(strings.Join(rows, "\n"))
}

func (m *model) viewForm(title string, equations []string, form session.Form, columns int) string {
	header := []string{m.styles.PanelTitle.Render(title)}
	for _, eq := range equations {
		header = append(header, m.styles.Equation.Render(eq))
	}

	labels := form.Labels()
	fields := form.Fields()
	cells := make([]string, len(fields))
	for i, value := range fields {
		style := m.styles.Field
		if i == form.Cursor() {
			style = m.styles.FieldFocused
		}
		text := m.styles.FieldLabel.Render(labels[i]+": ") + value
		cells[i] = style.Width(m.layout.fieldWidth + 2).Render(text)
	}

	var rows []string
	for i := 0; i < len(cells); i += columns {
		end := i + columns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}

	content := strings.Join(header, "\n") + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.styles.PanelBox.Render(content)
}

func (m *model) viewResult(text string) string {
	heading := m.styles.ResultHeading.Render("Step-by-step solution")
	body := m.styles.ResultBody.Render(m.viewport.View())
	if text == session.InvalidInputMessage {
		heading = m.styles.Error.Render("Could not solve")
		body = m.styles.Error.Render(text)
	}
	return m.styles.PanelBox.Render(heading + "\n\n" + body)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
