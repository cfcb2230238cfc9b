package theme

import "github.com/charmbracelet/lipgloss"

// Styles bundles every lipgloss style the renderer uses for one palette.
type Styles struct {
	Logo          lipgloss.Style
	LogoAccent    lipgloss.Style
	Owner         lipgloss.Style
	HeaderBox     lipgloss.Style
	PanelBox      lipgloss.Style
	PanelTitle    lipgloss.Style
	Equation      lipgloss.Style
	MenuKey       lipgloss.Style
	MenuKeyAlt    lipgloss.Style
	MenuLabel     lipgloss.Style
	Field         lipgloss.Style
	FieldFocused  lipgloss.Style
	FieldLabel    lipgloss.Style
	ResultHeading lipgloss.Style
	ResultBody    lipgloss.Style
	Error         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// NewStyles derives the renderer styles from p. Every style paints p.BG so
// the palette reads the same on any terminal background.
func NewStyles(p Palette) Styles {
	base := func() lipgloss.Style {
		return lipgloss.NewStyle().Background(p.BG)
	}
	box := func(border lipgloss.Border, edge lipgloss.Color) lipgloss.Style {
		return base().Border(border).BorderForeground(edge).BorderBackground(p.BG)
	}
	return Styles{
		Logo:          base().Bold(true).Foreground(p.Yellow),
		LogoAccent:    base().Bold(true).Foreground(p.Green),
		Owner:         base().Bold(true).Foreground(p.Aqua),
		HeaderBox:     box(lipgloss.RoundedBorder(), p.Orange).Padding(0, 2),
		PanelBox:      box(lipgloss.ThickBorder(), p.Aqua).Foreground(p.FG).Padding(1, 2),
		PanelTitle:    base().Bold(true).Foreground(p.Aqua),
		Equation:      base().Foreground(p.FG),
		MenuKey:       base().Bold(true).Foreground(p.Blue),
		MenuKeyAlt:    base().Bold(true).Foreground(p.Green),
		MenuLabel:     base().Bold(true).Foreground(p.FG),
		Field:         box(lipgloss.NormalBorder(), p.Blue).Foreground(p.FG).Padding(0, 1),
		FieldFocused:  box(lipgloss.NormalBorder(), p.Yellow).Foreground(p.Yellow).Bold(true).Padding(0, 1),
		FieldLabel:    base().Bold(true).Foreground(p.FG),
		ResultHeading: base().Bold(true).Foreground(p.Green),
		ResultBody:    base().Foreground(p.FG),
		Error:         base().Bold(true).Foreground(p.Red),
		HelpKey:       base().Bold(true).Foreground(p.Blue),
		HelpDesc:      base().Foreground(p.FG),
		HelpSeparator: base().Foreground(p.Gray),
	}
}
