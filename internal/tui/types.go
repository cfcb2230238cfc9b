package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

const heroTagline = "Solve linear equation systems step by step."

// Version is stamped into the header owner line.
var Version = "0.1.0"

const (
	minContentWidth       = 40
	panelHorizontalChrome = 6
	fieldColumns          = 3
	fieldChrome           = 4
	minFieldWidth         = 10
	layoutChrome          = 18
	minResultHeight       = 5
)

var logoArtLines = [][2]string{
	{"░██████╗██████╗░██╗░░░░░", "████████╗██╗░░░██╗██╗"},
	{"██╔════╝██╔══██╗██║░░░░░", "╚══██╔══╝██║░░░██║██║"},
	{"╚█████╗░██████╔╝██║░░░░░", "░░░██║░░░██║░░░██║██║"},
	{"░╚═══██╗██╔═══╝░██║░░░░░", "░░░██║░░░██║░░░██║██║"},
	{"██████╔╝██║░░░░░███████╗", "░░░██║░░░╚██████╔╝██║"},
	{"╚═════╝░╚═╝░░░░░╚══════╝", "░░░╚═╝░░░░╚═════╝░╚═╝"},
}

type keyMap struct {
	Mode      key.Binding
	Edit      key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Submit    key.Binding
	Back      key.Binding
	Scroll    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Mode:      key.NewBinding(key.WithKeys("1", "2"), key.WithHelp("1/2", "choose mode")),
		Edit:      key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "-", "."), key.WithHelp("0-9 - .", "type")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev field")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "solve")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
