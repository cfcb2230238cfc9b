// Package theme provides the Gruvbox palettes and the lipgloss styles derived
// from them.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned by Lookup for names other than dark and light.
var ErrUnknownTheme = errors.New("unknown theme")

// Palette is a named set of Gruvbox colours.
type Palette struct {
	Name   string
	BG     lipgloss.Color
	FG     lipgloss.Color
	Red    lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Blue   lipgloss.Color
	Aqua   lipgloss.Color
	Orange lipgloss.Color
	Gray   lipgloss.Color
}

var Dark = Palette{
	Name:   "dark",
	BG:     "#282828",
	FG:     "#ebdbb2",
	Red:    "#cc241d",
	Green:  "#98971a",
	Yellow: "#d79921",
	Blue:   "#458588",
	Aqua:   "#689d6a",
	Orange: "#d65d0e",
	Gray:   "#928374",
}

var Light = Palette{
	Name:   "light",
	BG:     "#fbf1c7",
	FG:     "#3c3836",
	Red:    "#cc241d",
	Green:  "#98971a",
	Yellow: "#d79921",
	Blue:   "#458588",
	Aqua:   "#689d6a",
	Orange: "#d65d0e",
	Gray:   "#928374",
}

// Names lists the accepted theme names.
func Names() []string { return []string{Dark.Name, Light.Name} }

// Lookup returns the palette for name, ignoring case.
func Lookup(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Dark.Name:
		return Dark, nil
	case Light.Name:
		return Light, nil
	default:
		return Palette{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
	}
}
