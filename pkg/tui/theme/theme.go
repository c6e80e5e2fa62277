// Package theme centralizes status styling for the calendar UI. Every view
// (month grid, week/day boards, CLI badges) resolves colors through one
// Policy so status rendering cannot drift between screens.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Palette holds the raw colors a Theme is built from.
type Palette struct {
	Active      color.Color
	InProgress  color.Color
	Completed   color.Color
	Deactivated color.Color
	Overdue     color.Color
	SoilPrep    color.Color

	Header color.Color
	Faint  color.Color
	Accent color.Color
}

func darkPalette() Palette {
	return Palette{
		Active:      lipgloss.Color("#22c55e"),
		InProgress:  lipgloss.Color("#3b82f6"),
		Completed:   lipgloss.Color("#a3a3a3"),
		Deactivated: lipgloss.Color("#f59e0b"),
		Overdue:     lipgloss.Color("#ef4444"),
		SoilPrep:    lipgloss.Color("#92400e"),
		Header:      lipgloss.Color("252"),
		Faint:       lipgloss.Color("244"),
		Accent:      lipgloss.Color("63"),
	}
}

func lightPalette() Palette {
	return Palette{
		Active:      lipgloss.Color("#15803d"),
		InProgress:  lipgloss.Color("#1d4ed8"),
		Completed:   lipgloss.Color("#525252"),
		Deactivated: lipgloss.Color("#b45309"),
		Overdue:     lipgloss.Color("#b91c1c"),
		SoilPrep:    lipgloss.Color("#78350f"),
		Header:      lipgloss.Color("236"),
		Faint:       lipgloss.Color("246"),
		Accent:      lipgloss.Color("27"),
	}
}

// Theme groups the Lip Gloss styles shared across the calendar views.
type Theme struct {
	Palette Palette

	Header   lipgloss.Style
	Faint    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// Default picks a palette matching the terminal background.
func Default() Theme {
	p := darkPalette()
	if !termenv.HasDarkBackground() {
		p = lightPalette()
	}
	return New(p)
}

// New builds a Theme from an explicit palette.
func New(p Palette) Theme {
	return Theme{
		Palette:  p,
		Header:   lipgloss.NewStyle().Foreground(p.Header).Bold(true),
		Faint:    lipgloss.NewStyle().Foreground(p.Faint),
		Today:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Selected: lipgloss.NewStyle().Background(p.Accent).Foreground(lipgloss.Color("0")),
	}
}

// Muted returns a desaturated, dimmed variant of a status color, used for
// card borders so the border never outweighs the badge text.
func Muted(c color.Color) color.Color {
	if c == nil {
		return c
	}
	parsed, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, s, l := parsed.Hsl()
	return colorful.Hsl(h, s*0.5, l*0.7)
}
