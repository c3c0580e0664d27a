package view

import "github.com/charmbracelet/lipgloss"

// Palette is the small set of colors a theme provides.
type Palette struct {
	Accent   lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
	Faint    lipgloss.Color
	Border   lipgloss.Color
}

func LightPalette() Palette {
	return Palette{
		Accent:   lipgloss.Color("25"),
		Positive: lipgloss.Color("28"),
		Negative: lipgloss.Color("124"),
		Faint:    lipgloss.Color("245"),
		Border:   lipgloss.Color("250"),
	}
}

func DarkPalette() Palette {
	return Palette{
		Accent:   lipgloss.Color("205"),
		Positive: lipgloss.Color("42"),
		Negative: lipgloss.Color("203"),
		Faint:    lipgloss.Color("240"),
		Border:   lipgloss.Color("240"),
	}
}

// Styles are the pre-built lipgloss styles screens render with.
type Styles struct {
	Screen   lipgloss.Style
	Title    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Accent   lipgloss.Style
	Faint    lipgloss.Style
	Card     lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Screen:   lipgloss.NewStyle().Padding(1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Status:   lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(p.Negative),
		Positive: lipgloss.NewStyle().Foreground(p.Positive),
		Negative: lipgloss.NewStyle().Foreground(p.Negative),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Faint:    lipgloss.NewStyle().Foreground(p.Faint),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),
	}
}

// StylesFor builds the style set for the current theme flag.
func StylesFor(isDark bool) Styles {
	if isDark {
		return NewStyles(DarkPalette())
	}

	return NewStyles(LightPalette())
}
