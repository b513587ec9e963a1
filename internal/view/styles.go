package view

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the month view
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentText lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Muted:      lipgloss.Color("#5c6773"),
		Accent:     lipgloss.Color("#8BC34A"),
		AccentText: lipgloss.Color("#141d2b"),
		Border:     lipgloss.Color("#2a3850"),
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Muted:      lipgloss.Color("#9aa3ad"),
		Accent:     lipgloss.Color("#101F38"),
		AccentText: lipgloss.Color("#f4f5f6"),
		Border:     lipgloss.Color("#dce0e5"),
		IsDark:     false,
	}
}

// ThemeByName maps a config theme name to a Theme, defaulting to dark
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the lipgloss styles for every part of the rendered view.
// Cell styling is a fixed decision table on {InMonth, Highlighted}; there
// is no other state.
type Styles struct {
	Title   lipgloss.Style
	Weekday lipgloss.Style
	Footer  lipgloss.Style

	// The four cell combinations
	DayInMonth     lipgloss.Style
	DayOutOfMonth  lipgloss.Style
	DayHighlighted lipgloss.Style
	// {InMonth: false, Highlighted: true} cannot be produced by the
	// generator; it renders like an out-of-month day if it ever appears.
}

// CellWidth is the rendered width of one day cell, including padding
const CellWidth = 4

// NewStyles builds the style set for a theme
func NewStyles(theme Theme) Styles {
	cell := lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Right).PaddingRight(1)

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Weekday: cell.Bold(true).Foreground(theme.Foreground),
		Footer:  lipgloss.NewStyle().Foreground(theme.Muted),

		DayInMonth:     cell.Foreground(theme.Foreground),
		DayOutOfMonth:  cell.Foreground(theme.Muted),
		DayHighlighted: cell.Bold(true).Foreground(theme.AccentText).Background(theme.Accent),
	}
}

// PlainStyles returns an unstyled set for piped or test output
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Right).PaddingRight(1)

	return Styles{
		Title:          lipgloss.NewStyle(),
		Weekday:        cell,
		Footer:         lipgloss.NewStyle(),
		DayInMonth:     cell,
		DayOutOfMonth:  cell,
		DayHighlighted: cell,
	}
}
