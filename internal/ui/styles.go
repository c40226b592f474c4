// Package ui renders the Pokédex screen in the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meur/pokedex/internal/config"
)

// Brand colors, same in both modes
var (
	PokedexRed = lipgloss.Color("#E3350D")
	NumberTint = lipgloss.Color("#F08A24")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1B1B1F"),
		Primary:    PokedexRed,
		Muted:      lipgloss.Color("#74747C"),
		Border:     lipgloss.Color("#C4C4CC"),
		Selected:   lipgloss.Color("#1B1B1F"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#F2F2F2"),
		Primary:    PokedexRed,
		Muted:      lipgloss.Color("#9A9AA3"),
		Border:     lipgloss.Color("#45454D"),
		Selected:   lipgloss.Color("#F2F2F2"),
		IsDark:     true,
	}
}

// DetectTheme picks a theme from COLORFGBG ("fg;bg"), defaulting to light
func DetectTheme() Theme {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// ThemeFor resolves a configured theme name
func ThemeFor(name string) Theme {
	switch name {
	case config.ThemeDark:
		return DarkTheme()
	case config.ThemeLight:
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	SortIcon lipgloss.Style
	Status   lipgloss.Style
	Muted    lipgloss.Style

	Search        lipgloss.Style
	SearchFocused lipgloss.Style

	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	ChipCursor   lipgloss.Style

	Card        lipgloss.Style
	Placeholder lipgloss.Style
	CardName    lipgloss.Style
	CardTypes   lipgloss.Style
	CardNumber  lipgloss.Style
	Favorite    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	chip := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		SortIcon: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Chip: chip,

		ChipSelected: chip.
			BorderForeground(theme.Selected).
			Bold(true),

		ChipCursor: chip.
			BorderForeground(theme.Primary).
			Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Muted),

		CardName: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		CardTypes: lipgloss.NewStyle().
			Foreground(theme.Muted),

		CardNumber: lipgloss.NewStyle().
			Foreground(NumberTint).
			Bold(true),

		Favorite: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
