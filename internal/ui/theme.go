package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for the UI. Rolodex ships a light and a
// dark theme; the active one follows the persisted "darkMode"
// preference.
type Theme struct {
	Name string
	Dark bool

	Background string
	Surface    string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
}

// ThemeFor returns the theme matching the dark-mode preference.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func darkTheme() Theme {
	// Dracula-derived palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dark",
		Dark: true,

		Background: "#191A21",
		Surface:    "#282A36",

		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Faint:   "#44475A",
		Accent:  "#BD93F9",
		Success: "#50FA7B",
		Warning: "#F1FA8C",
		Danger:  "#FF5555",

		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",
	}
}

func lightTheme() Theme {
	return Theme{
		Name: "Light",
		Dark: false,

		Background: "#FAFAFA",
		Surface:    "#FFFFFF",

		Text:    "#2E3440",
		Muted:   "#7B88A1",
		Faint:   "#D8DEE9",
		Accent:  "#5E81AC",
		Success: "#4C9A6A",
		Warning: "#C08A00",
		Danger:  "#BF616A",

		SelectionBg:   "#D8DEE9",
		SelectionText: "#2E3440",
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
}
