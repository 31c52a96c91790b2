package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	Text       string
	Muted      string
	Faint      string
	Accent     string
	Success    string
	Warning    string
	Danger     string
	Border     string

	SelectionBg   string
	SelectionText string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		RowCursor: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
	}
}

// Styles holds the rendered lipgloss styles for a theme.
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Faint   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	Header      lipgloss.Style
	StatusBar   lipgloss.Style
	TableHeader lipgloss.Style
	RowCursor   lipgloss.Style
	Panel       lipgloss.Style
}

var themes = []Theme{
	{
		Name:          "Slate",
		Background:    "#f8fafc",
		Surface:       "#e2e8f0",
		Text:          "#0f172a",
		Muted:         "#475569",
		Faint:         "#94a3b8",
		Accent:        "#2563eb",
		Success:       "#16a34a",
		Warning:       "#d97706",
		Danger:        "#dc2626",
		Border:        "#cbd5e1",
		SelectionBg:   "#2563eb",
		SelectionText: "#f8fafc",
	},
	{
		Name:          "Midnight",
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Text:          "#e2e8f0",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#60a5fa",
		Success:       "#4ade80",
		Warning:       "#fbbf24",
		Danger:        "#f87171",
		Border:        "#334155",
		SelectionBg:   "#60a5fa",
		SelectionText: "#0f172a",
	},
	{
		Name:          "Forest",
		Background:    "#121a14",
		Surface:       "#1d2a20",
		Text:          "#d8e8dc",
		Muted:         "#8aa892",
		Faint:         "#5c7562",
		Accent:        "#6ee7a0",
		Success:       "#4ade80",
		Warning:       "#facc15",
		Danger:        "#fb7185",
		Border:        "#2f4636",
		SelectionBg:   "#6ee7a0",
		SelectionText: "#121a14",
	},
}

// GetTheme returns the theme with the given name, defaulting to the
// first theme when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given theme, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
