package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	section := func(title string, rows [][2]string) string {
		lines := []string{styles.TableHeader.Render(title)}
		for _, r := range rows {
			lines = append(lines, styles.Accent.Render(pad(r[0], 12))+styles.Text.Render(r[1]))
		}
		return strings.Join(lines, "\n")
	}

	body := strings.Join([]string{
		styles.Title.Render("curator keys"),
		"",
		section("Global", [][2]string{
			{"1-5", "switch screens"},
			{"?", "this help"},
			{"l", "recent log lines"},
			{"T", "cycle theme"},
			{"L", "log out"},
			{"q", "quit"},
		}),
		"",
		section("Lists", [][2]string{
			{"j/k", "move cursor"},
			{"g/G", "jump to first or last row"},
			{"/", "search"},
			{"f", "cycle status filter"},
			{"space", "select row"},
			{"a", "select or clear all visible"},
			{"enter/v", "view record"},
			{"n", "new record"},
			{"e", "edit record"},
			{"d", "delete record"},
			{"D", "delete selected"},
			{"r", "reload"},
		}),
		"",
		section("Forms", [][2]string{
			{"tab", "next field"},
			{"left/right", "cycle a choice field"},
			{"enter", "save"},
			{"esc", "cancel"},
		}),
		"",
		styles.Faint.Render("press any key to close"),
	}, "\n")

	card := styles.Panel.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderLog() string {
	styles := m.theme.Styles()

	lines := []string{styles.Title.Render("application log"), ""}
	if len(m.logLines) == 0 {
		lines = append(lines, styles.Faint.Render("log is empty"))
	}
	for _, l := range m.logLines {
		lines = append(lines, styles.Muted.Render(l))
	}
	lines = append(lines, "", styles.Faint.Render("press any key to close"))

	card := styles.Panel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
