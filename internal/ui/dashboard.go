package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferro/curator/internal/state"
)

// dashboardModel renders the polled dashboard snapshot.
type dashboardModel struct {
	store *state.Store
	snap  state.Snapshot
}

func newDashboard(store *state.Store) *dashboardModel {
	d := &dashboardModel{store: store}
	if store != nil {
		d.snap = store.Snapshot()
	}
	return d
}

func (d *dashboardModel) init() tea.Cmd { return nil }

func (d *dashboardModel) capturesInput() bool { return false }

func (d *dashboardModel) update(msg tea.Msg) tea.Cmd {
	if snap, ok := msg.(snapshotMsg); ok {
		d.snap = state.Snapshot(snap)
	}
	return nil
}

func (d *dashboardModel) view(width, height int, th Theme) string {
	styles := th.Styles()

	if !d.snap.HasData {
		if d.snap.LastError != nil {
			return styles.Panel.Render(
				styles.Danger.Render("Could not reach the API") + "\n" +
					styles.Muted.Render(d.snap.LastError.Error()))
		}
		return styles.Muted.Render("Loading dashboard...")
	}

	stats := d.snap.Stats
	cards := []string{
		statCard(styles, "Images", fmt.Sprintf("%d", stats.Photos)),
		statCard(styles, "Videos", fmt.Sprintf("%d", stats.Videos)),
		statCard(styles, "Services", fmt.Sprintf("%d/%d active", stats.ActiveServices, stats.Services)),
		statCard(styles, "Messages", fmt.Sprintf("%d (%d unread)", stats.Contacts, stats.UnreadContacts)),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	var recent []string
	recent = append(recent, styles.TableHeader.Render("Recent activity"))
	if len(d.snap.Recent) == 0 {
		recent = append(recent, styles.Faint.Render("nothing yet"))
	}
	for _, a := range d.snap.Recent {
		recent = append(recent, fmt.Sprintf("%s  %s  %s",
			styles.Muted.Render(pad(a.CreatedAt, 16)),
			styles.Accent.Render(pad(a.Kind, 9)),
			styles.Text.Render(a.Title)))
	}

	sections := []string{row, "", strings.Join(recent, "\n")}
	if d.snap.LastError != nil {
		sections = append(sections, "",
			styles.Warning.Render("last refresh failed: ")+styles.Muted.Render(d.snap.LastError.Error()))
	}
	return strings.Join(sections, "\n")
}

func statCard(styles Styles, label, value string) string {
	return styles.Panel.Render(
		styles.Muted.Render(label) + "\n" + styles.Title.Render(value))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
