package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferro/curator/internal/api"
	"github.com/aferro/curator/internal/logging"
	"github.com/aferro/curator/internal/prefs"
	"github.com/aferro/curator/internal/session"
	"github.com/aferro/curator/internal/state"
)

// Screen identifies one of the top-level screens.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenImages
	ScreenVideos
	ScreenServices
	ScreenContacts
)

var screenTitles = map[Screen]string{
	ScreenDashboard: "Dashboard",
	ScreenImages:    "Images",
	ScreenVideos:    "Videos",
	ScreenServices:  "Services",
	ScreenContacts:  "Contacts",
}

// Options configure the UI.
type Options struct {
	Context     context.Context
	Client      *api.Client
	Store       *state.Store
	PollTick    time.Duration
	Credentials session.Credentials
	ThemeName   string
	PrefsPath   string
	LogFile     string
	Logger      *slog.Logger
}

// shell bundles the dependencies screens need to issue commands.
type shell struct {
	ctx    context.Context
	client *api.Client
	logger *slog.Logger
}

// screenModel is implemented by the dashboard and the browse screens.
type screenModel interface {
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view(width, height int, th Theme) string
	// capturesInput reports whether the screen is in a mode (search box,
	// form, modal) where global key bindings must stay out of the way.
	capturesInput() bool
}

// Model is the root application state.
type Model struct {
	sh        *shell
	store     *state.Store
	pollTick  time.Duration
	creds     session.Credentials
	prefsPath string
	logFile   string

	theme  Theme
	width  int
	height int
	ready  bool

	sess     *session.Session
	login    *loginModel
	screen   Screen
	current  screenModel
	snapshot state.Snapshot
	showHelp bool
	logLines []string
	showLog  bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = 30 * time.Second
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		sh:        &shell{ctx: ctx, client: opts.Client, logger: logger},
		store:     opts.Store,
		pollTick:  pollTick,
		creds:     opts.Credentials,
		prefsPath: prefsPath,
		logFile:   opts.LogFile,
		theme:     GetTheme(opts.ThemeName),
		login:     newLogin(),
		screen:    ScreenDashboard,
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts))
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
	}

	// Everything else belongs to the active screen.
	if m.current != nil {
		return m, m.current.update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showLog {
		m.showLog = false
		m.logLines = nil
		return m, nil
	}

	if !m.sess.Active() {
		return m.handleLoginKey(msg)
	}

	if m.current != nil && m.current.capturesInput() {
		return m, m.current.update(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "l":
		lines, err := logging.Tail(m.logFile, 40)
		if err != nil {
			lines = []string{"could not read log: " + err.Error()}
		}
		m.logLines = lines
		m.showLog = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case "L":
		// Logout tears the session and every screen down.
		m.sess = nil
		m.current = nil
		m.screen = ScreenDashboard
		m.login = newLogin()
		return m, nil

	case "1":
		return m.switchScreen(ScreenDashboard)
	case "2":
		return m.switchScreen(ScreenImages)
	case "3":
		return m.switchScreen(ScreenVideos)
	case "4":
		return m.switchScreen(ScreenServices)
	case "5":
		return m.switchScreen(ScreenContacts)
	}

	if m.current != nil {
		return m, m.current.update(msg)
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	user, ok := m.login.handleKey(msg, m.creds)
	if !ok {
		return m, nil
	}
	m.sess = session.New(user)
	m.sh.logger.Info("login", "user", user)
	return m.switchScreen(ScreenDashboard)
}

// switchScreen creates a fresh screen model. Re-entering a screen always
// reloads: collections are owned per visit and never cached across
// navigations.
func (m Model) switchScreen(s Screen) (tea.Model, tea.Cmd) {
	m.screen = s
	switch s {
	case ScreenDashboard:
		m.current = newDashboard(m.store)
	case ScreenImages:
		m.current = newImagesScreen(m.sh)
	case ScreenVideos:
		m.current = newVideosScreen(m.sh)
	case ScreenServices:
		m.current = newServicesScreen(m.sh)
	case ScreenContacts:
		m.current = newContactsScreen(m.sh)
	}
	return m, m.current.init()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLog {
		return m.renderLog()
	}
	if !m.sess.Active() {
		return m.login.view(m.width, m.height, m.theme)
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := ""
	if m.current != nil {
		body = m.current.view(m.width, bodyHeight, m.theme)
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var tabs []string
	for s := ScreenDashboard; s <= ScreenContacts; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, screenTitles[s])
		if s == ScreenContacts && m.snapshot.Stats.UnreadContacts > 0 {
			label = fmt.Sprintf("%s (%d)", label, m.snapshot.Stats.UnreadContacts)
		}
		if s == m.screen {
			tabs = append(tabs, styles.Accent.Bold(true).Render(label))
		} else {
			tabs = append(tabs, styles.Muted.Render(label))
		}
	}

	parts := []string{styles.Title.Render("curator")}
	parts = append(parts, strings.Join(tabs, styles.Faint.Render("  ")))
	if m.snapshot.IsOffline() {
		parts = append(parts, styles.Danger.Render("API OFFLINE"))
	}
	if m.sess.Active() {
		parts = append(parts, styles.Muted.Render(m.sess.User))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "   "))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	hints := "1-5 screens · ? help · T theme · L logout · q quit"
	if m.current != nil && m.current.capturesInput() {
		hints = "esc back · ctrl+c quit"
	}
	return styles.StatusBar.Width(m.width).Render(hints)
}
