package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferro/curator/internal/session"
)

// loginModel is the credential gate shown before any screen.
type loginModel struct {
	user     textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
}

func newLogin() *loginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 28
	user.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword

	return &loginModel{user: user, password: password}
}

// handleKey processes a key press. It returns the authenticated user name
// and true once the credentials check passes.
func (l *loginModel) handleKey(msg tea.KeyMsg, creds session.Credentials) (string, bool) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		l.toggleFocus()
		return "", false

	case "enter":
		if l.focus == 0 {
			l.toggleFocus()
			return "", false
		}
		user := strings.TrimSpace(l.user.Value())
		if creds.Match(user, l.password.Value()) {
			return user, true
		}
		l.errMsg = "invalid credentials"
		l.password.SetValue("")
		return "", false
	}

	var cmd tea.Cmd
	if l.focus == 0 {
		l.user, cmd = l.user.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	_ = cmd
	l.errMsg = ""
	return "", false
}

func (l *loginModel) toggleFocus() {
	if l.focus == 0 {
		l.focus = 1
		l.user.Blur()
		l.password.Focus()
	} else {
		l.focus = 0
		l.password.Blur()
		l.user.Focus()
	}
}

func (l *loginModel) view(width, height int, th Theme) string {
	styles := th.Styles()

	lines := []string{
		styles.Title.Render("curator"),
		styles.Muted.Render("sign in to manage content"),
		"",
		l.user.View(),
		l.password.View(),
	}
	if l.errMsg != "" {
		lines = append(lines, "", styles.Danger.Render(l.errMsg))
	}
	lines = append(lines, "", styles.Faint.Render("enter submit · tab switch field"))

	card := styles.Panel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
