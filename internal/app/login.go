package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

const (
	loginFocusEmail = iota
	loginFocusPassword
	loginFocusRemember
	loginFocusSubmit
)

// loginState holds the login screen state
type loginState struct {
	email      textinput.Model
	password   textinput.Model
	remember   bool
	focus      int
	submitting bool
	errMsg     string
	spinner    spinner.Model
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	return loginState{
		email:    email,
		password: password,
		focus:    loginFocusEmail,
		spinner:  s,
	}
}

// Init returns the initial login screen command
func (l loginState) Init() tea.Cmd {
	return textinput.Blink
}

// loginResultMsg reports the outcome of a login attempt
type loginResultMsg struct {
	err error
}

// loginCmd attempts authentication off the UI loop; the session service
// applies its configured delay before answering.
func (m Model) loginCmd(email, password string, remember bool) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: m.sessionSvc.Login(email, password, remember)}
	}
}

// updateLogin handles all messages while the login screen is active
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.login.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.login.spinner, cmd = m.login.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		m.login.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrInvalidCredentials) {
				m.login.errMsg = "Invalid email or password"
			} else {
				m.login.errMsg = msg.err.Error()
			}
			return m, nil
		}

		m.screen = screenBoard
		m.mode = ModeNormal
		m.addToast(Toast{
			Level:   ToastSuccess,
			Message: "Welcome back, " + m.sessionSvc.Email(),
			Expires: time.Now().Add(3 * time.Second),
		})
		return m, nil

	case tea.KeyMsg:
		return m.handleLoginKey(msg)
	}

	return m, nil
}

// handleLoginKey processes keyboard input on the login screen
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		// Ignore input while authenticating, except quit
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.login.focus = (m.login.focus + 1) % 4
		m.syncLoginFocus()
		return m, nil

	case "shift+tab", "up":
		m.login.focus = (m.login.focus + 3) % 4
		m.syncLoginFocus()
		return m, nil

	case " ":
		if m.login.focus == loginFocusRemember {
			m.login.remember = !m.login.remember
			return m, nil
		}

	case "enter":
		if m.login.focus == loginFocusRemember {
			m.login.remember = !m.login.remember
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	switch m.login.focus {
	case loginFocusEmail:
		m.login.email, cmd = m.login.email.Update(msg)
	case loginFocusPassword:
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncLoginFocus() {
	m.login.email.Blur()
	m.login.password.Blur()
	switch m.login.focus {
	case loginFocusEmail:
		m.login.email.Focus()
	case loginFocusPassword:
		m.login.password.Focus()
	}
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email := m.login.email.Value()
	password := m.login.password.Value()
	if email == "" || password == "" {
		m.login.errMsg = "Enter email and password"
		return m, nil
	}

	m.login.submitting = true
	m.login.errMsg = ""
	return m, tea.Batch(
		m.login.spinner.Tick,
		m.loginCmd(email, password, m.login.remember),
	)
}
