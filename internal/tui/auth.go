package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenlik26/passvault/internal/service"
)

type authScreen int

const (
	screenWelcome authScreen = iota
	screenLogin
	screenRegister
)

// authModel drives the pre-session flow: a welcome menu and the login and
// register forms. It quits the program either with a filled result
// (successful login) or with quitByUser set.
type authModel struct {
	credentials service.CredentialService

	currentScreen authScreen
	menuIdx       int
	inputs        []textinput.Model
	focus         int
	submitting    bool
	errMsg        string
	status        string

	quitByUser     bool
	resultUsername string
	resultKey      []byte
}

func newAuthModel(credentials service.CredentialService) authModel {
	return authModel{
		credentials: credentials,
		inputs:      newCredentialInputs(),
	}
}

func newCredentialInputs() []textinput.Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return []textinput.Model{username, password}
}

func (m authModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m authModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.resultUsername = msg.username
		m.resultKey = msg.key
		return m, tea.Quit

	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "user " + msg.username + " registered, you can now log in"
		m.currentScreen = screenWelcome
		m.resetInputs()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m authModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen == screenWelcome {
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.menuIdx > 0 {
				m.menuIdx--
			}
		case key.Matches(msg, keys.down):
			if m.menuIdx < 1 {
				m.menuIdx++
			}
		case key.Matches(msg, keys.enter):
			m.errMsg = ""
			if m.menuIdx == 0 {
				m.currentScreen = screenLogin
			} else {
				m.currentScreen = screenRegister
			}
			m.resetInputs()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenWelcome
		m.submitting = false
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		username := strings.TrimSpace(m.inputs[0].Value())
		password := m.inputs[1].Value()
		if username == "" || password == "" {
			m.errMsg = "username and password are required"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		if m.currentScreen == screenLogin {
			return m, m.cmdLogin(username, password)
		}
		return m, m.cmdRegister(username, password)
	}

	return m.updateInputs(msg)
}

func (m authModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *authModel) resetInputs() {
	m.inputs = newCredentialInputs()
	m.focus = 0
}

func (m *authModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *authModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m authModel) cmdLogin(username, password string) tea.Cmd {
	credentials := m.credentials
	return func() tea.Msg {
		key, err := credentials.Login(username, password)
		return authDoneMsg{username: username, key: key, err: err}
	}
}

func (m authModel) cmdRegister(username, password string) tea.Cmd {
	credentials := m.credentials
	return func() tea.Msg {
		err := credentials.Register(username, password)
		return registerDoneMsg{username: username, err: err}
	}
}

func (m authModel) View() string {
	switch m.currentScreen {
	case screenLogin:
		return m.viewCredentialForm("LOG IN", "enter: submit  tab: next field  esc: back")
	case screenRegister:
		return m.viewCredentialForm("REGISTER", "enter: submit  tab: next field  esc: back")
	default:
		return m.viewWelcome()
	}
}

func (m authModel) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("passvault"))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	for i, item := range []string{"Log in", "Register"} {
		cursor := "  "
		if i == m.menuIdx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: select  up/down: move  q: quit"))
	return appStyle.Render(b.String())
}

func (m authModel) viewCredentialForm(title, hotKeys string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Username: [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password: [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\nworking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))
	return appStyle.Render(b.String())
}
