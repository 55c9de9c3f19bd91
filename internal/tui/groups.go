package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenlik26/passvault/internal/service"
)

// groupsModel manages the user's group labels: list, add, delete.
type groupsModel struct {
	credentials service.CredentialService
	username    string

	names  []string
	cursor int

	adding bool
	input  textinput.Model

	errMsg string
}

func newGroupsModel(credentials service.CredentialService, username string) groupsModel {
	input := textinput.New()
	input.Placeholder = "group name"
	input.Width = 30
	input.CharLimit = 64

	m := groupsModel{
		credentials: credentials,
		username:    username,
		input:       input,
	}
	m.reload()
	return m
}

func (m *groupsModel) reload() {
	names, err := m.credentials.FetchGroups(m.username)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.names = names
	if m.cursor >= len(m.names) {
		m.cursor = len(m.names) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m groupsModel) update(msg tea.Msg) (groupsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.adding {
		switch {
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.errMsg = "group name cannot be empty"
				return m, nil
			}
			if err := m.credentials.CreateGroup(m.username, name); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.adding = false
			m.input.Reset()
			m.errMsg = ""
			m.reload()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.adding = false
			m.input.Reset()
			m.errMsg = ""
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.adding = true
		m.errMsg = ""
		m.input.Focus()
	case key.Matches(keyMsg, keys.delete):
		if len(m.names) == 0 {
			return m, nil
		}
		if err := m.credentials.DeleteGroup(m.username, m.names[m.cursor]); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.reload()
	}
	return m, nil
}

func (m groupsModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Groups"))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString("no groups yet\n")
	}
	for i, name := range m.names {
		marker := "  "
		if i == m.cursor && !m.adding {
			marker = "> "
		}
		b.WriteString(marker + name + "\n")
	}

	if m.adding {
		b.WriteString("\nNew group: [" + m.input.View() + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString(helpStyle.Render("enter: create  esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("n: new group  d: delete  esc: back"))
	}
	return appStyle.Render(b.String())
}
