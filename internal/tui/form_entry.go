package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenlik26/passvault/internal/generator"
	"github.com/stenlik26/passvault/internal/service"
	"github.com/stenlik26/passvault/internal/validators"
	"github.com/stenlik26/passvault/models"
)

const generatedPasswordLength = 16

// entryFormModel is the create/edit form for one login entry. When editing,
// the password input starts out with the decrypted password the detail
// screen fetched, so saving without changes keeps it.
type entryFormModel struct {
	vault     service.VaultService
	validator validators.Validator
	inputs    []textinput.Model
	focus     int
	editing   bool
	entryID   string
	errMsg    string
}

func newEntryFormModel(vault service.VaultService, edit *models.LoginEntry) entryFormModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[0].Placeholder = "address"
	inputs[1].Placeholder = "username"
	inputs[2].Placeholder = "password"
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[3].Placeholder = "group"
	inputs[0].Focus()

	m := entryFormModel{vault: vault, validator: validators.NewLoginEntryValidator(), inputs: inputs}
	if edit == nil {
		return m
	}

	m.editing = true
	m.entryID = edit.ID
	m.inputs[0].SetValue(edit.Address)
	m.inputs[1].SetValue(edit.Username)
	m.inputs[2].SetValue(edit.Password)
	m.inputs[3].SetValue(edit.Group)
	return m
}

func (m entryFormModel) update(msg tea.Msg) (entryFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			password, err := generator.Password(generatedPasswordLength, generator.Options{
				UseCaps:    true,
				UseSymbols: true,
				UseNumbers: true,
			})
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.inputs[2].SetValue(password)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the form and writes through the vault service.
func (m *entryFormModel) submit() error {
	entry := models.LoginEntry{
		Address:  strings.TrimSpace(m.inputs[0].Value()),
		Username: strings.TrimSpace(m.inputs[1].Value()),
		Password: m.inputs[2].Value(),
		Group:    strings.TrimSpace(m.inputs[3].Value()),
	}

	if err := m.validator.Validate(context.Background(), entry); err != nil {
		return err
	}

	if m.editing {
		return m.vault.Edit(m.entryID, entry)
	}

	_, err := m.vault.Create(entry.Address, entry.Username, entry.Password, entry.Group)
	return err
}

func (m *entryFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *entryFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m entryFormModel) view() string {
	title := "New entry"
	if m.editing {
		title = "Edit: " + m.inputs[0].Value()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Address:  [" + m.inputs[0].View() + "]\n")
	b.WriteString("Username: [" + m.inputs[1].View() + "]\n")
	b.WriteString("Password: [" + m.inputs[2].View() + "]\n")
	b.WriteString("Group:    [" + m.inputs[3].View() + "]\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: save  tab: next field  ctrl+g: generate password  esc: cancel"))
	return appStyle.Render(b.String())
}
