package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenlik26/passvault/internal/service"
	"github.com/stenlik26/passvault/models"
)

type vaultScreen int

const (
	vaultScreenList vaultScreen = iota
	vaultScreenDetail
	vaultScreenForm
	vaultScreenGroups
)

// vaultModel drives one authenticated session: the entry list, the detail
// view with clipboard copy, the create/edit form, and group management.
type vaultModel struct {
	vault       service.VaultService
	credentials service.CredentialService

	currentScreen vaultScreen
	entries       []models.LoginEntry
	idx           int

	detail entryDetail
	form   entryFormModel
	groups groupsModel

	showConfirm   bool
	pendingDelete string

	status string
	errMsg string
	logout bool
}

// entryDetail holds the decrypted copy shown on the detail screen. The
// plaintext never goes back into the stored entry set.
type entryDetail struct {
	entry models.LoginEntry
}

func newVaultModel(vault service.VaultService, credentials service.CredentialService) vaultModel {
	return vaultModel{
		vault:       vault,
		credentials: credentials,
		entries:     vault.List(),
	}
}

func (m vaultModel) Init() tea.Cmd {
	return nil
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.what + " copied to clipboard"
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.currentScreen == vaultScreenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	if m.currentScreen == vaultScreenGroups {
		var cmd tea.Cmd
		m.groups, cmd = m.groups.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m vaultModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m.deletePending()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	switch m.currentScreen {
	case vaultScreenList:
		return m.handleListKey(msg)
	case vaultScreenDetail:
		return m.handleDetailKey(msg)
	case vaultScreenForm:
		return m.handleFormKey(msg)
	case vaultScreenGroups:
		return m.handleGroupsKey(msg)
	}
	return m, nil
}

func (m vaultModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.form = newEntryFormModel(m.vault, nil)
		m.currentScreen = vaultScreenForm
		m.errMsg = ""
	case key.Matches(msg, keys.groups):
		m.groups = newGroupsModel(m.credentials, m.vault.Username())
		m.currentScreen = vaultScreenGroups
		m.errMsg = ""
	case key.Matches(msg, keys.delete):
		if entry, ok := m.currentEntry(); ok {
			m.pendingDelete = entry.ID
			m.showConfirm = true
		}
	case key.Matches(msg, keys.enter):
		if entry, ok := m.currentEntry(); ok {
			decrypted, err := m.vault.Fetch(entry.ID)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.detail = entryDetail{entry: decrypted}
			m.currentScreen = vaultScreenDetail
			m.errMsg = ""
		}
	}
	return m, nil
}

func (m vaultModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = vaultScreenList
		m.detail = entryDetail{}
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard("password", m.detail.entry.Password)
	case key.Matches(msg, keys.copyUser):
		return m, cmdCopyToClipboard("username", m.detail.entry.Username)
	case key.Matches(msg, keys.edit):
		edit := m.detail.entry
		m.form = newEntryFormModel(m.vault, &edit)
		m.currentScreen = vaultScreenForm
	case key.Matches(msg, keys.delete):
		m.pendingDelete = m.detail.entry.ID
		m.showConfirm = true
	}
	return m, nil
}

func (m vaultModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.currentScreen = vaultScreenList
		return m, nil
	}

	if key.Matches(msg, keys.enter) {
		if err := m.form.submit(); err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.entries = m.vault.List()
		m.clampIdx()
		m.currentScreen = vaultScreenList
		m.status = "entry saved"
		return m, clearStatusAfter(3 * time.Second)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m vaultModel) handleGroupsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) && !m.groups.adding {
		m.currentScreen = vaultScreenList
		return m, nil
	}

	var cmd tea.Cmd
	m.groups, cmd = m.groups.update(msg)
	return m, cmd
}

func (m vaultModel) deletePending() (tea.Model, tea.Cmd) {
	if m.pendingDelete == "" {
		return m, nil
	}

	if _, err := m.vault.Delete(m.pendingDelete); err != nil {
		m.errMsg = err.Error()
	} else {
		m.status = "entry deleted"
	}
	m.pendingDelete = ""
	m.entries = m.vault.List()
	m.clampIdx()
	m.currentScreen = vaultScreenList
	m.detail = entryDetail{}
	return m, clearStatusAfter(3 * time.Second)
}

func (m vaultModel) currentEntry() (models.LoginEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.LoginEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *vaultModel) clampIdx() {
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func cmdCopyToClipboard(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(value)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m vaultModel) View() string {
	if m.showConfirm {
		return m.viewConfirm()
	}

	switch m.currentScreen {
	case vaultScreenDetail:
		return m.viewDetail()
	case vaultScreenForm:
		return m.form.view()
	case vaultScreenGroups:
		return m.groups.view()
	}
	return m.viewList()
}

func (m vaultModel) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Vault: " + m.vault.Username()))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString("no entries yet. press n to create one\n")
	}
	for i, entry := range m.entries {
		marker := "  "
		if i == m.idx {
			marker = "> "
		}
		line := marker + entry.Address + "  (" + entry.Username + ")"
		if entry.Group != "" {
			line += "  [" + entry.Group + "]"
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(m.viewFooter())
	b.WriteString(helpStyle.Render("enter: open  n: new  d: delete  g: groups  l: logout  q: quit"))
	return appStyle.Render(b.String())
}

func (m vaultModel) viewDetail() string {
	entry := m.detail.entry

	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.Address))
	b.WriteString("\n\n")
	b.WriteString("Username: " + entry.Username + "\n")
	b.WriteString("Password: " + entry.Password + "\n")
	b.WriteString("Group:    " + entry.Group + "\n")
	b.WriteString("Created:  " + entry.CreatedAt + "\n")
	b.WriteString("Updated:  " + entry.UpdatedAt + "\n")

	b.WriteString(m.viewFooter())
	b.WriteString(helpStyle.Render("c: copy password  u: copy username  e: edit  d: delete  esc: back"))
	return appStyle.Render(b.String())
}

func (m vaultModel) viewConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete entry"))
	b.WriteString("\n\n")
	b.WriteString("Delete this entry permanently?\n\n")
	b.WriteString(helpStyle.Render("y: delete  n: keep"))
	return appStyle.Render(b.String())
}

func (m vaultModel) viewFooter() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
