package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/internal/service"
)

// ErrUserQuit signals that the user left the program from the
// authentication flow instead of logging in.
var ErrUserQuit = errors.New("user quit")

// TUI drives the two interactive phases of the application: the
// authentication flow and, once a session key exists, the vault main loop.
type TUI struct {
	credentials service.CredentialService
	logger      *logger.Logger
}

func New(credentials service.CredentialService, log *logger.Logger) *TUI {
	return &TUI{credentials: credentials, logger: log}
}

// LoginFlow runs the welcome/login/register screens until the user
// authenticates or quits. On success it returns the account name and the
// derived session key.
func (t *TUI) LoginFlow() (username string, key []byte, err error) {
	model := newAuthModel(t.credentials)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", nil, runErr
	}

	result, ok := finalModel.(authModel)
	if !ok {
		return "", nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", nil, ErrUserQuit
	}

	return result.resultUsername, result.resultKey, nil
}

// MainLoop runs the vault screens for one authenticated session. It
// returns logout=true when the user asked to re-authenticate rather than
// exit.
func (t *TUI) MainLoop(vault service.VaultService) (logout bool, err error) {
	model := newVaultModel(vault, t.credentials)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
