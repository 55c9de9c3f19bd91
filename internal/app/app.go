// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"

	"github.com/stenlik26/passvault/internal/audit"
	"github.com/stenlik26/passvault/internal/config"
	"github.com/stenlik26/passvault/internal/crypto"
	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/internal/service"
	"github.com/stenlik26/passvault/internal/store"
	"github.com/stenlik26/passvault/internal/tui"
)

// App glues the configured stores, services and terminal UI together and
// owns the session loop: authenticate, open the vault, run it until the
// user logs out or quits.
type App struct {
	cfg         *config.StructuredConfig
	credentials service.CredentialService
	keychain    crypto.KeyChain
	entries     store.EntryRepository
	sink        audit.Sink
	tui         *tui.TUI
	logger      *logger.Logger
}

func New(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	sink, err := audit.NewFileSink(cfg.App.AuditLogPath)
	if err != nil {
		return nil, fmt.Errorf("create audit sink: %w", err)
	}

	keychain := crypto.NewKeyChain()
	users := store.NewUserFileRepository(cfg.Storage.UsersFilePath, log)
	entries := store.NewEntryFileRepository(cfg.Storage.VaultDir, log)

	credentials, err := service.NewCredentialService(users, keychain, sink, log)
	if err != nil {
		return nil, fmt.Errorf("create credential service: %w", err)
	}

	return &App{
		cfg:         cfg,
		credentials: credentials,
		keychain:    keychain,
		entries:     entries,
		sink:        sink,
		tui:         tui.New(credentials, log),
		logger:      log,
	}, nil
}

// Run drives sessions until the user quits: LoginFlow yields a username
// and session key, the vault main loop runs with them, and a logout goes
// back to the login screen with a fresh service.
func (a *App) Run() error {
	for {
		username, key, err := a.tui.LoginFlow()
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("authentication flow: %w", err)
		}

		a.logger.Info().Str("username", username).Msg("session opened")

		vault, err := service.NewVaultService(username, key, a.entries, a.keychain, a.sink, a.logger)
		if err != nil {
			return fmt.Errorf("open vault for %s: %w", username, err)
		}

		logout, err := a.tui.MainLoop(vault)
		if err != nil {
			return fmt.Errorf("vault session: %w", err)
		}

		a.logger.Info().Str("username", username).Msg("session closed")
		if !logout {
			return nil
		}
	}
}
