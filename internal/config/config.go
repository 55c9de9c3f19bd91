// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
)

// StructuredConfig is the top-level configuration container for the
// passvault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: diagnostic log destination and
	// the audit trail location.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the durable credential and vault
	// files.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFilePath is where diagnostic (zerolog) output is appended while
	// the terminal UI owns the screen.
	// Env: APP_LOG_FILE
	LogFilePath string `env:"LOG_FILE"`

	// AuditLogPath is the append-only audit trail file recording every
	// mutating or security-relevant store operation.
	// Env: APP_AUDIT_LOG
	AuditLogPath string `env:"AUDIT_LOG"`
}

// Storage holds the file-system locations of the durable stores.
type Storage struct {
	// UsersFilePath is the single JSON file holding every registered user
	// record for this installation.
	// Env: STORAGE_USERS_FILE
	UsersFilePath string `env:"USERS_FILE"`

	// VaultDir is the directory holding one <username>.json entry file per
	// registered user.
	// Env: STORAGE_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// defaults returns the built-in configuration rooted in the user's
// OS-specific config directory (falling back to the working directory when
// it cannot be resolved).
func defaults() *StructuredConfig {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dataDir := filepath.Join(base, "passvault")

	return &StructuredConfig{
		App: App{
			LogFilePath:  filepath.Join(dataDir, "passvault.log"),
			AuditLogPath: filepath.Join(dataDir, "audit.log"),
		},
		Storage: Storage{
			UsersFilePath: filepath.Join(dataDir, "users.json"),
			VaultDir:      filepath.Join(dataDir, "user_passwords"),
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
