// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.UsersFilePath == "" || cfg.Storage.VaultDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.AuditLogPath == "" || cfg.App.LogFilePath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
