package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-users-file path of the JSON file holding registered users
//	-vault-dir directory holding per-user vault files
//	-audit-log path of the append-only audit trail
//	-log-file path of the diagnostic log file
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var usersFilePath string
	var vaultDir string
	var auditLogPath string
	var logFilePath string
	var jsonConfigPath string

	flag.StringVar(&usersFilePath, "users-file", "", "Users file path")
	flag.StringVar(&vaultDir, "vault-dir", "", "Per-user vault directory")
	flag.StringVar(&auditLogPath, "audit-log", "", "Audit log path")
	flag.StringVar(&logFilePath, "log-file", "", "Diagnostic log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFilePath:  logFilePath,
			AuditLogPath: auditLogPath,
		},
		Storage: Storage{
			UsersFilePath: usersFilePath,
			VaultDir:      vaultDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
