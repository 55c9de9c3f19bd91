package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names, so
// an on-disk config file can use its own layout without leaking json tags
// into the merged struct.
type StructuredJSONConfig struct {
	App struct {
		LogFilePath  string `json:"log_file"`
		AuditLogPath string `json:"audit_log"`
	} `json:"app,omitempty"`

	Storage struct {
		UsersFilePath string `json:"users_file"`
		VaultDir      string `json:"vault_dir"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFilePath:  jsonCfg.App.LogFilePath,
			AuditLogPath: jsonCfg.App.AuditLogPath,
		},
		Storage: Storage{
			UsersFilePath: jsonCfg.Storage.UsersFilePath,
			VaultDir:      jsonCfg.Storage.VaultDir,
		},
	}

	return cfg, nil
}
