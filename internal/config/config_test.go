package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_LOG_FILE", "/tmp/pv.log")
	t.Setenv("APP_AUDIT_LOG", "/tmp/audit.log")
	t.Setenv("STORAGE_USERS_FILE", "/tmp/users.json")
	t.Setenv("STORAGE_VAULT_DIR", "/tmp/vaults")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/pv.log", cfg.App.LogFilePath)
	assert.Equal(t, "/tmp/audit.log", cfg.App.AuditLogPath)
	assert.Equal(t, "/tmp/users.json", cfg.Storage.UsersFilePath)
	assert.Equal(t, "/tmp/vaults", cfg.Storage.VaultDir)
}

func TestParseJSON_PopulatesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"log_file": "/var/log/pv.log", "audit_log": "/var/log/audit.log"},
		"storage": {"users_file": "/data/users.json", "vault_dir": "/data/vaults"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/pv.log", cfg.App.LogFilePath)
	assert.Equal(t, "/var/log/audit.log", cfg.App.AuditLogPath)
	assert.Equal(t, "/data/users.json", cfg.Storage.UsersFilePath)
	assert.Equal(t, "/data/vaults", cfg.Storage.VaultDir)
}

func TestParseJSON_MissingFileFails(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestBuilder_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{UsersFilePath: "/override/users.json"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	base := defaults()
	assert.Equal(t, "/override/users.json", cfg.Storage.UsersFilePath)
	assert.Equal(t, base.Storage.VaultDir, cfg.Storage.VaultDir)
	assert.Equal(t, base.App.AuditLogPath, cfg.App.AuditLogPath)
}

func TestBuilder_DefaultsAloneValidate(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	require.NoError(t, cfg.validate())
}

func TestValidate_RejectsMissingSettings(t *testing.T) {
	missingStorage := defaults()
	missingStorage.Storage.UsersFilePath = ""
	assert.ErrorIs(t, missingStorage.validate(), ErrInvalidStorageConfigs)

	missingAudit := defaults()
	missingAudit.App.AuditLogPath = ""
	assert.ErrorIs(t, missingAudit.validate(), ErrInvalidAppConfigs)
}
