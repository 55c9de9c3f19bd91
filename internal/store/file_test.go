package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/models"
)

func TestUserFileRepository_MissingFileLoadsEmpty(t *testing.T) {
	repo := NewUserFileRepository(filepath.Join(t.TempDir(), "users.json"), logger.Nop())

	users, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserFileRepository_LegacyEmptyObjectLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	repo := NewUserFileRepository(path, logger.Nop())
	users, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserFileRepository_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := NewUserFileRepository(path, logger.Nop())

	in := []models.User{
		{
			Username:           "alice",
			PasswordSalt:       "salt0001",
			PasswordHash:       "deadbeef",
			MasterPasswordSalt: "salt0002",
			Groups:             []string{"work"},
		},
		{
			Username:           "bob",
			PasswordSalt:       "salt0003",
			PasswordHash:       "cafebabe",
			MasterPasswordSalt: "salt0004",
			Groups:             []string{},
		},
	}
	require.NoError(t, repo.SaveAll(in))

	out, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUserFileRepository_EmptySaveWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := NewUserFileRepository(path, logger.Nop())

	require.NoError(t, repo.SaveAll(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestUserFileRepository_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"oops":`), 0o600))

	repo := NewUserFileRepository(path, logger.Nop())
	_, err := repo.LoadAll()
	assert.True(t, errors.Is(err, ErrCorruptStore), "err = %v", err)
}

func TestUserFileRepository_NoStrayTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewUserFileRepository(filepath.Join(dir, "users.json"), logger.Nop())

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveAll([]models.User{{Username: "alice"}}))
	}

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "users.json", names[0].Name())
}

func TestEntryFileRepository_PerUserFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewEntryFileRepository(dir, logger.Nop())

	aliceEntries := []models.LoginEntry{
		{ID: "1", Username: "a", Password: "tok1", Address: "example.com", CreatedAt: models.Now(), UpdatedAt: models.Now()},
	}
	require.NoError(t, repo.Save("alice", aliceEntries))
	require.NoError(t, repo.Save("bob", nil))

	assert.FileExists(t, filepath.Join(dir, "alice.json"))
	assert.FileExists(t, filepath.Join(dir, "bob.json"))

	got, err := repo.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, aliceEntries, got)

	gotBob, err := repo.Load("bob")
	require.NoError(t, err)
	assert.Empty(t, gotBob)
}

func TestEntryFileRepository_MissingUserLoadsEmpty(t *testing.T) {
	repo := NewEntryFileRepository(t.TempDir(), logger.Nop())

	entries, err := repo.Load("ghost")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryRepositories_ShareFileContract(t *testing.T) {
	users := NewMemoryUserRepository()
	entries := NewMemoryEntryRepository()

	loaded, err := users.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, users.SaveAll([]models.User{{Username: "alice"}}))
	loaded, err = users.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	// mutating the returned slice must not leak into the repository
	loaded[0].Username = "mallory"
	loaded, err = users.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded[0].Username)

	require.NoError(t, entries.Save("alice", []models.LoginEntry{{ID: "1"}}))
	got, err := entries.Load("alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
