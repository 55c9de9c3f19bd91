package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenlik26/passvault/internal/audit"
	"github.com/stenlik26/passvault/internal/crypto"
	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/internal/store"
)

func newTestCredentialService(t *testing.T, repo store.UserRepository) CredentialService {
	t.Helper()
	svc, err := NewCredentialService(repo, crypto.NewKeyChain(), audit.Nop(), logger.Nop())
	require.NoError(t, err)
	return svc
}

func TestRegister_FreshUsernameSucceeds(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())

	require.NoError(t, svc.Register("alice", "s3cret"))
}

func TestRegister_DuplicateFails(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())

	require.NoError(t, svc.Register("alice", "s3cret"))
	err := svc.Register("alice", "other password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_BlankUsernameFails(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())

	for _, username := range []string{"", "   ", "\t\n"} {
		err := svc.Register(username, "s3cret")
		assert.ErrorIs(t, err, ErrUsernameTaken, "username %q", username)
	}
}

func TestRegister_TrimsUsername(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())

	require.NoError(t, svc.Register("  alice  ", "s3cret"))

	// the trimmed name is what got registered
	err := svc.Register("alice", "s3cret")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Login("alice", "s3cret")
	assert.NoError(t, err)
}

func TestLogin_ReturnsStableKey(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())
	require.NoError(t, svc.Register("alice", "s3cret"))

	k1, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	require.Len(t, k1, 32)

	k2, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestLogin_WrongPasswordAndUnknownUserCollapse(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())
	require.NoError(t, svc.Register("alice", "s3cret"))

	_, errWrongPassword := svc.Login("alice", "not the password")
	_, errUnknownUser := svc.Login("nobody", "s3cret")

	assert.ErrorIs(t, errWrongPassword, ErrInvalidLogin)
	assert.ErrorIs(t, errUnknownUser, ErrInvalidLogin)
	// same sentinel: a caller cannot tell the two cases apart
	assert.True(t, errors.Is(errWrongPassword, errUnknownUser))
}

func TestLogin_SurvivesServiceReconstruction(t *testing.T) {
	repo := store.NewMemoryUserRepository()

	first := newTestCredentialService(t, repo)
	require.NoError(t, first.Register("alice", "s3cret"))
	keyBefore, err := first.Login("alice", "s3cret")
	require.NoError(t, err)

	second := newTestCredentialService(t, repo)
	keyAfter, err := second.Login("alice", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, keyBefore, keyAfter)
}

func TestStoredRecords_NeverHoldPlaintext(t *testing.T) {
	repo := store.NewMemoryUserRepository()
	svc := newTestCredentialService(t, repo)
	require.NoError(t, svc.Register("alice", "s3cret"))
	require.NoError(t, svc.Register("bob", "s3cret"))

	users, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, users, 2)

	for _, u := range users {
		assert.NotContains(t, u.PasswordHash, "s3cret")
		assert.NotEqual(t, u.PasswordSalt, u.MasterPasswordSalt)
	}
	// same password, different salts, different hashes
	assert.NotEqual(t, users[0].PasswordHash, users[1].PasswordHash)
}

func TestGroups_Lifecycle(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())
	require.NoError(t, svc.Register("alice", "s3cret"))

	require.NoError(t, svc.CreateGroup("alice", "work"))
	require.NoError(t, svc.CreateGroup("alice", "personal"))

	groups, err := svc.FetchGroups("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "personal"}, groups)

	assert.ErrorIs(t, svc.CreateGroup("alice", "work"), ErrGroupExists)

	require.NoError(t, svc.DeleteGroup("alice", "work"))
	groups, err = svc.FetchGroups("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"personal"}, groups)

	assert.ErrorIs(t, svc.DeleteGroup("alice", "work"), ErrGroupNotFound)
}

func TestGroups_UnknownUserFails(t *testing.T) {
	svc := newTestCredentialService(t, store.NewMemoryUserRepository())

	assert.ErrorIs(t, svc.CreateGroup("ghost", "work"), ErrUnknownUser)
	assert.ErrorIs(t, svc.DeleteGroup("ghost", "work"), ErrUnknownUser)
	_, err := svc.FetchGroups("ghost")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestGroups_SurviveReconstruction(t *testing.T) {
	repo := store.NewMemoryUserRepository()

	first := newTestCredentialService(t, repo)
	require.NoError(t, first.Register("alice", "s3cret"))
	require.NoError(t, first.CreateGroup("alice", "work"))
	require.NoError(t, first.CreateGroup("alice", "banking"))
	require.NoError(t, first.DeleteGroup("alice", "work"))

	second := newTestCredentialService(t, repo)
	groups, err := second.FetchGroups("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"banking"}, groups)
}
