// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"
	"strings"

	"github.com/stenlik26/passvault/internal/audit"
	"github.com/stenlik26/passvault/internal/crypto"
	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/internal/store"
	"github.com/stenlik26/passvault/models"
)

// credentialService is the concrete implementation of [CredentialService].
//
// It loads the full user set into memory at construction and rewrites the
// backing file through its [store.UserRepository] after every mutation. The
// map is never reachable from outside; only the operations below touch it.
type credentialService struct {
	repository store.UserRepository
	keychain   crypto.KeyChain
	sink       audit.Sink
	logger     *logger.Logger

	// users is keyed by username; order preserves registration order so
	// the backing file stays stable across rewrites.
	users map[string]models.User
	order []string
}

// NewCredentialService constructs a [CredentialService] on top of the given
// repository, loading the existing user set eagerly. Returns an error if
// the backing file cannot be read or parsed.
func NewCredentialService(repository store.UserRepository, keychain crypto.KeyChain, sink audit.Sink, log *logger.Logger) (CredentialService, error) {
	records, err := repository.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	s := &credentialService{
		repository: repository,
		keychain:   keychain,
		sink:       sink,
		logger:     log,
		users:      make(map[string]models.User, len(records)),
		order:      make([]string, 0, len(records)),
	}
	for _, u := range records {
		s.users[u.Username] = u
		s.order = append(s.order, u.Username)
	}

	sink.Log("user store loaded", audit.Debug)
	return s, nil
}

// Register implements [CredentialService].
func (s *credentialService) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if _, exists := s.users[username]; exists || username == "" {
		s.sink.Log("a user tried to register with an empty or taken username", audit.Warning)
		return ErrUsernameTaken
	}

	passwordSalt, err := s.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate password salt: %w", err)
	}
	masterSalt, err := s.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate master salt: %w", err)
	}

	s.users[username] = models.User{
		Username:           username,
		PasswordSalt:       passwordSalt,
		PasswordHash:       s.keychain.SaltedHash(password, passwordSalt),
		MasterPasswordSalt: masterSalt,
		Groups:             []string{},
	}
	s.order = append(s.order, username)

	if err := s.persist(); err != nil {
		return err
	}

	s.sink.LogWithUser("a new user has been registered", username, audit.Info)
	s.logger.Info().Str("user", username).Msg("user registered")
	return nil
}

// Login implements [CredentialService]. The returned key is derived from
// the password and the user's master salt; it is never stored or logged.
func (s *credentialService) Login(username, password string) ([]byte, error) {
	user, exists := s.users[username]
	if !exists {
		s.sink.Log("a user tried to login with an invalid username", audit.Error)
		return nil, ErrInvalidLogin
	}

	if s.keychain.SaltedHash(password, user.PasswordSalt) != user.PasswordHash {
		s.sink.Log("a user tried to login with an invalid password", audit.Error)
		return nil, ErrInvalidLogin
	}

	key, err := s.keychain.DeriveKey(password, user.MasterPasswordSalt)
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}

	s.sink.LogWithUser("user logged in", username, audit.Info)
	s.logger.Info().Str("user", username).Msg("login succeeded")
	return key, nil
}

// CreateGroup implements [CredentialService].
func (s *credentialService) CreateGroup(username, name string) error {
	user, exists := s.users[username]
	if !exists {
		return ErrUnknownUser
	}

	for _, g := range user.Groups {
		if g == name {
			return ErrGroupExists
		}
	}

	user.Groups = append(user.Groups, name)
	s.users[username] = user

	if err := s.persist(); err != nil {
		return err
	}

	s.sink.LogWithUser(fmt.Sprintf("a new group has been registered: %s", name), username, audit.Info)
	return nil
}

// DeleteGroup implements [CredentialService].
func (s *credentialService) DeleteGroup(username, name string) error {
	user, exists := s.users[username]
	if !exists {
		return ErrUnknownUser
	}

	idx := -1
	for i, g := range user.Groups {
		if g == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrGroupNotFound
	}

	user.Groups = append(user.Groups[:idx], user.Groups[idx+1:]...)
	s.users[username] = user

	if err := s.persist(); err != nil {
		return err
	}

	s.sink.LogWithUser(fmt.Sprintf("a group has been deleted: %s", name), username, audit.Info)
	return nil
}

// FetchGroups implements [CredentialService].
func (s *credentialService) FetchGroups(username string) ([]string, error) {
	user, exists := s.users[username]
	if !exists {
		return nil, ErrUnknownUser
	}

	s.sink.LogWithUser("request to fetch all groups", username, audit.Debug)

	groups := make([]string, len(user.Groups))
	copy(groups, user.Groups)
	return groups, nil
}

// persist rewrites the whole user file in registration order.
func (s *credentialService) persist() error {
	records := make([]models.User, 0, len(s.order))
	for _, username := range s.order {
		records = append(records, s.users[username])
	}

	if err := s.repository.SaveAll(records); err != nil {
		s.logger.Err(err).Msg("saving user file failed")
		return fmt.Errorf("save users: %w", err)
	}

	s.sink.Log("user file has been saved", audit.Debug)
	return nil
}
