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

// vaultService is the concrete implementation of [VaultService].
//
// It is constructed per authenticated session: the derived key lives only
// in this struct and dies with it. Entries are kept in a map keyed by id
// with a parallel order slice, so List and the searches walk insertion
// order and every persist writes the file in that same order.
type vaultService struct {
	username   string
	key        []byte
	repository store.EntryRepository
	keychain   crypto.KeyChain
	sink       audit.Sink
	logger     *logger.Logger

	entries map[string]models.LoginEntry
	order   []string
}

// NewVaultService constructs a [VaultService] scoped to the authenticated
// username and its derived session key, loading the user's entry file
// eagerly (an absent file is an empty vault). Returns an error if the
// backing file cannot be read or parsed.
func NewVaultService(username string, key []byte, repository store.EntryRepository, keychain crypto.KeyChain, sink audit.Sink, log *logger.Logger) (VaultService, error) {
	records, err := repository.Load(username)
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	s := &vaultService{
		username:   username,
		key:        key,
		repository: repository,
		keychain:   keychain,
		sink:       sink,
		logger:     log,
		entries:    make(map[string]models.LoginEntry, len(records)),
		order:      make([]string, 0, len(records)),
	}
	for _, e := range records {
		s.entries[e.ID] = e
		s.order = append(s.order, e.ID)
	}

	sink.LogWithUser("loaded passwords", username, audit.Debug)
	return s, nil
}

// Create implements [VaultService].
func (s *vaultService) Create(address, username, password, group string) (models.LoginEntry, error) {
	ciphertext, err := s.keychain.Encrypt(password, s.key)
	if err != nil {
		return models.LoginEntry{}, fmt.Errorf("encrypt password: %w", err)
	}

	now := models.Now()
	entry := models.LoginEntry{
		ID:        newEntryID(),
		Username:  username,
		Password:  ciphertext,
		Address:   address,
		Group:     group,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)

	if err := s.persist(); err != nil {
		return models.LoginEntry{}, err
	}

	s.sink.LogWithUser("a new password has been saved", s.username, audit.Info)
	return entry, nil
}

// Fetch implements [VaultService]. The returned copy carries the decrypted
// password; the stored record stays encrypted.
func (s *vaultService) Fetch(id string) (models.LoginEntry, error) {
	entry, exists := s.entries[id]
	if !exists {
		s.sink.LogWithUser("an invalid entry has been fetched", s.username, audit.Error)
		return models.LoginEntry{}, ErrEntryNotFound
	}

	plaintext, err := s.keychain.Decrypt(entry.Password, s.key)
	if err != nil {
		return models.LoginEntry{}, fmt.Errorf("decrypt entry %s: %w", id, err)
	}
	entry.Password = plaintext

	s.sink.LogWithUser(fmt.Sprintf("fetched password entry %s", id), s.username, audit.Info)
	return entry, nil
}

// Edit implements [VaultService].
func (s *vaultService) Edit(id string, entry models.LoginEntry) error {
	stored, exists := s.entries[id]
	if !exists {
		s.sink.LogWithUser("invalid input entry on edit", s.username, audit.Error)
		return ErrInvalidEntry
	}

	ciphertext, err := s.keychain.Encrypt(entry.Password, s.key)
	if err != nil {
		return fmt.Errorf("encrypt password: %w", err)
	}

	entry.ID = stored.ID
	entry.CreatedAt = stored.CreatedAt
	entry.Password = ciphertext
	entry.UpdatedAt = models.Now()
	s.entries[id] = entry

	if err := s.persist(); err != nil {
		return err
	}

	s.sink.LogWithUser(fmt.Sprintf("edited password entry %s", id), s.username, audit.Info)
	return nil
}

// Delete implements [VaultService]. The returned record keeps its
// ciphertext; nothing is written when the id is unknown.
func (s *vaultService) Delete(id string) (models.LoginEntry, error) {
	entry, exists := s.entries[id]
	if !exists {
		s.sink.LogWithUser("invalid input entry on delete", s.username, audit.Error)
		return models.LoginEntry{}, ErrEntryNotFound
	}

	delete(s.entries, id)
	for i, storedID := range s.order {
		if storedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	if err := s.persist(); err != nil {
		return models.LoginEntry{}, err
	}

	s.sink.LogWithUser(fmt.Sprintf("deleted password entry %s", id), s.username, audit.Info)
	return entry, nil
}

// List implements [VaultService].
func (s *vaultService) List() []models.LoginEntry {
	s.sink.LogWithUser("listing passwords", s.username, audit.Debug)
	return s.collect(func(models.LoginEntry) bool { return true })
}

// SearchByUsername implements [VaultService].
func (s *vaultService) SearchByUsername(match string) []models.LoginEntry {
	s.sink.LogWithUser("searching passwords by username", s.username, audit.Debug)
	return s.collect(func(e models.LoginEntry) bool {
		return strings.Contains(e.Username, match)
	})
}

// SearchByAddress implements [VaultService].
func (s *vaultService) SearchByAddress(match string) []models.LoginEntry {
	s.sink.LogWithUser("searching passwords by address", s.username, audit.Debug)
	return s.collect(func(e models.LoginEntry) bool {
		return strings.Contains(e.Address, match)
	})
}

// SearchByGroups implements [VaultService].
func (s *vaultService) SearchByGroups(names ...string) []models.LoginEntry {
	s.sink.LogWithUser("searching passwords by group", s.username, audit.Debug)
	return s.collect(func(e models.LoginEntry) bool {
		for _, name := range names {
			if e.Group == name {
				return true
			}
		}
		return false
	})
}

// Username implements [VaultService].
func (s *vaultService) Username() string {
	return s.username
}

// collect walks the entries in insertion order and returns those matching
// keep. Never returns nil.
func (s *vaultService) collect(keep func(models.LoginEntry) bool) []models.LoginEntry {
	out := make([]models.LoginEntry, 0, len(s.order))
	for _, id := range s.order {
		if entry := s.entries[id]; keep(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// persist rewrites the user's whole entry file in insertion order.
func (s *vaultService) persist() error {
	records := make([]models.LoginEntry, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.entries[id])
	}

	if err := s.repository.Save(s.username, records); err != nil {
		s.logger.Err(err).Str("user", s.username).Msg("saving vault file failed")
		return fmt.Errorf("save vault: %w", err)
	}

	s.sink.LogWithUser("saved passwords", s.username, audit.Debug)
	return nil
}
