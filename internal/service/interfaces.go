package service

import "github.com/stenlik26/passvault/models"

// CredentialService owns the set of registered users: registration, login
// verification, and per-user group labels. All mutations are persisted in
// full before the call returns.
type CredentialService interface {
	// Register creates a new account with fresh password and master salts.
	// Fails with [ErrUsernameTaken] if the trimmed username is empty or
	// already present.
	Register(username, password string) error

	// Login verifies the credentials and, on success, returns the derived
	// encryption key for the session. Unknown username and wrong password
	// both fail with [ErrInvalidLogin].
	Login(username, password string) ([]byte, error)

	// CreateGroup adds a group label to the user's ordered list. Fails with
	// [ErrUnknownUser] or [ErrGroupExists].
	CreateGroup(username, name string) error

	// DeleteGroup removes a group label. Fails with [ErrUnknownUser] or
	// [ErrGroupNotFound].
	DeleteGroup(username, name string) error

	// FetchGroups returns a copy of the user's group list in creation
	// order. Fails with [ErrUnknownUser].
	FetchGroups(username string) ([]string, error)
}

// VaultService owns one authenticated user's login entries for the
// lifetime of the session. Entries are encrypted at rest; every value the
// service returns keeps the stored ciphertext except an explicit Fetch,
// which returns a decrypted copy.
type VaultService interface {
	// Create stores a new entry with a fresh id and the password encrypted
	// under the session key, and returns the stored (ciphertext) record.
	Create(address, username, password, group string) (models.LoginEntry, error)

	// Fetch returns a decrypted copy of the entry without mutating stored
	// state. Fails with [ErrEntryNotFound].
	Fetch(id string) (models.LoginEntry, error)

	// Edit replaces the stored record in place, re-encrypting the password
	// and refreshing the update timestamp while preserving the id and
	// creation timestamp. Fails with [ErrInvalidEntry].
	Edit(id string, entry models.LoginEntry) error

	// Delete removes and returns the stored (still encrypted) record.
	// Fails with [ErrEntryNotFound]; nothing is persisted on failure.
	Delete(id string) (models.LoginEntry, error)

	// List returns all stored entries in insertion order, ciphertext
	// included.
	List() []models.LoginEntry

	// SearchByUsername returns entries whose username contains the
	// substring, case-sensitively, in insertion order.
	SearchByUsername(match string) []models.LoginEntry

	// SearchByAddress returns entries whose address contains the
	// substring, case-sensitively, in insertion order.
	SearchByAddress(match string) []models.LoginEntry

	// SearchByGroups returns entries whose group exactly equals one of the
	// given names, in insertion order.
	SearchByGroups(names ...string) []models.LoginEntry

	// Username returns the account the vault is scoped to.
	Username() string
}
