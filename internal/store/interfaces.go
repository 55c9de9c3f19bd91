package store

import "github.com/stenlik26/passvault/models"

// UserRepository persists the full set of registered users. The credential
// service owns the in-memory state; the repository only loads it at startup
// and rewrites it in full after every mutation. There are no partial
// updates.
type UserRepository interface {
	// LoadAll reads every user record. An absent or empty backing file
	// yields an empty slice, not an error.
	LoadAll() ([]models.User, error)

	// SaveAll rewrites the backing file with exactly the given records, in
	// the given order.
	SaveAll(users []models.User) error
}

// EntryRepository persists one user's vault entries, keyed by the account
// username. Same whole-state contract as [UserRepository].
type EntryRepository interface {
	// Load reads the entry set of the given user. An absent or empty
	// backing file yields an empty slice, not an error.
	Load(username string) ([]models.LoginEntry, error)

	// Save rewrites the user's backing file with exactly the given entries,
	// in the given order.
	Save(username string, entries []models.LoginEntry) error
}
