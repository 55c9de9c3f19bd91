package store

import "github.com/stenlik26/passvault/models"

// memoryUserRepository is the in-memory double of [UserRepository]. It
// shares the durable implementation's contract and is used by tests and by
// the services' own unit tests.
type memoryUserRepository struct {
	users []models.User
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) LoadAll() ([]models.User, error) {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryUserRepository) SaveAll(users []models.User) error {
	r.users = make([]models.User, len(users))
	copy(r.users, users)
	return nil
}

// memoryEntryRepository is the in-memory double of [EntryRepository].
type memoryEntryRepository struct {
	vaults map[string][]models.LoginEntry
}

// NewMemoryEntryRepository returns an empty in-memory [EntryRepository].
func NewMemoryEntryRepository() EntryRepository {
	return &memoryEntryRepository{vaults: make(map[string][]models.LoginEntry)}
}

func (r *memoryEntryRepository) Load(username string) ([]models.LoginEntry, error) {
	entries := r.vaults[username]
	out := make([]models.LoginEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *memoryEntryRepository) Save(username string, entries []models.LoginEntry) error {
	stored := make([]models.LoginEntry, len(entries))
	copy(stored, entries)
	r.vaults[username] = stored
	return nil
}
