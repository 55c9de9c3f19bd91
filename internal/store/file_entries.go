package store

import (
	"path/filepath"

	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/models"
)

// entryFileRepository is the durable implementation of [EntryRepository]:
// one JSON array file per user under a common directory, named after the
// username.
type entryFileRepository struct {
	dir    string
	logger *logger.Logger
}

// NewEntryFileRepository constructs an [EntryRepository] storing each
// user's vault as <dir>/<username>.json. The directory is created on the
// first save; missing files load as empty vaults.
func NewEntryFileRepository(dir string, logger *logger.Logger) EntryRepository {
	return &entryFileRepository{dir: dir, logger: logger}
}

func (r *entryFileRepository) filePath(username string) string {
	return filepath.Join(r.dir, username+".json")
}

// Load implements [EntryRepository].
func (r *entryFileRepository) Load(username string) ([]models.LoginEntry, error) {
	var entries []models.LoginEntry
	if err := readJSONSlice(r.filePath(username), &entries); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("user", username).Int("count", len(entries)).Msg("loaded vault file")
	return entries, nil
}

// Save implements [EntryRepository].
func (r *entryFileRepository) Save(username string, entries []models.LoginEntry) error {
	data, err := marshalJSONSlice(entries)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(r.filePath(username), data); err != nil {
		return err
	}

	r.logger.Debug().Str("user", username).Int("count", len(entries)).Msg("saved vault file")
	return nil
}
