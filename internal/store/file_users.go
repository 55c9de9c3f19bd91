package store

import (
	"github.com/stenlik26/passvault/internal/logger"
	"github.com/stenlik26/passvault/models"
)

// userFileRepository is the durable implementation of [UserRepository]: a
// single JSON array of user records, one file per installation.
type userFileRepository struct {
	path   string
	logger *logger.Logger
}

// NewUserFileRepository constructs a [UserRepository] backed by the JSON
// file at path. The file is created lazily on the first save; a missing
// file loads as an empty user set.
func NewUserFileRepository(path string, logger *logger.Logger) UserRepository {
	return &userFileRepository{path: path, logger: logger}
}

// LoadAll implements [UserRepository].
func (r *userFileRepository) LoadAll() ([]models.User, error) {
	var users []models.User
	if err := readJSONSlice(r.path, &users); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("path", r.path).Int("count", len(users)).Msg("loaded user file")
	return users, nil
}

// SaveAll implements [UserRepository].
func (r *userFileRepository) SaveAll(users []models.User) error {
	data, err := marshalJSONSlice(users)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(r.path, data); err != nil {
		return err
	}

	r.logger.Debug().Str("path", r.path).Int("count", len(users)).Msg("saved user file")
	return nil
}
