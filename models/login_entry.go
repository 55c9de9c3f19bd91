package models

import "time"

// TimeLayout is the fixed format used for LoginEntry timestamps in the
// per-user vault file, e.g. "2024-03-01 18:45:02". Timestamps are local time.
const TimeLayout = "2006-01-02 15:04:05"

// LoginEntry is one stored site credential, scoped to exactly one user.
//
// The Password field always holds the at-rest ciphertext token, both in the
// backing file and in values returned from create, edit, delete, list and
// search operations. Only an explicit fetch by id returns a copy with the
// password decrypted.
type LoginEntry struct {
	// ID is the opaque unique identifier, assigned at creation and
	// immutable afterwards.
	ID string `json:"id"`

	// Username is the plaintext account name stored for the site.
	Username string `json:"username"`

	// Password is the authenticated-encryption token of the site password.
	Password string `json:"password"`

	// Address is the plaintext site address.
	Address string `json:"address"`

	// Group is the user-defined label the entry is tagged with. May be empty.
	Group string `json:"group"`

	// CreatedAt and UpdatedAt are formatted with [TimeLayout]. Both are set
	// at creation; UpdatedAt is refreshed on every edit.
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Now returns the current local time formatted with [TimeLayout].
func Now() string {
	return time.Now().Format(TimeLayout)
}
