package models

// User represents one registered vault account. It holds only verification
// and key-derivation material; neither the plaintext password nor the derived
// encryption key ever appears in this struct.
type User struct {
	// PasswordSalt is the random salt mixed into the one-way password hash.
	// Unique per user, used for nothing else.
	PasswordSalt string `json:"password_salt"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It is the sole basis for login verification and is not reversible.
	PasswordHash string `json:"password_hash"`

	// Username is the unique account identifier and the primary key of the
	// credential store.
	Username string `json:"username"`

	// MasterPasswordSalt is the random salt used only for deriving the
	// encryption key from the password. Never used for hashing.
	MasterPasswordSalt string `json:"master_password_salt"`

	// Groups is the ordered list of user-defined labels available for
	// tagging vault entries. Unique within a user.
	Groups []string `json:"groups"`
}
