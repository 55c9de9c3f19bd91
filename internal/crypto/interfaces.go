package crypto

// KeyChain bundles every cryptographic primitive the vault needs: salt
// generation, one-way password hashing, key derivation and authenticated
// encryption of entry secrets. It performs no I/O and no logging; every
// method is a pure transformation of its inputs.
//
// Scheme:
//
//	salt        = GenerateSalt()                 (registration)
//	hash        = SaltedHash(password, salt)     (login verification)
//	key         = DeriveKey(password, masterSalt) (session start)
//	token       = Encrypt(secret, key)           (entry at rest)
//	secret      = Decrypt(token, key)            (entry fetch)
type KeyChain interface {
	// GenerateSalt returns a fresh random salt of a fixed length drawn from
	// a letters+digits alphabet. The salt is not secret; it is stored next
	// to the value it protects. Uses the OS CSPRNG.
	GenerateSalt() (string, error)

	// SaltedHash returns the hex digest of a one-way hash over
	// password+salt. Deterministic; the only extractable relationship to
	// the password is equality checking.
	SaltedHash(password, salt string) string

	// DeriveKey derives the 256-bit symmetric encryption key from the
	// password and the user's master salt via a memory-hard KDF. The same
	// inputs always yield the same key. The result must live only in
	// process memory for the duration of the session.
	DeriveKey(password, salt string) ([]byte, error)

	// Encrypt produces a versioned, self-describing, authenticated token
	// for plaintext under key. The token embeds an issue timestamp and an
	// integrity tag.
	Encrypt(plaintext string, key []byte) (string, error)

	// Decrypt is the exact inverse of Encrypt for the same key. A token
	// produced under a different key, or a corrupted or truncated token,
	// fails with [ErrCipher]; it never silently yields wrong plaintext.
	Decrypt(token string, key []byte) (string, error)
}
