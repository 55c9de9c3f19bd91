package crypto

import "errors"

// ErrCipher is returned by [KeyChain.Decrypt] when a token fails
// authentication: wrong key, truncated input, unknown token version, or any
// other corruption. Callers should match it with [errors.Is].
var ErrCipher = errors.New("cipher: token authentication failed")
