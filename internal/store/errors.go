package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptStore is returned when a backing file exists but does not
	// parse as the expected JSON schema. It usually indicates a crash
	// mid-write or manual tampering; the file is left untouched for
	// inspection.
	ErrCorruptStore = errors.New("backing file is corrupt")
)
