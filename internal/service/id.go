package service

import "github.com/google/uuid"

// newEntryID returns the opaque identifier assigned to a vault entry at
// creation time: a time-ordered UUIDv7 string so that ids sort in creation
// order, falling back to a random UUIDv4 if the monotonic source fails.
func newEntryID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
