package service

import "errors"

// Sentinel errors surfaced by the credential and vault services. Callers
// discriminate with [errors.Is]; there is no exception-style control flow
// and no lookup that panics on a missing key.
var (
	// ErrUsernameTaken is returned by Register when the username is blank
	// after trimming or already registered. The two cases are deliberately
	// indistinguishable.
	ErrUsernameTaken = errors.New("username is blank or already taken")

	// ErrInvalidLogin is returned by Login for both an unknown username and
	// a wrong password, so the caller cannot enumerate accounts.
	ErrInvalidLogin = errors.New("invalid username or password")

	// ErrUnknownUser is returned by group operations targeting an
	// unregistered username.
	ErrUnknownUser = errors.New("unknown user")

	// ErrGroupExists is returned by CreateGroup when the user already has a
	// group with that name.
	ErrGroupExists = errors.New("group already exists")

	// ErrGroupNotFound is returned by DeleteGroup when the user has no
	// group with that name.
	ErrGroupNotFound = errors.New("group not found")

	// ErrInvalidEntry is returned by Edit when the target id does not
	// exist.
	ErrInvalidEntry = errors.New("invalid entry id")

	// ErrEntryNotFound is returned by Fetch and Delete when the target id
	// does not exist. Distinct from ErrInvalidEntry: a failed lookup is an
	// empty result, not invalid input.
	ErrEntryNotFound = errors.New("entry not found")
)
