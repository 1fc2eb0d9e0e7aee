package services

import "errors"

var (
	// ErrOperationFailed is the opaque failure surfaced to the transport
	// layer when a store or cache call fails. The original cause is
	// logged, never sent to the client.
	ErrOperationFailed = errors.New("operation failed")

	// ErrInvalidCredentials covers both unknown-user and wrong-password
	// on login so callers cannot probe for usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
