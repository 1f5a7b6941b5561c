package types

import "errors"

var (
	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound is returned when a task, worker or log is not found
	ErrNotFound = errors.New("not found")

	// ErrTimeout is returned when an operation times out
	ErrTimeout = errors.New("operation timed out")

	// ErrInvalidSignature is returned when a frame signature does not verify
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrTxFailed is returned when the chain rejects a transaction
	ErrTxFailed = errors.New("transaction failed")

	// ErrSignerMismatch is returned when a message names an account other
	// than the signing key's
	ErrSignerMismatch = errors.New("signer mismatch")
)
