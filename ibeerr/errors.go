// Package ibeerr defines the error taxonomy shared by every package in
// this module. Errors are sentinel values wrapped with context via
// fmt.Errorf("...: %w", ...) and matched with errors.Is, for typed,
// classifiable failures a caller can branch on.
package ibeerr

import "errors"

var (
	// ErrInvalidLevel is raised when a security level falls outside 1..5.
	ErrInvalidLevel = errors.New("invalid security level")

	// ErrRandomFailure is raised when the CSPRNG refuses to produce bytes.
	ErrRandomFailure = errors.New("random source failure")

	// ErrParse is raised when a text or binary input does not match the
	// expected format.
	ErrParse = errors.New("parse error")

	// ErrShardMismatch is raised when combining or consuming shards with
	// differing level, subgroup order, or curve.
	ErrShardMismatch = errors.New("shard mismatch")

	// ErrDecryptionInvalid is raised when the Fujisaki-Okamoto validity
	// check on decrypt fails.
	ErrDecryptionInvalid = errors.New("decryption invalid")

	// ErrIO is raised by the file I/O surface in external adapters.
	ErrIO = errors.New("i/o error")
)
