package slhdsa

import "errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is, since some are wrapped with additional context.
var (
	// ErrInvalidParameters is returned when a Name does not identify one of
	// the twelve defined parameter sets.
	ErrInvalidParameters = errors.New("slhdsa: invalid parameter set")

	// ErrInvalidLength is returned when a key, signature or context string
	// does not have the length the active parameter set requires.
	ErrInvalidLength = errors.New("slhdsa: invalid length")

	// ErrWeakKey is returned by GenerateKey and ParsePrivateKey when a
	// seed component or the derived root is all-zero. This is not part of
	// the NIST pseudocode; it is cheap insurance against a broken entropy
	// source producing a degenerate key.
	ErrWeakKey = errors.New("slhdsa: weak key material")

	// ErrRootMismatch is returned by ParsePrivateKey when the encoded
	// PK.root does not match the root recomputed from SK.seed/PK.seed.
	ErrRootMismatch = errors.New("slhdsa: public key root does not match private key")

	// ErrUnsupportedHash is returned by the pre-hash encoding when asked
	// for a HashID with no registered OID.
	ErrUnsupportedHash = errors.New("slhdsa: unsupported pre-hash function")

	// ErrRngFailure is returned when the caller-supplied io.Reader fails
	// to fill a required buffer.
	ErrRngFailure = errors.New("slhdsa: random source failure")

	// ErrTruncation is returned when an internal digest split does not add
	// up to the expected byte count; this indicates a parameter-set or
	// suite bug, not bad input, and should never occur in practice.
	ErrTruncation = errors.New("slhdsa: internal digest truncation mismatch")
)
