package anchor

import "errors"

var (
	// ErrTruncatedInput indicates a buffer shorter than the declared record size.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrFieldMismatch indicates a value whose shape disagrees with its declared
	// layout, either during encode or when binding a portable representation.
	ErrFieldMismatch = errors.New("field mismatch")

	// ErrInvalidDiscriminator indicates the 8-byte prefix does not match the
	// expected record kind. The data is either a different kind or foreign.
	ErrInvalidDiscriminator = errors.New("invalid discriminator")

	// ErrOwnershipMismatch indicates a fetched account is not owned by the
	// program the record kind was defined against.
	ErrOwnershipMismatch = errors.New("account not owned by expected program")

	// ErrMissingAccountRole indicates an instruction build was attempted without
	// providing a key for a required named account.
	ErrMissingAccountRole = errors.New("missing account role")
)
