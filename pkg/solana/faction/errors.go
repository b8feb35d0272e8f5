package faction

type FactionError uint32

const (
	// Faction ID must be 0, 1, or 2
	ErrInvalidFactionID FactionError = iota + 0x1770

	// Player is already enlisted with a faction
	ErrAlreadyEnlisted

	// Player has no enlistment to leave
	ErrNotEnlisted

	// Bump seed does not match the derived enlistment address
	ErrInvalidBump

	// Signer does not own the enlistment record
	ErrInvalidOwner
)
