package fleet

type ScoreError uint32

const (
	// Ship quantity must be greater than zero
	ErrInvalidShipQuantity ScoreError = iota + 0x1770

	// Resource quantity must be greater than zero
	ErrInvalidResourceQuantity

	// No ships staked for this player and ship class
	ErrShipNotStaked

	// Escrow does not hold the requested amount
	ErrInsufficientEscrowBalance

	// No rewards available to harvest
	ErrInvalidHarvest

	// Bump seed does not match the derived address
	ErrInvalidBumpSeed

	// Ship class has not been registered
	ErrShipNotRegistered
)
