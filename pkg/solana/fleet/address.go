package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

var (
	scoreVarsPrefix         = []byte("SCOREVARS")
	scoreVarsShipPrefix     = []byte("SCOREVARS_SHIP")
	shipStakingPrefix       = []byte("SCORE_INFO")
	escrowAuthorityPrefix   = []byte("ESCROW_AUTHORITY")
	resourceEscrowPrefix    = []byte("SCORE_ESCROW")
	shipEscrowPrefix        = []byte("SCORE_SHIP_ESCROW")
	treasuryPrefix          = []byte("TREASURY")
	treasuryAuthorityPrefix = []byte("TREASURY_AUTHORITY")
)

type GetScoreVarsShipAddressArgs struct {
	ShipMint ed25519.PublicKey
}

type GetShipStakingAddressArgs struct {
	PlayerAccount ed25519.PublicKey
	ShipMint      ed25519.PublicKey
}

type GetEscrowAuthorityAddressArgs struct {
	PlayerAccount ed25519.PublicKey
	ShipMint      ed25519.PublicKey
}

type GetResourceEscrowAddressArgs struct {
	PlayerAccount ed25519.PublicKey
	ShipMint      ed25519.PublicKey
	ResourceMint  ed25519.PublicKey
}

type GetShipEscrowAddressArgs struct {
	PlayerAccount ed25519.PublicKey
	ShipMint      ed25519.PublicKey
}

func GetScoreVarsAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		scoreVarsPrefix,
	)
}

func GetScoreVarsShipAddress(args *GetScoreVarsShipAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		scoreVarsShipPrefix,
		args.ShipMint,
	)
}

func GetShipStakingAddress(args *GetShipStakingAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		shipStakingPrefix,
		args.PlayerAccount,
		args.ShipMint,
	)
}

func GetEscrowAuthorityAddress(args *GetEscrowAuthorityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		escrowAuthorityPrefix,
		args.PlayerAccount,
		args.ShipMint,
	)
}

// GetResourceEscrowAddress derives the escrow token account holding one of the
// ship's consumable resources (fuel, food, or arms).
func GetResourceEscrowAddress(args *GetResourceEscrowAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		resourceEscrowPrefix,
		args.PlayerAccount,
		args.ShipMint,
		args.ResourceMint,
	)
}

func GetShipEscrowAddress(args *GetShipEscrowAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		shipEscrowPrefix,
		args.PlayerAccount,
		args.ShipMint,
	)
}

func GetTreasuryAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		treasuryPrefix,
	)
}

func GetTreasuryAuthorityAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		treasuryAuthorityPrefix,
	)
}
