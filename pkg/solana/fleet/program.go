package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("FLEET1qqzpexyaDpqb2DGsSzE2sDCizewCg9WjrA6DBW")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID    = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	SYSVAR_CLOCK_PUBKEY  = ed25519.PublicKey(mustBase58Decode("SysvarC1ock11111111111111111111111111111111"))
	SYSVAR_RENT_PUBKEY   = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)

// Program carries the ship staking program's record and call kinds. All
// definitions happen at init time; the registry is read-only afterwards.
var Program = anchor.NewProgram("score", PROGRAM_ID)
