package faction

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("FACTNmq2FhA2QNTnGM2aWJH3i7zT3cND5CgvjYTjyVYe")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID   = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SYSVAR_CLOCK_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarC1ock11111111111111111111111111111111"))
)

// Program carries the enlistment program's record and call kinds. All
// definitions happen at init time; the registry is read-only afterwards.
var Program = anchor.NewProgram("faction", PROGRAM_ID)

// FactionID identifies one of the three playable factions.
type FactionID uint8

const (
	FactionMUD FactionID = iota
	FactionONI
	FactionUstur
)

func (f FactionID) String() string {
	switch f {
	case FactionMUD:
		return "mud"
	case FactionONI:
		return "oni"
	case FactionUstur:
		return "ustur"
	}
	return "unknown"
}
