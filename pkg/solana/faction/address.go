package faction

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

var (
	playerFactionPrefix = []byte("FACTION_ENLISTMENT")
)

type GetPlayerFactionAddressArgs struct {
	PlayerAccount ed25519.PublicKey
}

func GetPlayerFactionAddress(args *GetPlayerFactionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		playerFactionPrefix,
		args.PlayerAccount,
	)
}
