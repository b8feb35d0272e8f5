package faction

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	PlayerFactionDataSize = (anchor.DiscriminatorSize + // discriminator
		32 + // owner
		8 + // enlisted_at_timestamp
		1 + // faction_id
		1 + // bump
		40) // padding
)

// PlayerFactionData records a player's enlistment with a faction.
type PlayerFactionData struct {
	Owner               ed25519.PublicKey
	EnlistedAtTimestamp int64
	FactionID           uint8
	Bump                uint8
	Padding             [5]uint64
}

var PlayerFactionDataAccount = anchor.DefineAccount[PlayerFactionData](Program, "PlayerFactionData", anchor.MustLayout(
	anchor.Field{Name: "owner", Type: anchor.Key},
	anchor.Field{Name: "enlisted_at_timestamp", Type: anchor.I64},
	anchor.Field{Name: "faction_id", Type: anchor.U8},
	anchor.Field{Name: "bump", Type: anchor.U8},
	anchor.Field{Name: "padding", Type: anchor.ArrayOf(anchor.U64, 5)},
))
