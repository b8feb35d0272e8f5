package faction

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

func TestGetPlayerFactionAddress(t *testing.T) {
	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: mustBase58Decode("1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"),
	})
	require.NoError(t, err)
	assert.Equal(t, "8bhHZjFQ2JqWqL3Dk8WCgNYbg9YH9ZbSz7axv2KREeJF", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}

func TestGetPlayerFactionAddress_BumpVerifies(t *testing.T) {
	player := mustBase58Decode("1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE")

	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	require.NoError(t, err)

	created, err := solana.CreateProgramAddress(
		PROGRAM_ID,
		playerFactionPrefix,
		player,
		[]byte{bump},
	)
	require.NoError(t, err)
	assert.EqualValues(t, address, created)
}
