package faction

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerFactionData_Golden(t *testing.T) {
	require.Equal(t, PlayerFactionDataSize, PlayerFactionDataAccount.Size())

	owner := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range owner {
		owner[i] = byte(i)
	}

	record := &PlayerFactionData{
		Owner:               owner,
		EnlistedAtTimestamp: 1000,
		FactionID:           3,
		Bump:                7,
	}

	data, err := PlayerFactionDataAccount.Encode(record)
	require.NoError(t, err)

	expected, err := hex.DecodeString(
		"2f2cff0f674d8bf7" + // discriminator
			"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" + // owner
			"e803000000000000" + // enlisted_at_timestamp
			"03" + // faction_id
			"07" + // bump
			strings.Repeat("00", 40), // padding
	)
	require.NoError(t, err)
	assert.Equal(t, expected, data)

	decoded, err := PlayerFactionDataAccount.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestPlayerFactionData_Identify(t *testing.T) {
	record := &PlayerFactionData{
		Owner:     make(ed25519.PublicKey, ed25519.PublicKeySize),
		FactionID: uint8(FactionMUD),
		Bump:      254,
	}

	data, err := PlayerFactionDataAccount.Encode(record)
	require.NoError(t, err)

	name, ok := Program.Identify(data)
	require.True(t, ok)
	assert.Equal(t, "PlayerFactionData", name)
}

func TestFactionID_String(t *testing.T) {
	assert.Equal(t, "mud", FactionMUD.String())
	assert.Equal(t, "oni", FactionONI.String())
	assert.Equal(t, "ustur", FactionUstur.String())
	assert.Equal(t, "unknown", FactionID(3).String())
}
