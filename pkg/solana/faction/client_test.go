package faction

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/testutil"
)

// stubClient is an in memory account store. Methods outside the read paths
// under test are intentionally left to the embedded interface.
type stubClient struct {
	solana.Client

	slot     uint64
	accounts map[string]solana.AccountInfo
}

func newStubClient() *stubClient {
	return &stubClient{
		slot:     64,
		accounts: make(map[string]solana.AccountInfo),
	}
}

func (c *stubClient) GetAccountInfo(account ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	info, ok := c.accounts[string(account)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}

	return info, nil
}

func (c *stubClient) GetMultipleAccounts(accounts []ed25519.PublicKey, _ solana.Commitment) ([]*solana.AccountInfo, error) {
	infos := make([]*solana.AccountInfo, len(accounts))
	for i, account := range accounts {
		if info, ok := c.accounts[string(account)]; ok {
			cloned := info
			infos[i] = &cloned
		}
	}

	return infos, nil
}

func (c *stubClient) GetFilteredProgramAccounts(program ed25519.PublicKey, offset uint, filterValue []byte) ([]string, uint64, error) {
	var keys []string
	for address, info := range c.accounts {
		if !bytes.Equal(info.Owner, program) {
			continue
		}
		if len(info.Data) < int(offset)+len(filterValue) {
			continue
		}
		if !bytes.Equal(info.Data[offset:int(offset)+len(filterValue)], filterValue) {
			continue
		}

		keys = append(keys, base58.Encode([]byte(address)))
	}

	return keys, c.slot, nil
}

func (c *stubClient) enlist(t *testing.T, player ed25519.PublicKey, factionID FactionID, enlistedAt int64) *PlayerFactionData {
	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	require.NoError(t, err)

	record := &PlayerFactionData{
		Owner:               player,
		EnlistedAtTimestamp: enlistedAt,
		FactionID:           uint8(factionID),
		Bump:                bump,
	}
	data, err := PlayerFactionDataAccount.Encode(record)
	require.NoError(t, err)

	c.accounts[string(address)] = solana.AccountInfo{
		Data:  data,
		Owner: PROGRAM_ID,
	}
	return record
}

func TestClient_GetPlayerFactionData(t *testing.T) {
	sc := newStubClient()
	client := NewClient(sc)

	keys := testutil.GenerateSolanaKeys(t, 2)
	expected := sc.enlist(t, keys[0], FactionMUD, 1640995200)

	actual, err := client.GetPlayerFactionData(keys[0], solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	_, err = client.GetPlayerFactionData(keys[1], solana.CommitmentFinalized)
	assert.Equal(t, ErrEnlistmentNotFound, err)
}

func TestClient_GetMultiplePlayerFactionData(t *testing.T) {
	sc := newStubClient()
	client := NewClient(sc)

	keys := testutil.GenerateSolanaKeys(t, 3)
	first := sc.enlist(t, keys[0], FactionMUD, 100)
	third := sc.enlist(t, keys[2], FactionONI, 300)

	records, err := client.GetMultiplePlayerFactionData(keys, solana.CommitmentFinalized)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, first, records[0])
	assert.Nil(t, records[1])
	assert.Equal(t, third, records[2])
}

func TestClient_GetAllPlayerFactionData(t *testing.T) {
	sc := newStubClient()
	client := NewClient(sc)

	records, err := client.GetAllPlayerFactionData(solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.Empty(t, records)

	keys := testutil.GenerateSolanaKeys(t, 3)
	expected := []*PlayerFactionData{
		sc.enlist(t, keys[0], FactionMUD, 100),
		sc.enlist(t, keys[1], FactionONI, 200),
		sc.enlist(t, keys[2], FactionUstur, 300),
	}

	records, err = client.GetAllPlayerFactionData(solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.ElementsMatch(t, expected, records)
}

func TestClient_EnlistPlayer(t *testing.T) {
	client := NewClient(newStubClient())

	player := testutil.GenerateSolanaKeys(t, 1)[0]
	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	require.NoError(t, err)

	instruction, err := client.EnlistPlayer(player, FactionUstur)
	require.NoError(t, err)

	assert.Equal(t, PROGRAM_ID, instruction.Program)
	require.Len(t, instruction.Accounts, 4)
	assert.EqualValues(t, address, instruction.Accounts[0].PublicKey)
	assert.EqualValues(t, player, instruction.Accounts[1].PublicKey)

	args, err := ProcessEnlistPlayerInstruction.Decode(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, bump, args.Bump)
	assert.Equal(t, uint8(FactionUstur), args.FactionID)
}

func TestClient_LeaveFaction(t *testing.T) {
	client := NewClient(newStubClient())

	player := testutil.GenerateSolanaKeys(t, 1)[0]
	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	require.NoError(t, err)

	instruction, err := client.LeaveFaction(player)
	require.NoError(t, err)

	assert.Equal(t, PROGRAM_ID, instruction.Program)
	require.Len(t, instruction.Accounts, 3)
	assert.EqualValues(t, address, instruction.Accounts[0].PublicKey)
	assert.EqualValues(t, player, instruction.Accounts[1].PublicKey)

	args, err := ProcessLeaveFactionInstruction.Decode(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, bump, args.Bump)
}
