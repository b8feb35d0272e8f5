package token

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/testutil"
)

type stubClient struct {
	solana.Client

	accounts map[string]solana.AccountInfo
}

func newStubClient() *stubClient {
	return &stubClient{
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

func TestClientGetAccount(t *testing.T) {
	sc := newStubClient()

	keys := testutil.GenerateSolanaKeys(t, 3)
	mint, owner, tokenAccount := keys[0], keys[1], keys[2]

	client := NewClient(sc, mint)
	assert.Equal(t, mint, client.Mint())

	_, err := client.GetAccount(tokenAccount, solana.CommitmentFinalized)
	assert.Equal(t, ErrAccountNotFound, err)

	expected := Account{
		Mint:   mint,
		Owner:  owner,
		Amount: 123456,
		State:  AccountStateInitialized,
	}
	sc.accounts[string(tokenAccount)] = solana.AccountInfo{
		Data:  expected.Marshal(),
		Owner: ProgramKey,
	}

	actual, err := client.GetAccount(tokenAccount, solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.Equal(t, expected, *actual)

	balance, err := client.GetBalance(tokenAccount, solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.EqualValues(t, 123456, balance)
}

func TestClientGetAccountInvalid(t *testing.T) {
	sc := newStubClient()

	keys := testutil.GenerateSolanaKeys(t, 4)
	mint, owner, tokenAccount, otherMint := keys[0], keys[1], keys[2], keys[3]

	client := NewClient(sc, mint)

	account := Account{
		Mint:   mint,
		Owner:  owner,
		Amount: 10,
		State:  AccountStateInitialized,
	}

	// Not owned by the token program.
	sc.accounts[string(tokenAccount)] = solana.AccountInfo{
		Data:  account.Marshal(),
		Owner: owner,
	}
	_, err := client.GetAccount(tokenAccount, solana.CommitmentFinalized)
	assert.Equal(t, ErrInvalidTokenAccount, err)

	// Truncated account data.
	sc.accounts[string(tokenAccount)] = solana.AccountInfo{
		Data:  account.Marshal()[:AccountSize-1],
		Owner: ProgramKey,
	}
	_, err = client.GetAccount(tokenAccount, solana.CommitmentFinalized)
	assert.Equal(t, ErrInvalidTokenAccount, err)

	// Account of another mint.
	account.Mint = otherMint
	sc.accounts[string(tokenAccount)] = solana.AccountInfo{
		Data:  account.Marshal(),
		Owner: ProgramKey,
	}
	_, err = client.GetAccount(tokenAccount, solana.CommitmentFinalized)
	assert.Equal(t, ErrInvalidTokenAccount, err)

	_, err = client.GetBalance(tokenAccount, solana.CommitmentFinalized)
	assert.Equal(t, ErrInvalidTokenAccount, err)
}
