package token

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidTokenAccount = errors.New("invalid token account")
)

// Client provides utilities for accessing token accounts of a mint.
type Client struct {
	sc   solana.Client
	mint ed25519.PublicKey
}

func NewClient(sc solana.Client, mint ed25519.PublicKey) *Client {
	return &Client{
		sc:   sc,
		mint: mint,
	}
}

func (c *Client) Mint() ed25519.PublicKey {
	return c.mint
}

// GetAccount returns the token account for the account ID, if it exists and
// is a valid token account for the client's mint.
func (c *Client) GetAccount(accountID ed25519.PublicKey, commitment solana.Commitment) (*Account, error) {
	accountInfo, err := c.sc.GetAccountInfo(accountID, commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get account info")
	}

	if !bytes.Equal(accountInfo.Owner, ProgramKey) {
		return nil, ErrInvalidTokenAccount
	}

	var account Account
	if !account.Unmarshal(accountInfo.Data) {
		return nil, ErrInvalidTokenAccount
	}

	if !bytes.Equal(account.Mint, c.mint) {
		return nil, ErrInvalidTokenAccount
	}

	return &account, nil
}

// GetBalance returns the balance held by the token account.
func (c *Client) GetBalance(accountID ed25519.PublicKey, commitment solana.Commitment) (uint64, error) {
	account, err := c.GetAccount(accountID, commitment)
	if err != nil {
		return 0, err
	}

	return account.Amount, nil
}
