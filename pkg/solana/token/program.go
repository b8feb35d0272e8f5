package token

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// ProgramKey is the address of the SPL token program.
var ProgramKey = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))

const (
	// AccountSize is the size of an SPL token account.
	//
	// Reference: https://github.com/solana-labs/solana-program-library/blob/master/token/program/src/state.rs
	AccountSize = 165

	optionSize = 4
)

type AccountState byte

const (
	// AccountStateUninitialized is an account that has not yet been initialized.
	AccountStateUninitialized AccountState = iota
	// AccountStateInitialized is an account that holds tokens and may transact.
	AccountStateInitialized
	// AccountStateFrozen is an account that has been frozen by the mint's freeze authority.
	AccountStateFrozen
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
