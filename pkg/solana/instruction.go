package solana

import (
	"crypto/ed25519"
)

// AccountMeta describes how an instruction touches one account: whether
// the account must sign the transaction and whether it may be written to.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single program invocation: the program to run, the
// accounts it may access, and its input data.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction assembles an Instruction from its parts.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}
