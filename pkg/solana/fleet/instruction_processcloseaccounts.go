package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessCloseAccountsInstructionArgsSize = (1 + // staking_bump
		1) // escrow_auth_bump
)

type ProcessCloseAccountsInstructionArgs struct {
	StakingBump    uint8
	EscrowAuthBump uint8
}

type ProcessCloseAccountsInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	ShipTokenAccountEscrow ed25519.PublicKey
	FuelTokenAccountEscrow ed25519.PublicKey
	FoodTokenAccountEscrow ed25519.PublicKey
	ArmsTokenAccountEscrow ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
}

var ProcessCloseAccountsInstruction = anchor.DefineInstruction[ProcessCloseAccountsInstructionArgs, ProcessCloseAccountsInstructionAccounts](
	Program,
	"process_close_accounts",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_auth_bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "ship_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "fuel_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "food_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "arms_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "token_program"},
)

func NewProcessCloseAccountsInstruction(
	accounts *ProcessCloseAccountsInstructionAccounts,
	args *ProcessCloseAccountsInstructionArgs,
) (solana.Instruction, error) {
	return ProcessCloseAccountsInstruction.Build(args, accounts)
}
