package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessInitialDepositInstructionArgsSize = (1 + // staking_bump
		1 + // scorevars_ship_bump
		1 + // escrow_auth_bump
		1 + // escrow_bump
		8) // ship_quantity
)

type ProcessInitialDepositInstructionArgs struct {
	StakingBump       uint8
	ScorevarsShipBump uint8
	EscrowAuthBump    uint8
	EscrowBump        uint8
	ShipQuantity      uint64
}

type ProcessInitialDepositInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	PlayerShipTokenAccount ed25519.PublicKey
	ShipEscrow             ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	ShipMint               ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
	Clock                  ed25519.PublicKey
	Rent                   ed25519.PublicKey
	SystemProgram          ed25519.PublicKey
}

var ProcessInitialDepositInstruction = anchor.DefineInstruction[ProcessInitialDepositInstructionArgs, ProcessInitialDepositInstructionAccounts](
	Program,
	"process_initial_deposit",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_ship_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_auth_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_bump", Type: anchor.U8},
		anchor.Field{Name: "ship_quantity", Type: anchor.U64},
	),
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "score_vars_ship_account", Writable: true},
	anchor.AccountRole{Name: "player_ship_token_account", Writable: true},
	anchor.AccountRole{Name: "ship_escrow", Writable: true},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "ship_mint"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
	anchor.AccountRole{Name: "rent"},
	anchor.AccountRole{Name: "system_program"},
)

func NewProcessInitialDepositInstruction(
	accounts *ProcessInitialDepositInstructionAccounts,
	args *ProcessInitialDepositInstructionArgs,
) (solana.Instruction, error) {
	return ProcessInitialDepositInstruction.Build(args, accounts)
}
