package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessRefuelInstructionArgsSize = (1 + // staking_bump
		1 + // scorevars_bump
		1 + // escrow_auth_bump
		1 + // escrow_bump
		8) // quantity
)

type ProcessRefuelInstructionArgs struct {
	StakingBump    uint8
	ScorevarsBump  uint8
	EscrowAuthBump uint8
	EscrowBump     uint8
	Quantity       uint64
}

type ProcessRefuelInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	ScoreVarsAccount       ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	FuelTokenAccountSource ed25519.PublicKey
	FuelTokenAccountEscrow ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
	Clock                  ed25519.PublicKey
}

var ProcessRefuelInstruction = anchor.DefineInstruction[ProcessRefuelInstructionArgs, ProcessRefuelInstructionAccounts](
	Program,
	"process_refuel",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_auth_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_bump", Type: anchor.U8},
		anchor.Field{Name: "quantity", Type: anchor.U64},
	),
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "score_vars_account"},
	anchor.AccountRole{Name: "score_vars_ship_account"},
	anchor.AccountRole{Name: "fuel_token_account_source", Writable: true},
	anchor.AccountRole{Name: "fuel_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessRefuelInstruction(
	accounts *ProcessRefuelInstructionAccounts,
	args *ProcessRefuelInstructionArgs,
) (solana.Instruction, error) {
	return ProcessRefuelInstruction.Build(args, accounts)
}
