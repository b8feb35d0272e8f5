package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessRefeedInstructionArgsSize = (1 + // staking_bump
		1 + // scorevars_bump
		1 + // escrow_auth_bump
		1 + // escrow_bump
		8) // quantity
)

type ProcessRefeedInstructionArgs struct {
	StakingBump    uint8
	ScorevarsBump  uint8
	EscrowAuthBump uint8
	EscrowBump     uint8
	Quantity       uint64
}

type ProcessRefeedInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	ScoreVarsAccount       ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	FoodTokenAccountSource ed25519.PublicKey
	FoodTokenAccountEscrow ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
	Clock                  ed25519.PublicKey
}

var ProcessRefeedInstruction = anchor.DefineInstruction[ProcessRefeedInstructionArgs, ProcessRefeedInstructionAccounts](
	Program,
	"process_refeed",
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
	anchor.AccountRole{Name: "food_token_account_source", Writable: true},
	anchor.AccountRole{Name: "food_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessRefeedInstruction(
	accounts *ProcessRefeedInstructionAccounts,
	args *ProcessRefeedInstructionArgs,
) (solana.Instruction, error) {
	return ProcessRefeedInstruction.Build(args, accounts)
}
