package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessRearmInstructionArgsSize = (1 + // staking_bump
		1 + // scorevars_bump
		1 + // escrow_auth_bump
		1 + // escrow_bump
		8) // quantity
)

type ProcessRearmInstructionArgs struct {
	StakingBump    uint8
	ScorevarsBump  uint8
	EscrowAuthBump uint8
	EscrowBump     uint8
	Quantity       uint64
}

type ProcessRearmInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	ScoreVarsAccount       ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	ArmsTokenAccountSource ed25519.PublicKey
	ArmsTokenAccountEscrow ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
	Clock                  ed25519.PublicKey
}

var ProcessRearmInstruction = anchor.DefineInstruction[ProcessRearmInstructionArgs, ProcessRearmInstructionAccounts](
	Program,
	"process_rearm",
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
	anchor.AccountRole{Name: "arms_token_account_source", Writable: true},
	anchor.AccountRole{Name: "arms_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessRearmInstruction(
	accounts *ProcessRearmInstructionAccounts,
	args *ProcessRearmInstructionArgs,
) (solana.Instruction, error) {
	return ProcessRearmInstruction.Build(args, accounts)
}
