package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessSettleInstructionArgsSize = (1 + // staking_bump
		1) // scorevars_bump
)

type ProcessSettleInstructionArgs struct {
	StakingBump   uint8
	ScorevarsBump uint8
}

type ProcessSettleInstructionAccounts struct {
	PlayerAccount      ed25519.PublicKey
	ShipStakingAccount ed25519.PublicKey
	ScoreVarsAccount   ed25519.PublicKey
	ShipMint           ed25519.PublicKey
	Clock              ed25519.PublicKey
}

var ProcessSettleInstruction = anchor.DefineInstruction[ProcessSettleInstructionArgs, ProcessSettleInstructionAccounts](
	Program,
	"process_settle",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_account", Signer: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "score_vars_account"},
	anchor.AccountRole{Name: "ship_mint"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessSettleInstruction(
	accounts *ProcessSettleInstructionAccounts,
	args *ProcessSettleInstructionArgs,
) (solana.Instruction, error) {
	return ProcessSettleInstruction.Build(args, accounts)
}
