package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessInitializeInstructionArgsSize = 1 // scorevars_bump
)

type ProcessInitializeInstructionArgs struct {
	ScorevarsBump uint8
}

type ProcessInitializeInstructionAccounts struct {
	UpdateAuthorityMaster ed25519.PublicKey
	ScoreVarsAccount      ed25519.PublicKey
	SystemProgram         ed25519.PublicKey
}

var ProcessInitializeInstruction = anchor.DefineInstruction[ProcessInitializeInstructionArgs, ProcessInitializeInstructionAccounts](
	Program,
	"process_initialize",
	anchor.MustLayout(
		anchor.Field{Name: "scorevars_bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "update_authority_master", Signer: true, Writable: true},
	anchor.AccountRole{Name: "score_vars_account", Writable: true},
	anchor.AccountRole{Name: "system_program"},
)

func NewProcessInitializeInstruction(
	accounts *ProcessInitializeInstructionAccounts,
	args *ProcessInitializeInstructionArgs,
) (solana.Instruction, error) {
	return ProcessInitializeInstruction.Build(args, accounts)
}
