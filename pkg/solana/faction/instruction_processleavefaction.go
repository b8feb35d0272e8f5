package faction

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessLeaveFactionInstructionArgsSize = 1 // bump
)

type ProcessLeaveFactionInstructionArgs struct {
	Bump uint8
}

type ProcessLeaveFactionInstructionAccounts struct {
	PlayerFactionAccount ed25519.PublicKey
	PlayerAccount        ed25519.PublicKey
	Clock                ed25519.PublicKey
}

var ProcessLeaveFactionInstruction = anchor.DefineInstruction[ProcessLeaveFactionInstructionArgs, ProcessLeaveFactionInstructionAccounts](
	Program,
	"process_leave_faction",
	anchor.MustLayout(
		anchor.Field{Name: "bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_faction_account", Writable: true},
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessLeaveFactionInstruction(
	accounts *ProcessLeaveFactionInstructionAccounts,
	args *ProcessLeaveFactionInstructionArgs,
) (solana.Instruction, error) {
	return ProcessLeaveFactionInstruction.Build(args, accounts)
}
