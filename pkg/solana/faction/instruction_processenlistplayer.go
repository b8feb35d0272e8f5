package faction

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessEnlistPlayerInstructionArgsSize = (1 + // bump
		1) // faction_id
)

type ProcessEnlistPlayerInstructionArgs struct {
	Bump      uint8
	FactionID uint8
}

type ProcessEnlistPlayerInstructionAccounts struct {
	PlayerFactionAccount ed25519.PublicKey
	PlayerAccount        ed25519.PublicKey
	SystemProgram        ed25519.PublicKey
	Clock                ed25519.PublicKey
}

var ProcessEnlistPlayerInstruction = anchor.DefineInstruction[ProcessEnlistPlayerInstructionArgs, ProcessEnlistPlayerInstructionAccounts](
	Program,
	"process_enlist_player",
	anchor.MustLayout(
		anchor.Field{Name: "bump", Type: anchor.U8},
		anchor.Field{Name: "faction_id", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_faction_account", Writable: true},
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "system_program"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessEnlistPlayerInstruction(
	accounts *ProcessEnlistPlayerInstructionAccounts,
	args *ProcessEnlistPlayerInstructionArgs,
) (solana.Instruction, error) {
	return ProcessEnlistPlayerInstruction.Build(args, accounts)
}
