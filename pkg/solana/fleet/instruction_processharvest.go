package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessHarvestInstructionArgsSize = (1 + // staking_bump
		1) // scorevars_bump
)

type ProcessHarvestInstructionArgs struct {
	StakingBump   uint8
	ScorevarsBump uint8
}

type ProcessHarvestInstructionAccounts struct {
	PlayerAccount            ed25519.PublicKey
	ShipStakingAccount       ed25519.PublicKey
	TreasuryTokenAccount     ed25519.PublicKey
	PlayerAtlasTokenAccount  ed25519.PublicKey
	TreasuryAuthorityAccount ed25519.PublicKey
	ScoreVarsAccount         ed25519.PublicKey
	ShipMint                 ed25519.PublicKey
	TokenProgram             ed25519.PublicKey
	Clock                    ed25519.PublicKey
}

var ProcessHarvestInstruction = anchor.DefineInstruction[ProcessHarvestInstructionArgs, ProcessHarvestInstructionAccounts](
	Program,
	"process_harvest",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "treasury_token_account", Writable: true},
	anchor.AccountRole{Name: "player_atlas_token_account", Writable: true},
	anchor.AccountRole{Name: "treasury_authority_account"},
	anchor.AccountRole{Name: "score_vars_account"},
	anchor.AccountRole{Name: "ship_mint"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessHarvestInstruction(
	accounts *ProcessHarvestInstructionAccounts,
	args *ProcessHarvestInstructionArgs,
) (solana.Instruction, error) {
	return ProcessHarvestInstruction.Build(args, accounts)
}
