package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessWithdrawFoodInstructionArgsSize = (1 + // staking_bump
		1 + // scorevars_bump
		1 + // scorevars_ship_bump
		1 + // escrow_auth_bump
		1) // escrow_bump
)

type ProcessWithdrawFoodInstructionArgs struct {
	StakingBump       uint8
	ScorevarsBump     uint8
	ScorevarsShipBump uint8
	EscrowAuthBump    uint8
	EscrowBump        uint8
}

type ProcessWithdrawFoodInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	ScoreVarsAccount       ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	FoodTokenAccountEscrow ed25519.PublicKey
	FoodTokenAccountReturn ed25519.PublicKey
	FoodMint               ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
	Clock                  ed25519.PublicKey
	ShipMint               ed25519.PublicKey
}

var ProcessWithdrawFoodInstruction = anchor.DefineInstruction[ProcessWithdrawFoodInstructionArgs, ProcessWithdrawFoodInstructionAccounts](
	Program,
	"process_withdraw_food",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_ship_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_auth_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_account", Signer: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "score_vars_account"},
	anchor.AccountRole{Name: "score_vars_ship_account"},
	anchor.AccountRole{Name: "food_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "food_token_account_return", Writable: true},
	anchor.AccountRole{Name: "food_mint", Writable: true},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
	anchor.AccountRole{Name: "ship_mint"},
)

func NewProcessWithdrawFoodInstruction(
	accounts *ProcessWithdrawFoodInstructionAccounts,
	args *ProcessWithdrawFoodInstructionArgs,
) (solana.Instruction, error) {
	return ProcessWithdrawFoodInstruction.Build(args, accounts)
}
