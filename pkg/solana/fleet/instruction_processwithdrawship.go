package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessWithdrawShipInstructionArgsSize = (1 + // staking_bump
		1 + // scorevars_bump
		1 + // scorevars_ship_bump
		1 + // escrow_auth_bump
		1) // escrow_bump
)

type ProcessWithdrawShipInstructionArgs struct {
	StakingBump       uint8
	ScorevarsBump     uint8
	ScorevarsShipBump uint8
	EscrowAuthBump    uint8
	EscrowBump        uint8
}

type ProcessWithdrawShipInstructionAccounts struct {
	PlayerAccount          ed25519.PublicKey
	ShipStakingAccount     ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	ShipTokenAccountEscrow ed25519.PublicKey
	ShipTokenAccountReturn ed25519.PublicKey
	ShipMint               ed25519.PublicKey
	EscrowAuthority        ed25519.PublicKey
	TokenProgram           ed25519.PublicKey
	Clock                  ed25519.PublicKey
}

var ProcessWithdrawShipInstruction = anchor.DefineInstruction[ProcessWithdrawShipInstructionArgs, ProcessWithdrawShipInstructionAccounts](
	Program,
	"process_withdraw_ship",
	anchor.MustLayout(
		anchor.Field{Name: "staking_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_bump", Type: anchor.U8},
		anchor.Field{Name: "scorevars_ship_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_auth_bump", Type: anchor.U8},
		anchor.Field{Name: "escrow_bump", Type: anchor.U8},
	),
	anchor.AccountRole{Name: "player_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "ship_staking_account", Writable: true},
	anchor.AccountRole{Name: "score_vars_ship_account"},
	anchor.AccountRole{Name: "ship_token_account_escrow", Writable: true},
	anchor.AccountRole{Name: "ship_token_account_return", Writable: true},
	anchor.AccountRole{Name: "ship_mint"},
	anchor.AccountRole{Name: "escrow_authority"},
	anchor.AccountRole{Name: "token_program"},
	anchor.AccountRole{Name: "clock"},
)

func NewProcessWithdrawShipInstruction(
	accounts *ProcessWithdrawShipInstructionAccounts,
	args *ProcessWithdrawShipInstructionArgs,
) (solana.Instruction, error) {
	return ProcessWithdrawShipInstruction.Build(args, accounts)
}
