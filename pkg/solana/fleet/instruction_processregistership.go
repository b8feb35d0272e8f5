package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ProcessRegisterShipInstructionArgsSize = (1 + // scorevars_ship_bump
		8 + // reward_rate_per_second
		4 + // fuel_max_reserve
		4 + // food_max_reserve
		4 + // arms_max_reserve
		4 + // toolkit_max_reserve
		4 + // milliseconds_to_burn_one_fuel
		4 + // milliseconds_to_burn_one_food
		4 + // milliseconds_to_burn_one_arms
		4) // milliseconds_to_burn_one_toolkit
)

type ProcessRegisterShipInstructionArgs struct {
	ScorevarsShipBump            uint8
	RewardRatePerSecond          uint64
	FuelMaxReserve               uint32
	FoodMaxReserve               uint32
	ArmsMaxReserve               uint32
	ToolkitMaxReserve            uint32
	MillisecondsToBurnOneFuel    uint32
	MillisecondsToBurnOneFood    uint32
	MillisecondsToBurnOneArms    uint32
	MillisecondsToBurnOneToolkit uint32
}

type ProcessRegisterShipInstructionAccounts struct {
	UpdateAuthorityAccount ed25519.PublicKey
	ScoreVarsAccount       ed25519.PublicKey
	ScoreVarsShipAccount   ed25519.PublicKey
	ShipMint               ed25519.PublicKey
	SystemProgram          ed25519.PublicKey
}

var ProcessRegisterShipInstruction = anchor.DefineInstruction[ProcessRegisterShipInstructionArgs, ProcessRegisterShipInstructionAccounts](
	Program,
	"process_register_ship",
	anchor.MustLayout(
		anchor.Field{Name: "scorevars_ship_bump", Type: anchor.U8},
		anchor.Field{Name: "reward_rate_per_second", Type: anchor.U64},
		anchor.Field{Name: "fuel_max_reserve", Type: anchor.U32},
		anchor.Field{Name: "food_max_reserve", Type: anchor.U32},
		anchor.Field{Name: "arms_max_reserve", Type: anchor.U32},
		anchor.Field{Name: "toolkit_max_reserve", Type: anchor.U32},
		anchor.Field{Name: "milliseconds_to_burn_one_fuel", Type: anchor.U32},
		anchor.Field{Name: "milliseconds_to_burn_one_food", Type: anchor.U32},
		anchor.Field{Name: "milliseconds_to_burn_one_arms", Type: anchor.U32},
		anchor.Field{Name: "milliseconds_to_burn_one_toolkit", Type: anchor.U32},
	),
	anchor.AccountRole{Name: "update_authority_account", Signer: true, Writable: true},
	anchor.AccountRole{Name: "score_vars_account"},
	anchor.AccountRole{Name: "score_vars_ship_account", Writable: true},
	anchor.AccountRole{Name: "ship_mint"},
	anchor.AccountRole{Name: "system_program"},
)

func NewProcessRegisterShipInstruction(
	accounts *ProcessRegisterShipInstructionAccounts,
	args *ProcessRegisterShipInstructionArgs,
) (solana.Instruction, error) {
	return ProcessRegisterShipInstruction.Build(args, accounts)
}
