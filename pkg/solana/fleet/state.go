package fleet

import (
	"crypto/ed25519"

	"github.com/starforge-games/starforge-sdk/pkg/solana/anchor"
)

const (
	ScoreVarsSize = (anchor.DiscriminatorSize + // discriminator
		32 + // update_authority_master
		32 + // fuel_mint
		32 + // food_mint
		32 + // arms_mint
		1 + // treasury_bump
		1) // treasury_auth_bump

	ScoreVarsShipSize = (anchor.DiscriminatorSize + // discriminator
		32 + // ship_mint
		8 + // reward_rate_per_second
		4 + // fuel_max_reserve
		4 + // food_max_reserve
		4 + // arms_max_reserve
		4 + // toolkit_max_reserve
		4 + // milliseconds_to_burn_one_fuel
		4 + // milliseconds_to_burn_one_food
		4 + // milliseconds_to_burn_one_arms
		4) // milliseconds_to_burn_one_toolkit

	ShipStakingSize = (anchor.DiscriminatorSize + // discriminator
		32 + // owner
		1 + // faction_id
		32 + // ship_mint
		8 + // ship_quantity_in_escrow
		8 + // fuel_quantity_in_escrow
		8 + // food_quantity_in_escrow
		8 + // arms_quantity_in_escrow
		8 + // fuel_current_capacity
		8 + // food_current_capacity
		8 + // arms_current_capacity
		8 + // health_current_capacity
		8 + // staked_at_timestamp
		8 + // fueled_at_timestamp
		8 + // fed_at_timestamp
		8 + // armed_at_timestamp
		8 + // repaired_at_timestamp
		8 + // current_capacity_timestamp
		8 + // total_time_staked
		8 + // staked_time_paid
		8 + // pending_rewards
		8) // total_rewards_paid
)

// ScoreVars is the program's global configuration record.
type ScoreVars struct {
	UpdateAuthorityMaster ed25519.PublicKey
	FuelMint              ed25519.PublicKey
	FoodMint              ed25519.PublicKey
	ArmsMint              ed25519.PublicKey
	TreasuryBump          uint8
	TreasuryAuthBump      uint8
}

// ScoreVarsShip holds the staking parameters of one ship class.
type ScoreVarsShip struct {
	ShipMint                     ed25519.PublicKey
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

// ShipStaking tracks one player's escrowed fleet of a single ship class and
// its resource and reward bookkeeping.
type ShipStaking struct {
	Owner                    ed25519.PublicKey
	FactionID                uint8
	ShipMint                 ed25519.PublicKey
	ShipQuantityInEscrow     uint64
	FuelQuantityInEscrow     uint64
	FoodQuantityInEscrow     uint64
	ArmsQuantityInEscrow     uint64
	FuelCurrentCapacity      uint64
	FoodCurrentCapacity      uint64
	ArmsCurrentCapacity      uint64
	HealthCurrentCapacity    uint64
	StakedAtTimestamp        int64
	FueledAtTimestamp        int64
	FedAtTimestamp           int64
	ArmedAtTimestamp         int64
	RepairedAtTimestamp      int64
	CurrentCapacityTimestamp int64
	TotalTimeStaked          uint64
	StakedTimePaid           uint64
	PendingRewards           uint64
	TotalRewardsPaid         uint64
}

var ScoreVarsAccount = anchor.DefineAccount[ScoreVars](Program, "ScoreVars", anchor.MustLayout(
	anchor.Field{Name: "update_authority_master", Type: anchor.Key},
	anchor.Field{Name: "fuel_mint", Type: anchor.Key},
	anchor.Field{Name: "food_mint", Type: anchor.Key},
	anchor.Field{Name: "arms_mint", Type: anchor.Key},
	anchor.Field{Name: "treasury_bump", Type: anchor.U8},
	anchor.Field{Name: "treasury_auth_bump", Type: anchor.U8},
))

var ScoreVarsShipAccount = anchor.DefineAccount[ScoreVarsShip](Program, "ScoreVarsShip", anchor.MustLayout(
	anchor.Field{Name: "ship_mint", Type: anchor.Key},
	anchor.Field{Name: "reward_rate_per_second", Type: anchor.U64},
	anchor.Field{Name: "fuel_max_reserve", Type: anchor.U32},
	anchor.Field{Name: "food_max_reserve", Type: anchor.U32},
	anchor.Field{Name: "arms_max_reserve", Type: anchor.U32},
	anchor.Field{Name: "toolkit_max_reserve", Type: anchor.U32},
	anchor.Field{Name: "milliseconds_to_burn_one_fuel", Type: anchor.U32},
	anchor.Field{Name: "milliseconds_to_burn_one_food", Type: anchor.U32},
	anchor.Field{Name: "milliseconds_to_burn_one_arms", Type: anchor.U32},
	anchor.Field{Name: "milliseconds_to_burn_one_toolkit", Type: anchor.U32},
))

var ShipStakingAccount = anchor.DefineAccount[ShipStaking](Program, "ShipStaking", anchor.MustLayout(
	anchor.Field{Name: "owner", Type: anchor.Key},
	anchor.Field{Name: "faction_id", Type: anchor.U8},
	anchor.Field{Name: "ship_mint", Type: anchor.Key},
	anchor.Field{Name: "ship_quantity_in_escrow", Type: anchor.U64},
	anchor.Field{Name: "fuel_quantity_in_escrow", Type: anchor.U64},
	anchor.Field{Name: "food_quantity_in_escrow", Type: anchor.U64},
	anchor.Field{Name: "arms_quantity_in_escrow", Type: anchor.U64},
	anchor.Field{Name: "fuel_current_capacity", Type: anchor.U64},
	anchor.Field{Name: "food_current_capacity", Type: anchor.U64},
	anchor.Field{Name: "arms_current_capacity", Type: anchor.U64},
	anchor.Field{Name: "health_current_capacity", Type: anchor.U64},
	anchor.Field{Name: "staked_at_timestamp", Type: anchor.I64},
	anchor.Field{Name: "fueled_at_timestamp", Type: anchor.I64},
	anchor.Field{Name: "fed_at_timestamp", Type: anchor.I64},
	anchor.Field{Name: "armed_at_timestamp", Type: anchor.I64},
	anchor.Field{Name: "repaired_at_timestamp", Type: anchor.I64},
	anchor.Field{Name: "current_capacity_timestamp", Type: anchor.I64},
	anchor.Field{Name: "total_time_staked", Type: anchor.U64},
	anchor.Field{Name: "staked_time_paid", Type: anchor.U64},
	anchor.Field{Name: "pending_rewards", Type: anchor.U64},
	anchor.Field{Name: "total_rewards_paid", Type: anchor.U64},
))
