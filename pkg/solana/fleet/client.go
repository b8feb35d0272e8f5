package fleet

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
	"github.com/starforge-games/starforge-sdk/pkg/solana/token"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// Client provides typed access to the ship staking program.
type Client struct {
	sc solana.Client
}

func NewClient(sc solana.Client) *Client {
	return &Client{
		sc: sc,
	}
}

// GetScoreVars returns the program's global configuration record, or
// ErrAccountNotFound if the program has not been initialized.
func (c *Client) GetScoreVars(commitment solana.Commitment) (*ScoreVars, error) {
	address, _, err := GetScoreVarsAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive scorevars address")
	}

	record, err := ScoreVarsAccount.Fetch(c.sc, address, commitment)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAccountNotFound
	}

	return record, nil
}

// GetScoreVarsShip returns the staking parameters of a ship class, or
// ErrAccountNotFound if the class has not been registered.
func (c *Client) GetScoreVarsShip(shipMint ed25519.PublicKey, commitment solana.Commitment) (*ScoreVarsShip, error) {
	address, _, err := GetScoreVarsShipAddress(&GetScoreVarsShipAddressArgs{
		ShipMint: shipMint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive scorevars ship address")
	}

	record, err := ScoreVarsShipAccount.Fetch(c.sc, address, commitment)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAccountNotFound
	}

	return record, nil
}

// GetShipStaking returns a player's staking state for a ship class, or
// ErrAccountNotFound if the player has nothing staked.
func (c *Client) GetShipStaking(player, shipMint ed25519.PublicKey, commitment solana.Commitment) (*ShipStaking, error) {
	address, _, err := GetShipStakingAddress(&GetShipStakingAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive ship staking address")
	}

	record, err := ShipStakingAccount.Fetch(c.sc, address, commitment)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAccountNotFound
	}

	return record, nil
}

// GetAllShipStakingAccounts returns every staking record the program owns.
func (c *Client) GetAllShipStakingAccounts(commitment solana.Commitment) ([]*ShipStaking, error) {
	addresses, _, err := ShipStakingAccount.FindProgramAccounts(c.sc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ship staking accounts")
	}
	if len(addresses) == 0 {
		return nil, nil
	}

	records, err := ShipStakingAccount.FetchMultiple(c.sc, addresses, commitment)
	if err != nil {
		return nil, err
	}

	// Accounts can be closed between the listing and the fetch.
	result := make([]*ShipStaking, 0, len(records))
	for _, record := range records {
		if record != nil {
			result = append(result, record)
		}
	}
	return result, nil
}

// GetResourceEscrowBalance returns the quantity of a resource held in a
// ship's escrow. A missing escrow account reads as a zero balance.
func (c *Client) GetResourceEscrowBalance(player, shipMint, resourceMint ed25519.PublicKey, commitment solana.Commitment) (uint64, error) {
	escrow, _, err := GetResourceEscrowAddress(&GetResourceEscrowAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
		ResourceMint:  resourceMint,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to derive resource escrow address")
	}

	balance, err := token.NewClient(c.sc, resourceMint).GetBalance(escrow, commitment)
	if err == token.ErrAccountNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return balance, nil
}

// GetShipEscrowBalance returns the number of ships held in a player's ship
// escrow. A missing escrow account reads as a zero balance.
func (c *Client) GetShipEscrowBalance(player, shipMint ed25519.PublicKey, commitment solana.Commitment) (uint64, error) {
	escrow, _, err := GetShipEscrowAddress(&GetShipEscrowAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to derive ship escrow address")
	}

	balance, err := token.NewClient(c.sc, shipMint).GetBalance(escrow, commitment)
	if err == token.ErrAccountNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return balance, nil
}

type withdrawAddresses struct {
	shipStaking       ed25519.PublicKey
	scoreVars         ed25519.PublicKey
	scoreVarsShip     ed25519.PublicKey
	resourceEscrow    ed25519.PublicKey
	escrowAuthority   ed25519.PublicKey
	stakingBump       uint8
	scorevarsBump     uint8
	scorevarsShipBump uint8
	escrowAuthBump    uint8
	escrowBump        uint8
}

func deriveWithdrawAddresses(player, shipMint, resourceMint ed25519.PublicKey) (*withdrawAddresses, error) {
	var derived withdrawAddresses
	var err error

	derived.shipStaking, derived.stakingBump, err = GetShipStakingAddress(&GetShipStakingAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive ship staking address")
	}

	derived.scoreVars, derived.scorevarsBump, err = GetScoreVarsAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive scorevars address")
	}

	derived.scoreVarsShip, derived.scorevarsShipBump, err = GetScoreVarsShipAddress(&GetScoreVarsShipAddressArgs{
		ShipMint: shipMint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive scorevars ship address")
	}

	derived.escrowAuthority, derived.escrowAuthBump, err = GetEscrowAuthorityAddress(&GetEscrowAuthorityAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive escrow authority address")
	}

	derived.resourceEscrow, derived.escrowBump, err = GetResourceEscrowAddress(&GetResourceEscrowAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
		ResourceMint:  resourceMint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive resource escrow address")
	}

	return &derived, nil
}

// WithdrawFuel builds the instruction that returns a ship's escrowed fuel to
// the given token account. The fuel mint comes from the program's global
// configuration.
func (c *Client) WithdrawFuel(player, shipMint, fuelReturnAccount ed25519.PublicKey, commitment solana.Commitment) (solana.Instruction, error) {
	scoreVars, err := c.GetScoreVars(commitment)
	if err != nil {
		return solana.Instruction{}, err
	}

	derived, err := deriveWithdrawAddresses(player, shipMint, scoreVars.FuelMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return NewProcessWithdrawFuelInstruction(
		&ProcessWithdrawFuelInstructionAccounts{
			PlayerAccount:          player,
			ShipStakingAccount:     derived.shipStaking,
			ScoreVarsAccount:       derived.scoreVars,
			ScoreVarsShipAccount:   derived.scoreVarsShip,
			FuelTokenAccountEscrow: derived.resourceEscrow,
			FuelTokenAccountReturn: fuelReturnAccount,
			FuelMint:               scoreVars.FuelMint,
			EscrowAuthority:        derived.escrowAuthority,
			TokenProgram:           SPL_TOKEN_PROGRAM_ID,
			Clock:                  SYSVAR_CLOCK_PUBKEY,
			ShipMint:               shipMint,
		},
		&ProcessWithdrawFuelInstructionArgs{
			StakingBump:       derived.stakingBump,
			ScorevarsBump:     derived.scorevarsBump,
			ScorevarsShipBump: derived.scorevarsShipBump,
			EscrowAuthBump:    derived.escrowAuthBump,
			EscrowBump:        derived.escrowBump,
		},
	)
}

// WithdrawFood builds the instruction that returns a ship's escrowed food to
// the given token account.
func (c *Client) WithdrawFood(player, shipMint, foodReturnAccount ed25519.PublicKey, commitment solana.Commitment) (solana.Instruction, error) {
	scoreVars, err := c.GetScoreVars(commitment)
	if err != nil {
		return solana.Instruction{}, err
	}

	derived, err := deriveWithdrawAddresses(player, shipMint, scoreVars.FoodMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return NewProcessWithdrawFoodInstruction(
		&ProcessWithdrawFoodInstructionAccounts{
			PlayerAccount:          player,
			ShipStakingAccount:     derived.shipStaking,
			ScoreVarsAccount:       derived.scoreVars,
			ScoreVarsShipAccount:   derived.scoreVarsShip,
			FoodTokenAccountEscrow: derived.resourceEscrow,
			FoodTokenAccountReturn: foodReturnAccount,
			FoodMint:               scoreVars.FoodMint,
			EscrowAuthority:        derived.escrowAuthority,
			TokenProgram:           SPL_TOKEN_PROGRAM_ID,
			Clock:                  SYSVAR_CLOCK_PUBKEY,
			ShipMint:               shipMint,
		},
		&ProcessWithdrawFoodInstructionArgs{
			StakingBump:       derived.stakingBump,
			ScorevarsBump:     derived.scorevarsBump,
			ScorevarsShipBump: derived.scorevarsShipBump,
			EscrowAuthBump:    derived.escrowAuthBump,
			EscrowBump:        derived.escrowBump,
		},
	)
}

// WithdrawArms builds the instruction that returns a ship's escrowed arms to
// the given token account.
func (c *Client) WithdrawArms(player, shipMint, armsReturnAccount ed25519.PublicKey, commitment solana.Commitment) (solana.Instruction, error) {
	scoreVars, err := c.GetScoreVars(commitment)
	if err != nil {
		return solana.Instruction{}, err
	}

	derived, err := deriveWithdrawAddresses(player, shipMint, scoreVars.ArmsMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return NewProcessWithdrawArmsInstruction(
		&ProcessWithdrawArmsInstructionAccounts{
			PlayerAccount:          player,
			ShipStakingAccount:     derived.shipStaking,
			ScoreVarsAccount:       derived.scoreVars,
			ScoreVarsShipAccount:   derived.scoreVarsShip,
			ArmsTokenAccountEscrow: derived.resourceEscrow,
			ArmsTokenAccountReturn: armsReturnAccount,
			ArmsMint:               scoreVars.ArmsMint,
			EscrowAuthority:        derived.escrowAuthority,
			TokenProgram:           SPL_TOKEN_PROGRAM_ID,
			Clock:                  SYSVAR_CLOCK_PUBKEY,
			ShipMint:               shipMint,
		},
		&ProcessWithdrawArmsInstructionArgs{
			StakingBump:       derived.stakingBump,
			ScorevarsBump:     derived.scorevarsBump,
			ScorevarsShipBump: derived.scorevarsShipBump,
			EscrowAuthBump:    derived.escrowAuthBump,
			EscrowBump:        derived.escrowBump,
		},
	)
}

// WithdrawShip builds the instruction that returns a player's escrowed ships
// to the given token account, ending the staking. Unlike the resource
// withdrawals, no account lookup is needed because the ship mint is already
// known.
func (c *Client) WithdrawShip(player, shipMint, shipReturnAccount ed25519.PublicKey) (solana.Instruction, error) {
	shipStaking, stakingBump, err := GetShipStakingAddress(&GetShipStakingAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive ship staking address")
	}

	// The instruction takes the scorevars bump without the account itself.
	_, scorevarsBump, err := GetScoreVarsAddress()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive scorevars address")
	}

	scoreVarsShip, scorevarsShipBump, err := GetScoreVarsShipAddress(&GetScoreVarsShipAddressArgs{
		ShipMint: shipMint,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive scorevars ship address")
	}

	escrowAuthority, escrowAuthBump, err := GetEscrowAuthorityAddress(&GetEscrowAuthorityAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive escrow authority address")
	}

	shipEscrow, escrowBump, err := GetShipEscrowAddress(&GetShipEscrowAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive ship escrow address")
	}

	return NewProcessWithdrawShipInstruction(
		&ProcessWithdrawShipInstructionAccounts{
			PlayerAccount:          player,
			ShipStakingAccount:     shipStaking,
			ScoreVarsShipAccount:   scoreVarsShip,
			ShipTokenAccountEscrow: shipEscrow,
			ShipTokenAccountReturn: shipReturnAccount,
			ShipMint:               shipMint,
			EscrowAuthority:        escrowAuthority,
			TokenProgram:           SPL_TOKEN_PROGRAM_ID,
			Clock:                  SYSVAR_CLOCK_PUBKEY,
		},
		&ProcessWithdrawShipInstructionArgs{
			StakingBump:       stakingBump,
			ScorevarsBump:     scorevarsBump,
			ScorevarsShipBump: scorevarsShipBump,
			EscrowAuthBump:    escrowAuthBump,
			EscrowBump:        escrowBump,
		},
	)
}

// Harvest builds the instruction that pays a ship's pending rewards from the
// treasury into the given reward token account.
func (c *Client) Harvest(player, shipMint, rewardTokenAccount ed25519.PublicKey) (solana.Instruction, error) {
	shipStaking, stakingBump, err := GetShipStakingAddress(&GetShipStakingAddressArgs{
		PlayerAccount: player,
		ShipMint:      shipMint,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive ship staking address")
	}

	scoreVars, scorevarsBump, err := GetScoreVarsAddress()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive scorevars address")
	}

	treasury, _, err := GetTreasuryAddress()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive treasury address")
	}

	treasuryAuthority, _, err := GetTreasuryAuthorityAddress()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive treasury authority address")
	}

	return NewProcessHarvestInstruction(
		&ProcessHarvestInstructionAccounts{
			PlayerAccount:            player,
			ShipStakingAccount:       shipStaking,
			TreasuryTokenAccount:     treasury,
			PlayerAtlasTokenAccount:  rewardTokenAccount,
			TreasuryAuthorityAccount: treasuryAuthority,
			ScoreVarsAccount:         scoreVars,
			ShipMint:                 shipMint,
			TokenProgram:             SPL_TOKEN_PROGRAM_ID,
			Clock:                    SYSVAR_CLOCK_PUBKEY,
		},
		&ProcessHarvestInstructionArgs{
			StakingBump:   stakingBump,
			ScorevarsBump: scorevarsBump,
		},
	)
}
