package faction

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

var (
	ErrEnlistmentNotFound = errors.New("enlistment not found")
)

// Client provides typed access to the faction enlistment program.
type Client struct {
	sc solana.Client
}

func NewClient(sc solana.Client) *Client {
	return &Client{
		sc: sc,
	}
}

// GetPlayerFactionData returns the enlistment record for a player, or
// ErrEnlistmentNotFound if the player has never enlisted.
func (c *Client) GetPlayerFactionData(player ed25519.PublicKey, commitment solana.Commitment) (*PlayerFactionData, error) {
	address, _, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive enlistment address")
	}

	record, err := PlayerFactionDataAccount.Fetch(c.sc, address, commitment)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrEnlistmentNotFound
	}

	return record, nil
}

// GetMultiplePlayerFactionData returns the enlistment records for a set of
// players. The result preserves input order, with a nil entry for each player
// that has never enlisted.
func (c *Client) GetMultiplePlayerFactionData(players []ed25519.PublicKey, commitment solana.Commitment) ([]*PlayerFactionData, error) {
	addresses := make([]ed25519.PublicKey, len(players))
	for i, player := range players {
		address, _, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
			PlayerAccount: player,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive enlistment address")
		}
		addresses[i] = address
	}

	return PlayerFactionDataAccount.FetchMultiple(c.sc, addresses, commitment)
}

// GetAllPlayerFactionData returns every enlistment record the program owns.
func (c *Client) GetAllPlayerFactionData(commitment solana.Commitment) ([]*PlayerFactionData, error) {
	addresses, _, err := PlayerFactionDataAccount.FindProgramAccounts(c.sc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enlistment accounts")
	}
	if len(addresses) == 0 {
		return nil, nil
	}

	records, err := PlayerFactionDataAccount.FetchMultiple(c.sc, addresses, commitment)
	if err != nil {
		return nil, err
	}

	// Accounts can be closed between the listing and the fetch.
	result := make([]*PlayerFactionData, 0, len(records))
	for _, record := range records {
		if record != nil {
			result = append(result, record)
		}
	}
	return result, nil
}

// EnlistPlayer builds the instruction that enlists a player with a faction.
func (c *Client) EnlistPlayer(player ed25519.PublicKey, factionID FactionID) (solana.Instruction, error) {
	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive enlistment address")
	}

	return NewProcessEnlistPlayerInstruction(
		&ProcessEnlistPlayerInstructionAccounts{
			PlayerFactionAccount: address,
			PlayerAccount:        player,
			SystemProgram:        SYSTEM_PROGRAM_ID,
			Clock:                SYSVAR_CLOCK_PUBKEY,
		},
		&ProcessEnlistPlayerInstructionArgs{
			Bump:      bump,
			FactionID: uint8(factionID),
		},
	)
}

// LeaveFaction builds the instruction that removes a player's enlistment.
func (c *Client) LeaveFaction(player ed25519.PublicKey) (solana.Instruction, error) {
	address, bump, err := GetPlayerFactionAddress(&GetPlayerFactionAddressArgs{
		PlayerAccount: player,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive enlistment address")
	}

	return NewProcessLeaveFactionInstruction(
		&ProcessLeaveFactionInstructionAccounts{
			PlayerFactionAccount: address,
			PlayerAccount:        player,
			Clock:                SYSVAR_CLOCK_PUBKEY,
		},
		&ProcessLeaveFactionInstructionArgs{
			Bump: bump,
		},
	)
}
