package anchor

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"reflect"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

// An AccountType binds an on-chain record kind to a concrete Go struct T: the
// kind's 8-byte discriminator, its field layout, and the struct that carries
// decoded values. Instances are created once at package init time and are
// read-only afterwards.
type AccountType[T any] struct {
	program       *Program
	name          string
	discriminator Discriminator
	layout        Layout
}

// DefineAccount registers an account kind with its program and binds it to T.
// It panics if T cannot carry the layout or if the kind's discriminator
// collides with a previously registered kind.
func DefineAccount[T any](program *Program, name string, layout Layout) *AccountType[T] {
	if err := checkStruct(layout.fields, reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		panic(fmt.Sprintf("anchor: account %s: %v", name, err))
	}

	discriminator := AccountDiscriminator(name)
	program.register(name, discriminator)

	return &AccountType[T]{
		program:       program,
		name:          name,
		discriminator: discriminator,
		layout:        layout,
	}
}

// Name returns the account kind's schema name.
func (t *AccountType[T]) Name() string {
	return t.name
}

// Program returns the program the account kind belongs to.
func (t *AccountType[T]) Program() *Program {
	return t.program
}

// Discriminator returns the kind's wire tag.
func (t *AccountType[T]) Discriminator() Discriminator {
	return t.discriminator
}

// Layout returns the kind's field layout.
func (t *AccountType[T]) Layout() Layout {
	return t.layout
}

// Size returns the exact encoded size of a record, discriminator included.
func (t *AccountType[T]) Size() int {
	return DiscriminatorSize + t.layout.Size()
}

// Encode serializes v as [discriminator][field bytes].
func (t *AccountType[T]) Encode(v *T) ([]byte, error) {
	data := make([]byte, t.Size())
	copy(data, t.discriminator[:])

	if err := t.layout.encodeTo(data[DiscriminatorSize:], v); err != nil {
		return nil, err
	}

	return data, nil
}

// Decode deserializes a raw account blob. It fails with ErrTruncatedInput if
// the blob is shorter than Size() and with ErrInvalidDiscriminator if the
// leading tag belongs to a different kind; trailing bytes are ignored.
func (t *AccountType[T]) Decode(data []byte) (*T, error) {
	if len(data) < t.Size() {
		return nil, errors.Wrapf(ErrTruncatedInput, "%s: need %d bytes, have %d", t.name, t.Size(), len(data))
	}
	if !bytes.Equal(data[:DiscriminatorSize], t.discriminator[:]) {
		return nil, errors.Wrap(ErrInvalidDiscriminator, t.name)
	}

	record := new(T)
	if err := t.layout.Decode(data[DiscriminatorSize:], record); err != nil {
		return nil, err
	}

	return record, nil
}

// Fetch looks up a single account and decodes it. A missing account is not an
// error; it yields a nil record. An account owned by a different program
// fails with ErrOwnershipMismatch.
func (t *AccountType[T]) Fetch(sc solana.Client, address ed25519.PublicKey, commitment solana.Commitment) (*T, error) {
	info, err := sc.GetAccountInfo(address, commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get account info")
	}

	return t.decodeInfo(info)
}

// FetchMultiple is the batched form of Fetch: one result slot per input
// address, in input order, with nil slots for missing accounts. An ownership
// or decode failure on any present account fails the whole batch.
func (t *AccountType[T]) FetchMultiple(sc solana.Client, addresses []ed25519.PublicKey, commitment solana.Commitment) ([]*T, error) {
	infos, err := sc.GetMultipleAccounts(addresses, commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	records := make([]*T, len(infos))
	for i, info := range infos {
		if info == nil {
			continue
		}

		record, err := t.decodeInfo(*info)
		if err != nil {
			return nil, errors.Wrap(err, base58.Encode(addresses[i]))
		}
		records[i] = record
	}

	return records, nil
}

// FindProgramAccounts returns the addresses of every account of this kind
// owned by the program, along with the slot the result was observed at.
func (t *AccountType[T]) FindProgramAccounts(sc solana.Client) ([]ed25519.PublicKey, uint64, error) {
	keys, slot, err := sc.GetFilteredProgramAccounts(t.program.id, 0, t.discriminator.Bytes())
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to get program accounts")
	}

	addresses := make([]ed25519.PublicKey, len(keys))
	for i, key := range keys {
		decoded, err := base58.Decode(key)
		if err != nil {
			return nil, 0, errors.Wrap(err, "invalid base58 encoded address")
		}
		addresses[i] = decoded
	}

	return addresses, slot, nil
}

// ToMap converts a record to its portable representation.
func (t *AccountType[T]) ToMap(v *T) (map[string]interface{}, error) {
	return t.layout.MarshalMap(v)
}

// FromMap reconstructs a record from its portable representation.
func (t *AccountType[T]) FromMap(m map[string]interface{}) (*T, error) {
	record := new(T)
	if err := t.layout.UnmarshalMap(m, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (t *AccountType[T]) decodeInfo(info solana.AccountInfo) (*T, error) {
	if !bytes.Equal(info.Owner, t.program.id) {
		return nil, errors.Wrapf(ErrOwnershipMismatch, "owned by %s", base58.Encode(info.Owner))
	}

	return t.Decode(info.Data)
}
