package token

import (
	"crypto/ed25519"
	"encoding/binary"
)

type Account struct {
	// The mint associated with this account
	Mint ed25519.PublicKey

	// The owner of this account.
	Owner ed25519.PublicKey

	// The amount of tokens this account holds.
	Amount uint64

	// If set, then the 'DelegatedAmount' represents the amount
	// authorized by the delegate.
	Delegate ed25519.PublicKey

	// The account's state.
	State AccountState

	// If set, this is a native token, and the value logs the rent-exempt
	// reserve. An Account is required to be rent-exempt, so the value is
	// used by the Processor to ensure that wrapped SOL accounts do not
	// drop below this threshold.
	IsNative *uint64

	// The amount delegated.
	DelegatedAmount uint64

	// Optional authority to close the account.
	CloseAuthority ed25519.PublicKey
}

func (a *Account) Marshal() []byte {
	b := make([]byte, AccountSize)

	var offset int
	putKey(b, a.Mint, &offset)
	putKey(b, a.Owner, &offset)
	putUint64(b, a.Amount, &offset)
	putOptionalKey(b, a.Delegate, &offset)
	b[offset] = byte(a.State)
	offset++
	putOptionalUint64(b, a.IsNative, &offset)
	putUint64(b, a.DelegatedAmount, &offset)
	putOptionalKey(b, a.CloseAuthority, &offset)

	return b
}

func (a *Account) Unmarshal(b []byte) bool {
	if len(b) != AccountSize {
		return false
	}

	var offset int
	getKey(b, &a.Mint, &offset)
	getKey(b, &a.Owner, &offset)
	getUint64(b, &a.Amount, &offset)
	getOptionalKey(b, &a.Delegate, &offset)
	a.State = AccountState(b[offset])
	offset++
	getOptionalUint64(b, &a.IsNative, &offset)
	getUint64(b, &a.DelegatedAmount, &offset)
	getOptionalKey(b, &a.CloseAuthority, &offset)

	return true
}

func putKey(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}

func putOptionalKey(dst []byte, src ed25519.PublicKey, offset *int) {
	if len(src) > 0 {
		binary.LittleEndian.PutUint32(dst[*offset:], 1)
		copy(dst[*offset+optionSize:], src)
	}
	*offset += optionSize + ed25519.PublicKeySize
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func putOptionalUint64(dst []byte, v *uint64, offset *int) {
	if v != nil {
		binary.LittleEndian.PutUint32(dst[*offset:], 1)
		binary.LittleEndian.PutUint64(dst[*offset+optionSize:], *v)
	}
	*offset += optionSize + 8
}

func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func getOptionalKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	if binary.LittleEndian.Uint32(src[*offset:]) == 1 {
		*dst = make([]byte, ed25519.PublicKeySize)
		copy(*dst, src[*offset+optionSize:])
	}
	*offset += optionSize + ed25519.PublicKeySize
}

func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func getOptionalUint64(src []byte, dst **uint64, offset *int) {
	if binary.LittleEndian.Uint32(src[*offset:]) == 1 {
		v := binary.LittleEndian.Uint64(src[*offset+optionSize:])
		*dst = &v
	}
	*offset += optionSize + 8
}
