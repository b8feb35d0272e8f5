package anchor

import (
	"crypto/ed25519"
	"reflect"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

type enlistmentRecord struct {
	Owner               ed25519.PublicKey
	EnlistedAtTimestamp int64
	FactionID           uint8
	Bump                uint8
	Padding             [5]uint64
}

var enlistmentLayout = MustLayout(
	Field{Name: "owner", Type: Key},
	Field{Name: "enlisted_at_timestamp", Type: I64},
	Field{Name: "faction_id", Type: U8},
	Field{Name: "bump", Type: U8},
	Field{Name: "padding", Type: ArrayOf(U64, 5)},
)

func generateKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}
	return keys
}

func TestLayout_Size(t *testing.T) {
	assert.Equal(t, 82, enlistmentLayout.Size())

	nested := MustLayout(
		Field{Name: "pair", Type: StructOf(
			Field{Name: "a", Type: U16},
			Field{Name: "b", Type: Bool},
		)},
		Field{Name: "keys", Type: ArrayOf(Key, 2)},
	)
	assert.Equal(t, 3+64, nested.Size())
}

func TestLayout_Offset(t *testing.T) {
	for _, tc := range []struct {
		field  string
		offset int
	}{
		{"owner", 0},
		{"enlisted_at_timestamp", 32},
		{"faction_id", 40},
		{"bump", 41},
		{"padding", 42},
	} {
		offset, ok := enlistmentLayout.Offset(tc.field)
		require.True(t, ok, tc.field)
		assert.Equal(t, tc.offset, offset, tc.field)
	}

	_, ok := enlistmentLayout.Offset("missing")
	assert.False(t, ok)
}

func TestLayout_RoundTrip(t *testing.T) {
	owner := generateKeys(t, 1)[0]

	expected := &enlistmentRecord{
		Owner:               owner,
		EnlistedAtTimestamp: 1000,
		FactionID:           3,
		Bump:                7,
		Padding:             [5]uint64{1, 2, 3, 4, 5},
	}

	data, err := enlistmentLayout.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, enlistmentLayout.Size())

	var actual enlistmentRecord
	require.NoError(t, enlistmentLayout.Decode(data, &actual))
	assert.Equal(t, expected, &actual)
}

func TestLayout_GoldenBytes(t *testing.T) {
	owner := make([]byte, ed25519.PublicKeySize)
	for i := range owner {
		owner[i] = byte(i)
	}

	record := &enlistmentRecord{
		Owner:               owner,
		EnlistedAtTimestamp: 1000,
		FactionID:           3,
		Bump:                7,
	}

	data, err := enlistmentLayout.Encode(record)
	require.NoError(t, err)

	var expected []byte
	expected = append(expected, owner...)
	expected = append(expected, 0xe8, 0x03, 0, 0, 0, 0, 0, 0)
	expected = append(expected, 3, 7)
	expected = append(expected, make([]byte, 40)...)
	assert.Equal(t, expected, data)
}

func TestLayout_LittleEndian(t *testing.T) {
	type record struct {
		A uint16
		B int32
		C uint64
		D int8
	}

	l := MustLayout(
		Field{Name: "a", Type: U16},
		Field{Name: "b", Type: I32},
		Field{Name: "c", Type: U64},
		Field{Name: "d", Type: I8},
	)

	data, err := l.Encode(&record{
		A: 0x0102,
		B: -2,
		C: 0x0807060504030201,
		D: -1,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x02, 0x01,
		0xfe, 0xff, 0xff, 0xff,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0xff,
	}, data)

	var decoded record
	require.NoError(t, l.Decode(data, &decoded))
	assert.EqualValues(t, -2, decoded.B)
	assert.EqualValues(t, -1, decoded.D)
}

func TestLayout_Bool(t *testing.T) {
	type record struct {
		Locked bool
	}

	l := MustLayout(Field{Name: "locked", Type: Bool})

	data, err := l.Encode(&record{Locked: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)

	data, err = l.Encode(&record{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, data)

	// Any non-zero byte decodes as true.
	var decoded record
	require.NoError(t, l.Decode([]byte{2}, &decoded))
	assert.True(t, decoded.Locked)
}

func TestLayout_NestedStruct(t *testing.T) {
	type reserve struct {
		Mint     ed25519.PublicKey
		Capacity uint32
	}
	type record struct {
		Authority ed25519.PublicKey
		Fuel      reserve
		Food      reserve
	}

	l := MustLayout(
		Field{Name: "authority", Type: Key},
		Field{Name: "fuel", Type: StructOf(
			Field{Name: "mint", Type: Key},
			Field{Name: "capacity", Type: U32},
		)},
		Field{Name: "food", Type: StructOf(
			Field{Name: "mint", Type: Key},
			Field{Name: "capacity", Type: U32},
		)},
	)
	require.Equal(t, 32+36+36, l.Size())

	keys := generateKeys(t, 3)
	expected := &record{
		Authority: keys[0],
		Fuel:      reserve{Mint: keys[1], Capacity: 250},
		Food:      reserve{Mint: keys[2], Capacity: 100},
	}

	data, err := l.Encode(expected)
	require.NoError(t, err)

	var actual record
	require.NoError(t, l.Decode(data, &actual))
	assert.Equal(t, expected, &actual)
}

func TestLayout_KeyAsArray(t *testing.T) {
	type record struct {
		Mint [32]byte
	}

	l := MustLayout(Field{Name: "mint", Type: Key})

	var mint [32]byte
	for i := range mint {
		mint[i] = byte(255 - i)
	}

	data, err := l.Encode(&record{Mint: mint})
	require.NoError(t, err)
	assert.Equal(t, mint[:], data)

	var decoded record
	require.NoError(t, l.Decode(data, &decoded))
	assert.Equal(t, mint, decoded.Mint)
}

func TestLayout_DecodeTruncated(t *testing.T) {
	data := make([]byte, enlistmentLayout.Size())

	var record enlistmentRecord
	for _, size := range []int{0, 1, 41, enlistmentLayout.Size() - 1} {
		err := enlistmentLayout.Decode(data[:size], &record)
		assert.ErrorIs(t, err, ErrTruncatedInput, "size %d", size)
	}

	// Trailing bytes are tolerated.
	padded := append(data, 0xde, 0xad)
	assert.NoError(t, enlistmentLayout.Decode(padded, &record))
}

func TestLayout_DecodeTarget(t *testing.T) {
	data := make([]byte, enlistmentLayout.Size())

	assert.ErrorIs(t, enlistmentLayout.Decode(data, nil), ErrFieldMismatch)
	assert.ErrorIs(t, enlistmentLayout.Decode(data, enlistmentRecord{}), ErrFieldMismatch)

	var record *enlistmentRecord
	assert.ErrorIs(t, enlistmentLayout.Decode(data, record), ErrFieldMismatch)
}

func TestLayout_EncodeMismatch(t *testing.T) {
	type wrongKind struct {
		Value uint16
	}
	type wrongCount struct {
		A uint8
		B uint8
	}
	type shortKey struct {
		Key ed25519.PublicKey
	}
	type wrongArray struct {
		Values [3]uint64
	}

	u8Layout := MustLayout(Field{Name: "value", Type: U8})
	keyLayout := MustLayout(Field{Name: "key", Type: Key})
	arrayLayout := MustLayout(Field{Name: "values", Type: ArrayOf(U64, 5)})

	_, err := u8Layout.Encode(&wrongKind{Value: 1})
	assert.ErrorIs(t, err, ErrFieldMismatch)

	_, err = u8Layout.Encode(&wrongCount{})
	assert.ErrorIs(t, err, ErrFieldMismatch)

	_, err = keyLayout.Encode(&shortKey{Key: make([]byte, 16)})
	assert.ErrorIs(t, err, ErrFieldMismatch)

	_, err = keyLayout.Encode(&shortKey{})
	assert.ErrorIs(t, err, ErrFieldMismatch)

	_, err = arrayLayout.Encode(&wrongArray{})
	assert.ErrorIs(t, err, ErrFieldMismatch)

	_, err = u8Layout.Encode(nil)
	assert.ErrorIs(t, err, ErrFieldMismatch)
}

func TestLayout_SliceArrayField(t *testing.T) {
	type record struct {
		Values []uint16
	}

	l := MustLayout(Field{Name: "values", Type: ArrayOf(U16, 3)})

	data, err := l.Encode(&record{Values: []uint16{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 2, 0, 3, 0}, data)

	// A slice of the wrong length does not satisfy a fixed-length array.
	_, err = l.Encode(&record{Values: []uint16{1, 2}})
	assert.ErrorIs(t, err, ErrFieldMismatch)

	var decoded record
	require.NoError(t, l.Decode(data, &decoded))
	assert.Equal(t, []uint16{1, 2, 3}, decoded.Values)
}

func TestNewLayout_Validation(t *testing.T) {
	_, err := NewLayout()
	assert.Error(t, err)

	_, err = NewLayout(Field{Name: "", Type: U8})
	assert.Error(t, err)

	_, err = NewLayout(
		Field{Name: "a", Type: U8},
		Field{Name: "a", Type: U8},
	)
	assert.Error(t, err)

	_, err = NewLayout(Field{Name: "a", Type: ArrayOf(U8, 0)})
	assert.Error(t, err)

	_, err = NewLayout(Field{Name: "a", Type: StructOf()})
	assert.Error(t, err)

	_, err = NewLayout(Field{Name: "a", Type: Type{}})
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustLayout(Field{Name: "a", Type: ArrayOf(U8, -1)})
	})
}

func TestCheckStruct(t *testing.T) {
	type valid struct {
		Owner ed25519.PublicKey
		Count uint64
	}
	type wrongOrder struct {
		Count uint64
		Owner ed25519.PublicKey
	}
	type unexported struct {
		Owner ed25519.PublicKey
		count uint64
	}

	fields := []Field{
		{Name: "owner", Type: Key},
		{Name: "count", Type: U64},
	}

	assert.NoError(t, checkStruct(fields, typeOf[valid]()))
	assert.Error(t, checkStruct(fields, typeOf[wrongOrder]()))
	assert.Error(t, checkStruct(fields, typeOf[unexported]()))
	assert.Error(t, checkStruct(fields, typeOf[uint64]()))

	_ = unexported{}.count
}

func TestLayout_MatchesBorsh(t *testing.T) {
	type record struct {
		A uint8
		B uint16
		C uint32
		D uint64
		E int8
		F int16
		G int32
		H int64
		I bool
		J [4]uint32
		K [32]uint8
	}

	l := MustLayout(
		Field{Name: "a", Type: U8},
		Field{Name: "b", Type: U16},
		Field{Name: "c", Type: U32},
		Field{Name: "d", Type: U64},
		Field{Name: "e", Type: I8},
		Field{Name: "f", Type: I16},
		Field{Name: "g", Type: I32},
		Field{Name: "h", Type: I64},
		Field{Name: "i", Type: Bool},
		Field{Name: "j", Type: ArrayOf(U32, 4)},
		Field{Name: "k", Type: Key},
	)

	value := record{
		A: 1,
		B: 513,
		C: 1 << 20,
		D: 1 << 40,
		E: -5,
		F: -1025,
		G: -(1 << 20),
		H: -(1 << 40),
		I: true,
		J: [4]uint32{10, 20, 30, 40},
	}
	for i := range value.K {
		value.K[i] = byte(i * 7)
	}

	expected, err := borsh.Serialize(value)
	require.NoError(t, err)

	actual, err := l.Encode(&value)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	var decoded record
	require.NoError(t, borsh.Deserialize(&decoded, actual))
	assert.Equal(t, value, decoded)
}
