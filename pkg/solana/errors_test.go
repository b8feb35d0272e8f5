package solana

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionError(t *testing.T) {
	e, err := ParseTransactionError(nil)
	assert.NoError(t, err)
	assert.Nil(t, e)

	e, err = ParseTransactionError(decodeJSON(t, `"DuplicateSignature"`))
	assert.NoError(t, err)
	assert.Equal(t, TransactionErrorDuplicateSignature, e.ErrorKey())
	assert.Nil(t, e.InstructionError())
	assert.Nil(t, e.CustomError())

	e, err = ParseTransactionError(decodeJSON(t, `{"InstructionError":[0,"InvalidArgument"]}`))
	assert.NoError(t, err)
	assert.Equal(t, TransactionErrorInstructionError, e.ErrorKey())
	require.NotNil(t, e.InstructionError())
	assert.Equal(t, 0, e.InstructionError().Index)
	assert.Equal(t, InstructionErrorInvalidArgument, e.InstructionError().ErrorKey())
	assert.Nil(t, e.InstructionError().CustomError())
	assert.Nil(t, e.CustomError())

	e, err = ParseTransactionError(decodeJSON(t, `{"InstructionError":[2,{"Custom":6001}]}`))
	assert.NoError(t, err)
	assert.Equal(t, TransactionErrorInstructionError, e.ErrorKey())
	require.NotNil(t, e.InstructionError())
	assert.Equal(t, 2, e.InstructionError().Index)
	assert.Equal(t, InstructionErrorCustom, e.InstructionError().ErrorKey())
	require.NotNil(t, e.InstructionError().CustomError())
	assert.Equal(t, CustomError(6001), *e.InstructionError().CustomError())
	require.NotNil(t, e.CustomError())
	assert.Equal(t, CustomError(6001), *e.CustomError())

	raw, err := e.JSONString()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"InstructionError":[2,{"Custom":6001}]}`, raw)

	_, err = ParseTransactionError(42)
	assert.Error(t, err)
}

func TestParseTransactionError_Malformed(t *testing.T) {
	// Enum variants carry exactly one key.
	e, err := ParseTransactionError(decodeJSON(t, `{"AccountInUse":null,"AccountNotFound":null}`))
	assert.Error(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "unhandled transaction error", e.Error())

	e, err = ParseTransactionError(decodeJSON(t, `{"InstructionError":[0,{"Custom":6001,"Other":1}]}`))
	assert.Error(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "unhandled transaction error", e.Error())

	e, err = ParseTransactionError(decodeJSON(t, `{"InstructionError":[0]}`))
	assert.Error(t, err)
	require.NotNil(t, e)
	assert.Nil(t, e.InstructionError())
}

func TestParseIntValue(t *testing.T) {
	tc := []interface{}{
		"1",
		1.0,
		json.Number("1"),
	}
	for i, c := range tc {
		v, err := parseIntValue(c)
		assert.NoError(t, err)
		assert.Equal(t, 1, v, i)
	}

	_, err := parseIntValue("not a number")
	assert.Error(t, err)
	_, err = parseIntValue([]interface{}{})
	assert.Error(t, err)
}

func decodeJSON(t *testing.T, s string) interface{} {
	var raw interface{}
	require.NoError(t, json.NewDecoder(bytes.NewBufferString(s)).Decode(&raw))
	return raw
}
