package anchor

import (
	"crypto/ed25519"
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// MarshalMap converts v into the portable interchange representation: a map
// keyed by the layout's field names, with keys rendered as base58 text,
// integers as plain integers, fixed arrays as ordered lists, and nested
// structs as nested maps. The result round-trips through encoding/json.
func (l Layout) MarshalMap(v interface{}) (map[string]interface{}, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}

	return marshalFields(l.fields, rv)
}

// UnmarshalMap binds a portable representation produced by MarshalMap (or an
// equivalent decoded JSON document) back onto v, a non-nil pointer to a
// struct matching the layout. Missing fields, out-of-range numbers, and
// malformed keys fail with ErrFieldMismatch.
func (l Layout) UnmarshalMap(m map[string]interface{}, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Wrap(ErrFieldMismatch, "target must be a non-nil pointer to a struct")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.Wrapf(ErrFieldMismatch, "target must be a struct, got %s", rv.Kind())
	}

	return unmarshalFields(m, l.fields, rv)
}

func marshalFields(fields []Field, rv reflect.Value) (map[string]interface{}, error) {
	if rv.NumField() != len(fields) {
		return nil, errors.Wrapf(ErrFieldMismatch, "layout declares %d fields, struct %s has %d", len(fields), rv.Type(), rv.NumField())
	}

	m := make(map[string]interface{}, len(fields))
	for i, f := range fields {
		value, err := marshalValue(f.Type, rv.Field(i))
		if err != nil {
			return nil, errors.Wrap(err, f.Name)
		}
		m[f.Name] = value
	}

	return m, nil
}

func marshalValue(t Type, v reflect.Value) (interface{}, error) {
	switch t.kind {
	case kindU8, kindU16, kindU32, kindU64:
		switch v.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return v.Uint(), nil
		}
		return nil, kindMismatch("unsigned integer", v)
	case kindI8, kindI16, kindI32, kindI64:
		switch v.Kind() {
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return v.Int(), nil
		}
		return nil, kindMismatch("signed integer", v)
	case kindBool:
		if v.Kind() != reflect.Bool {
			return nil, kindMismatch("bool", v)
		}
		return v.Bool(), nil
	case kindKey:
		key, err := keyBytes(v)
		if err != nil {
			return nil, err
		}
		return base58.Encode(key), nil
	case kindArray:
		if v.Kind() != reflect.Array && v.Kind() != reflect.Slice {
			return nil, kindMismatch("fixed-length array", v)
		}
		if v.Len() != t.count {
			return nil, errors.Wrapf(ErrFieldMismatch, "expected %d elements, got %d", t.count, v.Len())
		}
		values := make([]interface{}, t.count)
		for i := 0; i < t.count; i++ {
			value, err := marshalValue(*t.elem, v.Index(i))
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			values[i] = value
		}
		return values, nil
	case kindStruct:
		if v.Kind() != reflect.Struct {
			return nil, kindMismatch("struct", v)
		}
		return marshalFields(t.fields, v)
	}

	return nil, errors.Wrap(ErrFieldMismatch, "unknown field type")
}

func keyBytes(v reflect.Value) ([]byte, error) {
	switch {
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		if v.Len() != ed25519.PublicKeySize {
			return nil, errors.Wrapf(ErrFieldMismatch, "expected a %d byte key, got %d bytes", ed25519.PublicKeySize, v.Len())
		}
		return v.Bytes(), nil
	case v.Kind() == reflect.Array && v.Type().Elem().Kind() == reflect.Uint8 && v.Len() == ed25519.PublicKeySize:
		key := make([]byte, ed25519.PublicKeySize)
		reflect.Copy(reflect.ValueOf(key), v)
		return key, nil
	}

	return nil, kindMismatch("32 byte key", v)
}

func unmarshalFields(m map[string]interface{}, fields []Field, rv reflect.Value) error {
	if rv.NumField() != len(fields) {
		return errors.Wrapf(ErrFieldMismatch, "layout declares %d fields, struct %s has %d", len(fields), rv.Type(), rv.NumField())
	}

	for i, f := range fields {
		raw, ok := m[f.Name]
		if !ok {
			return errors.Wrapf(ErrFieldMismatch, "missing field %s", f.Name)
		}

		field := rv.Field(i)
		if !field.CanSet() {
			return errors.Wrapf(ErrFieldMismatch, "%s: struct field %s is not settable", f.Name, rv.Type().Field(i).Name)
		}
		if err := unmarshalValue(raw, f.Type, field); err != nil {
			return errors.Wrap(err, f.Name)
		}
	}

	return nil
}

func unmarshalValue(raw interface{}, t Type, v reflect.Value) error {
	switch t.kind {
	case kindU8, kindU16, kindU32, kindU64:
		value, err := portableUint(raw, t.size()*8)
		if err != nil {
			return err
		}
		if v.Kind() != reflect.Uint8 && v.Kind() != reflect.Uint16 && v.Kind() != reflect.Uint32 && v.Kind() != reflect.Uint64 {
			return kindMismatch("unsigned integer", v)
		}
		v.SetUint(value)
	case kindI8, kindI16, kindI32, kindI64:
		value, err := portableInt(raw, t.size()*8)
		if err != nil {
			return err
		}
		if v.Kind() != reflect.Int8 && v.Kind() != reflect.Int16 && v.Kind() != reflect.Int32 && v.Kind() != reflect.Int64 {
			return kindMismatch("signed integer", v)
		}
		v.SetInt(value)
	case kindBool:
		value, ok := raw.(bool)
		if !ok {
			return errors.Wrapf(ErrFieldMismatch, "expected a bool, got %T", raw)
		}
		if v.Kind() != reflect.Bool {
			return kindMismatch("bool", v)
		}
		v.SetBool(value)
	case kindKey:
		text, ok := raw.(string)
		if !ok {
			return errors.Wrapf(ErrFieldMismatch, "expected a base58 key, got %T", raw)
		}
		key, err := base58.Decode(text)
		if err != nil {
			return errors.Wrapf(ErrFieldMismatch, "invalid base58 key: %s", text)
		}
		if len(key) != ed25519.PublicKeySize {
			return errors.Wrapf(ErrFieldMismatch, "expected a %d byte key, got %d bytes", ed25519.PublicKeySize, len(key))
		}
		return decodeKey(key, v)
	case kindArray:
		rawValue := reflect.ValueOf(raw)
		if rawValue.Kind() != reflect.Slice && rawValue.Kind() != reflect.Array {
			return errors.Wrapf(ErrFieldMismatch, "expected a list, got %T", raw)
		}
		if rawValue.Len() != t.count {
			return errors.Wrapf(ErrFieldMismatch, "expected %d elements, got %d", t.count, rawValue.Len())
		}
		if v.Kind() != reflect.Array && v.Kind() != reflect.Slice {
			return kindMismatch("fixed-length array", v)
		}
		if v.Kind() == reflect.Slice && v.Len() != t.count {
			v.Set(reflect.MakeSlice(v.Type(), t.count, t.count))
		}
		if v.Kind() == reflect.Array && v.Len() != t.count {
			return errors.Wrapf(ErrFieldMismatch, "expected %d elements, got %d", t.count, v.Len())
		}
		for i := 0; i < t.count; i++ {
			if err := unmarshalValue(rawValue.Index(i).Interface(), *t.elem, v.Index(i)); err != nil {
				return errors.Wrapf(err, "[%d]", i)
			}
		}
	case kindStruct:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return errors.Wrapf(ErrFieldMismatch, "expected a map, got %T", raw)
		}
		if v.Kind() != reflect.Struct {
			return kindMismatch("struct", v)
		}
		return unmarshalFields(m, t.fields, v)
	}

	return nil
}

// portableUint accepts the numeric shapes a JSON round trip can produce.
// Out-of-range values are a hard error rather than silently masked.
func portableUint(raw interface{}, bits int) (uint64, error) {
	max := uint64(math.MaxUint64)
	if bits < 64 {
		max = 1<<uint(bits) - 1
	}

	switch value := raw.(type) {
	case json.Number:
		parsed, err := strconv.ParseUint(value.String(), 10, bits)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %s does not fit in uint%d", value, bits)
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseUint(value, 10, bits)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %s does not fit in uint%d", value, bits)
		}
		return parsed, nil
	case float64:
		if value != math.Trunc(value) {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %v is not an integer", value)
		}
		parsed, err := strconv.ParseUint(strconv.FormatFloat(value, 'f', -1, 64), 10, bits)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %v does not fit in uint%d", value, bits)
		}
		return parsed, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > max {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %d does not fit in uint%d", rv.Uint(), bits)
		}
		return rv.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 || uint64(rv.Int()) > max {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %d does not fit in uint%d", rv.Int(), bits)
		}
		return uint64(rv.Int()), nil
	}

	return 0, errors.Wrapf(ErrFieldMismatch, "expected an unsigned integer, got %T", raw)
}

func portableInt(raw interface{}, bits int) (int64, error) {
	min := int64(math.MinInt64)
	max := int64(math.MaxInt64)
	if bits < 64 {
		min = -1 << uint(bits-1)
		max = 1<<uint(bits-1) - 1
	}

	switch value := raw.(type) {
	case json.Number:
		parsed, err := strconv.ParseInt(value.String(), 10, bits)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %s does not fit in int%d", value, bits)
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseInt(value, 10, bits)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %s does not fit in int%d", value, bits)
		}
		return parsed, nil
	case float64:
		if value != math.Trunc(value) {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %v is not an integer", value)
		}
		parsed, err := strconv.ParseInt(strconv.FormatFloat(value, 'f', -1, 64), 10, bits)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %v does not fit in int%d", value, bits)
		}
		return parsed, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < min || rv.Int() > max {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %d does not fit in int%d", rv.Int(), bits)
		}
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > uint64(max) {
			return 0, errors.Wrapf(ErrFieldMismatch, "value %d does not fit in int%d", rv.Uint(), bits)
		}
		return int64(rv.Uint()), nil
	}

	return 0, errors.Wrapf(ErrFieldMismatch, "expected a signed integer, got %T", raw)
}
