package anchor

import (
	"crypto/ed25519"
	"encoding/binary"
	"reflect"

	"github.com/pkg/errors"
)

type kind uint8

const (
	kindInvalid kind = iota
	kindU8
	kindI8
	kindU16
	kindI16
	kindU32
	kindI32
	kindU64
	kindI64
	kindBool
	kindKey
	kindArray
	kindStruct
)

// A Type describes the wire shape of a single field: a fixed-width
// little-endian integer, a bool, a 32-byte raw public key, a fixed-length
// array, or a nested struct. Every Type has a statically fixed encoded size.
type Type struct {
	kind   kind
	count  int
	elem   *Type
	fields []Field
}

var (
	U8   = Type{kind: kindU8}
	I8   = Type{kind: kindI8}
	U16  = Type{kind: kindU16}
	I16  = Type{kind: kindI16}
	U32  = Type{kind: kindU32}
	I32  = Type{kind: kindI32}
	U64  = Type{kind: kindU64}
	I64  = Type{kind: kindI64}
	Bool = Type{kind: kindBool}

	// Key is a 32-byte raw ed25519 public key.
	Key = Type{kind: kindKey}
)

// ArrayOf describes a fixed-length array of count elements, encoded
// element-by-element in declared order with no length prefix.
func ArrayOf(elem Type, count int) Type {
	return Type{kind: kindArray, count: count, elem: &elem}
}

// StructOf describes a nested record encoded as its fields in declared order.
func StructOf(fields ...Field) Type {
	return Type{kind: kindStruct, fields: fields}
}

// A Field is a named, typed slot in a layout.
type Field struct {
	Name string
	Type Type
}

func (t Type) size() int {
	switch t.kind {
	case kindU8, kindI8, kindBool:
		return 1
	case kindU16, kindI16:
		return 2
	case kindU32, kindI32:
		return 4
	case kindU64, kindI64:
		return 8
	case kindKey:
		return ed25519.PublicKeySize
	case kindArray:
		return t.count * t.elem.size()
	case kindStruct:
		var total int
		for _, f := range t.fields {
			total += f.Type.size()
		}
		return total
	}

	return 0
}

// A Layout is an ordered, immutable description of a fixed-size binary
// record. It is constructed once at program definition time and is safe for
// unbounded concurrent use afterwards.
//
// Layouts bind to concrete Go structs by field order: the i'th exported
// struct field carries the i'th layout field. The offset of field i is the
// sum of the sizes of fields 0..i-1; there are no delimiters on the wire.
type Layout struct {
	fields []Field
	size   int
}

// NewLayout validates the field descriptors and computes the fixed record
// size.
func NewLayout(fields ...Field) (Layout, error) {
	if err := validateFields(fields); err != nil {
		return Layout{}, err
	}

	var size int
	for _, f := range fields {
		size += f.Type.size()
	}

	return Layout{fields: fields, size: size}, nil
}

// MustLayout is NewLayout for package-level record definitions. It panics on
// an invalid schema.
func MustLayout(fields ...Field) Layout {
	l, err := NewLayout(fields...)
	if err != nil {
		panic(err)
	}
	return l
}

func validateFields(fields []Field) error {
	if len(fields) == 0 {
		return errors.New("layout requires at least one field")
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return errors.New("layout field requires a name")
		}
		if _, ok := seen[f.Name]; ok {
			return errors.Errorf("duplicate layout field: %s", f.Name)
		}
		seen[f.Name] = struct{}{}

		if err := validateType(f.Type); err != nil {
			return errors.Wrap(err, f.Name)
		}
	}

	return nil
}

func validateType(t Type) error {
	switch t.kind {
	case kindU8, kindI8, kindU16, kindI16, kindU32, kindI32, kindU64, kindI64, kindBool, kindKey:
		return nil
	case kindArray:
		if t.count <= 0 {
			return errors.Errorf("array length must be positive, got %d", t.count)
		}
		if t.elem == nil {
			return errors.New("array requires an element type")
		}
		return validateType(*t.elem)
	case kindStruct:
		return validateFields(t.fields)
	}

	return errors.New("unknown field type")
}

// Size returns the exact number of bytes an encoded record occupies.
func (l Layout) Size() int {
	return l.size
}

// Fields returns the layout's field descriptors in declared order. The
// returned slice is shared and must not be modified.
func (l Layout) Fields() []Field {
	return l.fields
}

// Offset returns the byte position of a top-level field within an encoded
// record.
func (l Layout) Offset(name string) (int, bool) {
	var offset int
	for _, f := range l.fields {
		if f.Name == name {
			return offset, true
		}
		offset += f.Type.size()
	}

	return 0, false
}

// Encode serializes v, a struct (or pointer to struct) whose fields match the
// layout in declared order, into exactly Size() bytes. A value that does not
// supply every declared field, or whose runtime shape disagrees with a field
// descriptor, fails with ErrFieldMismatch.
func (l Layout) Encode(v interface{}) ([]byte, error) {
	data := make([]byte, l.size)
	if err := l.encodeTo(data, v); err != nil {
		return nil, err
	}
	return data, nil
}

func (l Layout) encodeTo(dst []byte, v interface{}) error {
	rv, err := structValue(v)
	if err != nil {
		return err
	}

	var offset int
	return encodeFields(dst, l.fields, rv, &offset)
}

// Decode deserializes data into v, a non-nil pointer to a struct whose fields
// match the layout in declared order. It requires len(data) >= Size() and
// fails with ErrTruncatedInput otherwise; trailing bytes are ignored. Decode
// is all-or-nothing: on error the contents of v are unspecified.
func (l Layout) Decode(data []byte, v interface{}) error {
	if len(data) < l.size {
		return errors.Wrapf(ErrTruncatedInput, "need %d bytes, have %d", l.size, len(data))
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Wrap(ErrFieldMismatch, "decode target must be a non-nil pointer to a struct")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.Wrapf(ErrFieldMismatch, "decode target must be a struct, got %s", rv.Kind())
	}

	var offset int
	return decodeFields(data, l.fields, rv, &offset)
}

func structValue(v interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, errors.Wrap(ErrFieldMismatch, "nil value")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Wrapf(ErrFieldMismatch, "expected a struct, got %s", rv.Kind())
	}

	return rv, nil
}

func encodeFields(dst []byte, fields []Field, rv reflect.Value, offset *int) error {
	if rv.NumField() != len(fields) {
		return errors.Wrapf(ErrFieldMismatch, "layout declares %d fields, struct %s has %d", len(fields), rv.Type(), rv.NumField())
	}

	for i, f := range fields {
		if err := encodeValue(dst, f.Type, rv.Field(i), offset); err != nil {
			return errors.Wrap(err, f.Name)
		}
	}

	return nil
}

func encodeValue(dst []byte, t Type, v reflect.Value, offset *int) error {
	switch t.kind {
	case kindU8:
		if v.Kind() != reflect.Uint8 {
			return kindMismatch("uint8", v)
		}
		dst[*offset] = byte(v.Uint())
		*offset++
	case kindI8:
		if v.Kind() != reflect.Int8 {
			return kindMismatch("int8", v)
		}
		dst[*offset] = byte(v.Int())
		*offset++
	case kindU16:
		if v.Kind() != reflect.Uint16 {
			return kindMismatch("uint16", v)
		}
		binary.LittleEndian.PutUint16(dst[*offset:], uint16(v.Uint()))
		*offset += 2
	case kindI16:
		if v.Kind() != reflect.Int16 {
			return kindMismatch("int16", v)
		}
		binary.LittleEndian.PutUint16(dst[*offset:], uint16(v.Int()))
		*offset += 2
	case kindU32:
		if v.Kind() != reflect.Uint32 {
			return kindMismatch("uint32", v)
		}
		binary.LittleEndian.PutUint32(dst[*offset:], uint32(v.Uint()))
		*offset += 4
	case kindI32:
		if v.Kind() != reflect.Int32 {
			return kindMismatch("int32", v)
		}
		binary.LittleEndian.PutUint32(dst[*offset:], uint32(v.Int()))
		*offset += 4
	case kindU64:
		if v.Kind() != reflect.Uint64 {
			return kindMismatch("uint64", v)
		}
		binary.LittleEndian.PutUint64(dst[*offset:], v.Uint())
		*offset += 8
	case kindI64:
		if v.Kind() != reflect.Int64 {
			return kindMismatch("int64", v)
		}
		binary.LittleEndian.PutUint64(dst[*offset:], uint64(v.Int()))
		*offset += 8
	case kindBool:
		if v.Kind() != reflect.Bool {
			return kindMismatch("bool", v)
		}
		if v.Bool() {
			dst[*offset] = 1
		}
		*offset++
	case kindKey:
		if err := encodeKey(dst[*offset:], v); err != nil {
			return err
		}
		*offset += ed25519.PublicKeySize
	case kindArray:
		if v.Kind() != reflect.Array && v.Kind() != reflect.Slice {
			return kindMismatch("fixed-length array", v)
		}
		if v.Len() != t.count {
			return errors.Wrapf(ErrFieldMismatch, "expected %d elements, got %d", t.count, v.Len())
		}
		for i := 0; i < t.count; i++ {
			if err := encodeValue(dst, *t.elem, v.Index(i), offset); err != nil {
				return errors.Wrapf(err, "[%d]", i)
			}
		}
	case kindStruct:
		if v.Kind() != reflect.Struct {
			return kindMismatch("struct", v)
		}
		return encodeFields(dst, t.fields, v, offset)
	}

	return nil
}

func encodeKey(dst []byte, v reflect.Value) error {
	switch {
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		if v.Len() != ed25519.PublicKeySize {
			return errors.Wrapf(ErrFieldMismatch, "expected a %d byte key, got %d bytes", ed25519.PublicKeySize, v.Len())
		}
		copy(dst, v.Bytes())
	case v.Kind() == reflect.Array && v.Type().Elem().Kind() == reflect.Uint8 && v.Len() == ed25519.PublicKeySize:
		reflect.Copy(reflect.ValueOf(dst[:ed25519.PublicKeySize]), v)
	default:
		return kindMismatch("32 byte key", v)
	}

	return nil
}

func decodeFields(src []byte, fields []Field, rv reflect.Value, offset *int) error {
	if rv.NumField() != len(fields) {
		return errors.Wrapf(ErrFieldMismatch, "layout declares %d fields, struct %s has %d", len(fields), rv.Type(), rv.NumField())
	}

	for i, f := range fields {
		field := rv.Field(i)
		if !field.CanSet() {
			return errors.Wrapf(ErrFieldMismatch, "%s: struct field %s is not settable", f.Name, rv.Type().Field(i).Name)
		}
		if err := decodeValue(src, f.Type, field, offset); err != nil {
			return errors.Wrap(err, f.Name)
		}
	}

	return nil
}

func decodeValue(src []byte, t Type, v reflect.Value, offset *int) error {
	switch t.kind {
	case kindU8:
		if v.Kind() != reflect.Uint8 {
			return kindMismatch("uint8", v)
		}
		v.SetUint(uint64(src[*offset]))
		*offset++
	case kindI8:
		if v.Kind() != reflect.Int8 {
			return kindMismatch("int8", v)
		}
		v.SetInt(int64(int8(src[*offset])))
		*offset++
	case kindU16:
		if v.Kind() != reflect.Uint16 {
			return kindMismatch("uint16", v)
		}
		v.SetUint(uint64(binary.LittleEndian.Uint16(src[*offset:])))
		*offset += 2
	case kindI16:
		if v.Kind() != reflect.Int16 {
			return kindMismatch("int16", v)
		}
		v.SetInt(int64(int16(binary.LittleEndian.Uint16(src[*offset:]))))
		*offset += 2
	case kindU32:
		if v.Kind() != reflect.Uint32 {
			return kindMismatch("uint32", v)
		}
		v.SetUint(uint64(binary.LittleEndian.Uint32(src[*offset:])))
		*offset += 4
	case kindI32:
		if v.Kind() != reflect.Int32 {
			return kindMismatch("int32", v)
		}
		v.SetInt(int64(int32(binary.LittleEndian.Uint32(src[*offset:]))))
		*offset += 4
	case kindU64:
		if v.Kind() != reflect.Uint64 {
			return kindMismatch("uint64", v)
		}
		v.SetUint(binary.LittleEndian.Uint64(src[*offset:]))
		*offset += 8
	case kindI64:
		if v.Kind() != reflect.Int64 {
			return kindMismatch("int64", v)
		}
		v.SetInt(int64(binary.LittleEndian.Uint64(src[*offset:])))
		*offset += 8
	case kindBool:
		if v.Kind() != reflect.Bool {
			return kindMismatch("bool", v)
		}
		v.SetBool(src[*offset] != 0)
		*offset++
	case kindKey:
		if err := decodeKey(src[*offset:*offset+ed25519.PublicKeySize], v); err != nil {
			return err
		}
		*offset += ed25519.PublicKeySize
	case kindArray:
		if v.Kind() != reflect.Array && v.Kind() != reflect.Slice {
			return kindMismatch("fixed-length array", v)
		}
		if v.Kind() == reflect.Slice {
			if v.Len() != t.count {
				v.Set(reflect.MakeSlice(v.Type(), t.count, t.count))
			}
		} else if v.Len() != t.count {
			return errors.Wrapf(ErrFieldMismatch, "expected %d elements, got %d", t.count, v.Len())
		}
		for i := 0; i < t.count; i++ {
			if err := decodeValue(src, *t.elem, v.Index(i), offset); err != nil {
				return errors.Wrapf(err, "[%d]", i)
			}
		}
	case kindStruct:
		if v.Kind() != reflect.Struct {
			return kindMismatch("struct", v)
		}
		return decodeFields(src, t.fields, v, offset)
	}

	return nil
}

func decodeKey(src []byte, v reflect.Value) error {
	switch {
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		key := make([]byte, ed25519.PublicKeySize)
		copy(key, src)
		v.SetBytes(key)
	case v.Kind() == reflect.Array && v.Type().Elem().Kind() == reflect.Uint8 && v.Len() == ed25519.PublicKeySize:
		reflect.Copy(v, reflect.ValueOf(src))
	default:
		return kindMismatch("32 byte key", v)
	}

	return nil
}

func kindMismatch(want string, v reflect.Value) error {
	return errors.Wrapf(ErrFieldMismatch, "expected %s, got %s", want, v.Type())
}

// checkStruct verifies at definition time that a Go struct type can carry
// records of the given shape. Binding is by field order, so the struct must
// declare exactly one exported field per layout field, each with a compatible
// Go type.
func checkStruct(fields []Field, t reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return errors.Errorf("record type must be a struct, got %s", t)
	}
	if t.NumField() != len(fields) {
		return errors.Errorf("layout declares %d fields, struct %s has %d", len(fields), t, t.NumField())
	}

	for i, f := range fields {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			return errors.Errorf("%s: struct field %s must be exported", f.Name, sf.Name)
		}
		if err := checkType(f.Type, sf.Type); err != nil {
			return errors.Wrap(err, f.Name)
		}
	}

	return nil
}

func checkType(t Type, rt reflect.Type) error {
	want := map[kind]reflect.Kind{
		kindU8:   reflect.Uint8,
		kindI8:   reflect.Int8,
		kindU16:  reflect.Uint16,
		kindI16:  reflect.Int16,
		kindU32:  reflect.Uint32,
		kindI32:  reflect.Int32,
		kindU64:  reflect.Uint64,
		kindI64:  reflect.Int64,
		kindBool: reflect.Bool,
	}

	switch t.kind {
	case kindU8, kindI8, kindU16, kindI16, kindU32, kindI32, kindU64, kindI64, kindBool:
		if rt.Kind() != want[t.kind] {
			return errors.Errorf("expected %s, got %s", want[t.kind], rt)
		}
	case kindKey:
		if !isKeyType(rt) {
			return errors.Errorf("expected a 32 byte key type, got %s", rt)
		}
	case kindArray:
		switch rt.Kind() {
		case reflect.Array:
			if rt.Len() != t.count {
				return errors.Errorf("expected %d elements, got %d", t.count, rt.Len())
			}
		case reflect.Slice:
		default:
			return errors.Errorf("expected a fixed-length array, got %s", rt)
		}
		return checkType(*t.elem, rt.Elem())
	case kindStruct:
		return checkStruct(t.fields, rt)
	}

	return nil
}

func isKeyType(rt reflect.Type) bool {
	if rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8 {
		return true
	}
	return rt.Kind() == reflect.Array && rt.Elem().Kind() == reflect.Uint8 && rt.Len() == ed25519.PublicKeySize
}
