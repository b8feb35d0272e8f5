package anchor

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/starforge-games/starforge-sdk/pkg/solana"
)

// An AccountRole declares one named slot in an instruction's account list.
// Position, signer flag, and writable flag are fixed by the schema and never
// vary across calls of the same kind.
type AccountRole struct {
	Name     string
	Signer   bool
	Writable bool
}

// An InstructionType binds a call kind to concrete Go structs: Args carries
// the fixed-layout argument fields and Accounts names every required account,
// one exported key field per declared role, in role order. Instances are
// created once at package init time and are read-only afterwards.
type InstructionType[Args, Accounts any] struct {
	program       *Program
	name          string
	discriminator Discriminator
	args          Layout
	roles         []AccountRole
}

// DefineInstruction registers a call kind with its program and binds it to
// Args and Accounts. It panics if Args cannot carry the argument layout, if
// Accounts does not declare exactly one key field per role, or if the kind's
// discriminator collides with a previously registered kind.
func DefineInstruction[Args, Accounts any](program *Program, name string, args Layout, roles ...AccountRole) *InstructionType[Args, Accounts] {
	if err := checkStruct(args.fields, reflect.TypeOf((*Args)(nil)).Elem()); err != nil {
		panic(fmt.Sprintf("anchor: instruction %s: args: %v", name, err))
	}
	if err := checkRoles(roles, reflect.TypeOf((*Accounts)(nil)).Elem()); err != nil {
		panic(fmt.Sprintf("anchor: instruction %s: accounts: %v", name, err))
	}

	discriminator := InstructionDiscriminator(name)
	program.register(name, discriminator)

	return &InstructionType[Args, Accounts]{
		program:       program,
		name:          name,
		discriminator: discriminator,
		args:          args,
		roles:         roles,
	}
}

func checkRoles(roles []AccountRole, t reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return errors.Errorf("accounts type must be a struct, got %s", t)
	}
	if t.NumField() != len(roles) {
		return errors.Errorf("instruction declares %d account roles, struct %s has %d fields", len(roles), t, t.NumField())
	}

	seen := make(map[string]struct{}, len(roles))
	for i, role := range roles {
		if role.Name == "" {
			return errors.New("account role requires a name")
		}
		if _, ok := seen[role.Name]; ok {
			return errors.Errorf("duplicate account role: %s", role.Name)
		}
		seen[role.Name] = struct{}{}

		sf := t.Field(i)
		if sf.PkgPath != "" {
			return errors.Errorf("%s: struct field %s must be exported", role.Name, sf.Name)
		}
		if !isKeyType(sf.Type) {
			return errors.Errorf("%s: expected a 32 byte key type, got %s", role.Name, sf.Type)
		}
	}

	return nil
}

// Name returns the call kind's schema name.
func (t *InstructionType[Args, Accounts]) Name() string {
	return t.name
}

// Program returns the program the call kind belongs to.
func (t *InstructionType[Args, Accounts]) Program() *Program {
	return t.program
}

// Discriminator returns the kind's wire tag.
func (t *InstructionType[Args, Accounts]) Discriminator() Discriminator {
	return t.discriminator
}

// Args returns the kind's argument layout.
func (t *InstructionType[Args, Accounts]) Args() Layout {
	return t.args
}

// Roles returns the declared account roles in payload order. The returned
// slice is shared and must not be modified.
func (t *InstructionType[Args, Accounts]) Roles() []AccountRole {
	return t.roles
}

// Size returns the exact encoded size of the call data, discriminator
// included.
func (t *InstructionType[Args, Accounts]) Size() int {
	return DiscriminatorSize + t.args.Size()
}

// Build serializes args as [discriminator][argument bytes] and resolves every
// declared role against the named key fields of accounts, producing a payload
// ready for transaction assembly. A nil or short key in any role slot fails
// with ErrMissingAccountRole. Build never signs or submits.
func (t *InstructionType[Args, Accounts]) Build(args *Args, accounts *Accounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, errors.Wrap(ErrMissingAccountRole, "no accounts provided")
	}

	data := make([]byte, t.Size())
	copy(data, t.discriminator[:])
	if err := t.args.encodeTo(data[DiscriminatorSize:], args); err != nil {
		return solana.Instruction{}, err
	}

	rv := reflect.ValueOf(accounts).Elem()
	metas := make([]solana.AccountMeta, len(t.roles))
	for i, role := range t.roles {
		key, err := roleKey(rv.Field(i))
		if err != nil {
			return solana.Instruction{}, errors.Wrap(err, role.Name)
		}

		metas[i] = solana.AccountMeta{
			PublicKey:  key,
			IsSigner:   role.Signer,
			IsWritable: role.Writable,
		}
	}

	return solana.NewInstruction(t.program.id, data, metas...), nil
}

// Decode deserializes call data produced by Build. It fails with
// ErrTruncatedInput if the data is shorter than Size() and with
// ErrInvalidDiscriminator if the leading tag belongs to a different kind.
func (t *InstructionType[Args, Accounts]) Decode(data []byte) (*Args, error) {
	if len(data) < t.Size() {
		return nil, errors.Wrapf(ErrTruncatedInput, "%s: need %d bytes, have %d", t.name, t.Size(), len(data))
	}
	if !bytes.Equal(data[:DiscriminatorSize], t.discriminator[:]) {
		return nil, errors.Wrap(ErrInvalidDiscriminator, t.name)
	}

	args := new(Args)
	if err := t.args.Decode(data[DiscriminatorSize:], args); err != nil {
		return nil, err
	}

	return args, nil
}

func roleKey(v reflect.Value) (ed25519.PublicKey, error) {
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)

	switch {
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		if v.Len() != ed25519.PublicKeySize {
			return nil, errors.Wrapf(ErrMissingAccountRole, "have %d key bytes", v.Len())
		}
		copy(key, v.Bytes())
	case v.Kind() == reflect.Array && v.Type().Elem().Kind() == reflect.Uint8 && v.Len() == ed25519.PublicKeySize:
		reflect.Copy(reflect.ValueOf([]byte(key)), v)
	default:
		return nil, errors.Wrapf(ErrMissingAccountRole, "field is %s", v.Type())
	}

	return key, nil
}
