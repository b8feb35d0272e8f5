package anchor

import (
	"crypto/sha256"
	"encoding/hex"
)

// DiscriminatorSize is the length of the tag prefixed on every account and
// instruction record.
const DiscriminatorSize = 8

// A Discriminator is the 8-byte tag identifying a record kind on the wire.
// Tags are assigned once at definition time and never change.
type Discriminator [DiscriminatorSize]byte

const (
	accountNamespace     = "account"
	instructionNamespace = "global"
)

// AccountDiscriminator derives the tag for an account kind. The name is the
// schema's account type name (PascalCase by upstream convention).
func AccountDiscriminator(name string) Discriminator {
	return newDiscriminator(accountNamespace, name)
}

// InstructionDiscriminator derives the tag for an instruction kind. The name
// is the schema's method name (snake_case by upstream convention).
func InstructionDiscriminator(name string) Discriminator {
	return newDiscriminator(instructionNamespace, name)
}

func newDiscriminator(namespace, name string) Discriminator {
	sum := sha256.Sum256([]byte(namespace + ":" + name))

	var d Discriminator
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

// Bytes returns the tag as a freshly sliced copy for use as a wire prefix or
// a memcmp filter value.
func (d Discriminator) Bytes() []byte {
	return d[:]
}

func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}
