package anchor

import (
	"crypto/ed25519"
	"fmt"
)

// A Program is the registry of record and call kinds for one on-chain
// program. Every account or instruction definition registers its 8-byte
// discriminator here, and two kinds in the same program must never share a
// tag.
//
// Definitions happen at package init time; a Program is read-only afterwards
// and safe for unbounded concurrent use.
type Program struct {
	name  string
	id    ed25519.PublicKey
	kinds map[Discriminator]string
}

// NewProgram declares a program by name and on-chain identity.
func NewProgram(name string, id ed25519.PublicKey) *Program {
	if len(id) != ed25519.PublicKeySize {
		panic(fmt.Sprintf("anchor: invalid program id for %s", name))
	}

	return &Program{
		name:  name,
		id:    id,
		kinds: make(map[Discriminator]string),
	}
}

// Name returns the program's declared name.
func (p *Program) Name() string {
	return p.name
}

// ID returns the program's on-chain identity.
func (p *Program) ID() ed25519.PublicKey {
	return p.id
}

func (p *Program) register(kind string, discriminator Discriminator) {
	if existing, ok := p.kinds[discriminator]; ok {
		panic(fmt.Sprintf("anchor: discriminator collision in program %s: %s and %s", p.name, existing, kind))
	}

	p.kinds[discriminator] = kind
}

// Identify reports which registered kind the leading 8 bytes of data belong
// to.
func (p *Program) Identify(data []byte) (string, bool) {
	if len(data) < DiscriminatorSize {
		return "", false
	}

	var d Discriminator
	copy(d[:], data)

	kind, ok := p.kinds[d]
	return kind, ok
}
