// Package hdpath holds the fixed-length BIP-44 derivation path used by the
// address display and its text and wire forms.
package hdpath

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
)

const (
	// Len is the number of components in every path the device accepts.
	Len = 5
	// Hardened marks a hardened component.
	Hardened uint32 = 0x80000000
	// Purpose is the BIP-44 purpose component.
	Purpose = Hardened | 44
	// CoinFlow is the SLIP-44 coin type registered for Flow.
	CoinFlow = Hardened | 539
	// CoinTestnet is the SLIP-44 coin type shared by test networks.
	CoinTestnet = Hardened | 1
	// EncodedLen is the size of the little-endian wire form.
	EncodedLen = Len * 4
	// MaxTextLen bounds the text form; the enumerator renders into a buffer of this size.
	MaxTextLen = 300
)

var (
	ErrInvalidPath = errors.New("invalid hd path")
	ErrPathLength  = errors.New("hd path must have 5 components")
	ErrPathPrefix  = errors.New("hd path must start with m/44'/539' or m/44'/1'")
)

// Path is a five component BIP-44 path: purpose, coin, account, change, index.
type Path [Len]uint32

// Default is the first key of the first Flow account.
var Default = Path{Purpose, CoinFlow, Hardened, 0, 0}

// Parse reads a path such as "m/44'/539'/0'/0/0".
func Parse(s string) (Path, error) {
	var p Path
	if s == "" {
		return p, ErrInvalidPath
	}
	dp, err := accounts.ParseDerivationPath(s)
	if err != nil {
		return p, ErrInvalidPath
	}
	if len(dp) != Len {
		return p, ErrPathLength
	}
	copy(p[:], dp)
	if err := p.Validate(); err != nil {
		return Path{}, err
	}
	return p, nil
}

// Validate checks the purpose and coin type prefix.
func (p Path) Validate() error {
	if p[0] != Purpose || (p[1] != CoinFlow && p[1] != CoinTestnet) {
		return ErrPathPrefix
	}
	return nil
}

// String renders the path in the standard m/44'/... notation.
func (p Path) String() string {
	return accounts.DerivationPath(p[:]).String()
}

// MarshalBinary encodes the path as five little-endian uint32 values, the
// layout the device stores in its slots.
func (p Path) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, EncodedLen))
}

// AppendBinary appends the wire form of p to b.
func (p Path) AppendBinary(b []byte) ([]byte, error) {
	for _, c := range p {
		b = binary.LittleEndian.AppendUint32(b, c)
	}
	return b, nil
}

// UnmarshalBinary decodes exactly EncodedLen bytes.
func (p *Path) UnmarshalBinary(b []byte) error {
	if len(b) != EncodedLen {
		return ErrPathLength
	}
	for i := range p {
		p[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return nil
}

// IsZero reports whether no component is set.
func (p Path) IsZero() bool {
	return p == Path{}
}
