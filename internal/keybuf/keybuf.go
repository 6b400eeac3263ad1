// Package keybuf gives typed read-only access to the shared key buffer the
// derivation layer fills before an address is displayed.
//
// Layout, offsets relative to the buffer start:
//
//	[0:65)    uncompressed public key, 0x04 marker + X + Y
//	[65:196)  hex text of the public key, 130 chars + NUL
//	[196:)    address text, NUL-terminated
package keybuf

import (
	"bytes"
	"encoding/hex"
	"errors"
)

const (
	// PublicKeyLen is the size of an uncompressed secp256k1 public key.
	PublicKeyLen = 65
	// MarkerUncompressed prefixes every uncompressed public key.
	MarkerUncompressed byte = 0x04

	publicKeyTextOffset = PublicKeyLen
	publicKeyTextLen    = 2 * PublicKeyLen
	// AddressOffset is where the address text starts (3*PublicKeyLen + 1).
	AddressOffset = publicKeyTextOffset + publicKeyTextLen + 1
	// markerTextLen is the hex text of the marker byte, skipped on display.
	markerTextLen = 2
)

var (
	ErrPublicKeyLen    = errors.New("public key must be 65 bytes")
	ErrPublicKeyMarker = errors.New("public key is not uncompressed")
	ErrAddressNUL      = errors.New("address text contains NUL")
)

// View is a borrowed slice over the key buffer. It never copies or mutates
// the underlying bytes; regions beyond the slice read as empty.
type View []byte

// RawPublicKey returns the 65-byte uncompressed key region.
func (v View) RawPublicKey() []byte {
	return v.region(0, PublicKeyLen)
}

// PublicKeyText returns the hex text of the public key without the marker.
func (v View) PublicKeyText() string {
	text := cstring(v.region(publicKeyTextOffset, publicKeyTextLen+1))
	if len(text) < markerTextLen {
		return ""
	}
	return text[markerTextLen:]
}

// AddressText returns the address text up to its NUL terminator.
func (v View) AddressText() string {
	if len(v) <= AddressOffset {
		return ""
	}
	return cstring(v[AddressOffset:])
}

func (v View) region(off, n int) []byte {
	if off >= len(v) {
		return nil
	}
	end := off + n
	if end > len(v) {
		end = len(v)
	}
	return v[off:end]
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Build lays out pub and address the way the device transport fills its
// buffer and returns the result as a View.
func Build(pub []byte, address string) (View, error) {
	if len(pub) != PublicKeyLen {
		return nil, ErrPublicKeyLen
	}
	if pub[0] != MarkerUncompressed {
		return nil, ErrPublicKeyMarker
	}
	if bytes.IndexByte([]byte(address), 0) >= 0 {
		return nil, ErrAddressNUL
	}
	buf := make([]byte, AddressOffset+len(address)+1)
	copy(buf, pub)
	hex.Encode(buf[publicKeyTextOffset:], pub)
	copy(buf[AddressOffset:], address)
	return View(buf), nil
}
